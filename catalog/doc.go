/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package catalog defines the localization catalog capability consumed by the
// message resolver, together with a map-backed implementation, a YAML bundle
// loader, and the built-in English defaults.
//
// The catalog is deliberately a small interface — Has and Render — so the
// resolver stays a pure function of (envelope, catalog) and tests can supply
// trivial fakes. The host process owns the real catalog's lifecycle; this
// package performs no I/O of its own beyond parsing bundles it is handed.
//
// Keys are dot-delimited namespaced strings ("errors.provider.common.rate_limited").
// Absence of a key is always detectable via Has; Render never fails.
package catalog
