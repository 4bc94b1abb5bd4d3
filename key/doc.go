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

// Package key builds and normalizes localization catalog keys.
//
// Catalog keys are dot-delimited namespaced strings under the "errors"
// namespace, such as:
//
//   - "errors.unknown"
//   - "errors.invalid_credentials"
//   - "errors.provider.cloudflare.zone_not_found"
//   - "errors.provider.common.rate_limited"
//   - "errors.field.missing"
//
// Key fragments derived from backend or provider error codes must be:
//
//   - lowercased;
//   - underscore-separated (never dash- or camel-separated);
//   - stable, so translators can rely on them.
//
// Backend and provider codes arrive in other conventions — capitalized words
// ("ZoneNotFound") or upper snake ("RATE_LIMITED") — and this package owns
// the deterministic conversion into canonical fragments, plus the parsing of
// "CODE: detail" strings embedded in free-text messages.
package key
