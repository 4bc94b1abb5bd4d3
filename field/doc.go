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

// Package field maps credential form validation failures to localized
// per-field messages.
//
// The variant set is closed: Missing, Empty and InvalidFormat. Sealing is
// enforced through the unexported messageKey method on the Error interface,
// which doubles as the exhaustiveness guarantee — a new variant cannot
// satisfy Error without declaring its catalog key and parameters, so
// extending the set is a compile-time obligation, not a runtime fallback.
package field
