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

package catalog

// builtin holds the library-level English defaults. These cover the fixed
// vocabulary every deployment needs before any translation bundle is loaded:
// the generic fallback, the credential sentinel, the field-validation keys
// and the cross-provider common codes.
//
// Translation bundles overlay these via Static.Merge; per-provider keys
// ("errors.provider.<provider>.*") are deployment content and are not
// seeded here.
var builtin = Static{
	"errors.unknown": "An unknown error occurred. Please try again.",

	"errors.invalid_credentials": "Your stored credentials were rejected. Please sign in again.",

	"errors.field.missing":        "{label} is required.",
	"errors.field.empty":          "{label} must not be empty.",
	"errors.field.invalid_format": "{label} is invalid: {reason}.",

	"errors.provider.common.invalid_credentials":   "{provider} rejected the stored credentials. Please reconnect the account.",
	"errors.provider.common.rate_limited":          "{provider} is limiting requests. Please wait a moment and try again.",
	"errors.provider.common.zone_not_found":        "The DNS zone was not found at {provider}.",
	"errors.provider.common.record_already_exists": "A conflicting record already exists at {provider}.",
}

// Builtin returns a fresh copy of the built-in English defaults. The copy is
// safe for the caller to merge or extend without affecting other callers.
func Builtin() Static {
	out := make(Static, len(builtin))
	for k, v := range builtin {
		out[k] = v
	}
	return out
}
