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

package key

import "strings"

// Namespace is the root of all error message keys.
const Namespace = "errors"

// Well-known keys with fixed positions in the catalog.
const (
	// Unknown is the generic last-resort message key. Every resolution
	// chain terminates here when nothing more specific matched.
	Unknown = "errors.unknown"

	// FieldMissing, FieldEmpty and FieldInvalidFormat are the three keys of
	// the field-validation vocabulary. Each takes a "label" parameter;
	// FieldInvalidFormat additionally takes "reason".
	FieldMissing       = "errors.field.missing"
	FieldEmpty         = "errors.field.empty"
	FieldInvalidFormat = "errors.field.invalid_format"
)

// providerNamespace scopes provider-specific translations; commonSegment is
// the pseudo-provider holding translations shared across providers.
const (
	providerNamespace = "errors.provider"
	commonSegment     = "common"
)

// Normalize converts an error code from its source naming convention into a
// canonical lowercase, underscore-delimited key fragment.
//
// The conversion is purely character-driven and deterministic:
//
//   - surrounding whitespace is trimmed;
//   - an underscore is inserted before each uppercase letter that follows a
//     lowercase letter or a digit (word boundary in capitalized-word codes);
//   - the whole string is lowercased.
//
// Examples:
//
//	Normalize("ZoneNotFound")  == "zone_not_found"
//	Normalize("RATE_LIMITED")  == "rate_limited"
//	Normalize("already_lower") == "already_lower"
//	Normalize("APIv2Error")    == "apiv2_error"
//
// Normalize never fails; an empty input yields an empty fragment.
func Normalize(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(code) + 4)
	for i, r := range code {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				prev := code[i-1]
				if (prev >= 'a' && prev <= 'z') || (prev >= '0' && prev <= '9') {
					b.WriteByte('_')
				}
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// ForProvider returns the provider-and-code-specific key, the highest
// priority candidate for a provider error:
//
//	ForProvider("cloudflare", "ZoneNotFound") == "errors.provider.cloudflare.zone_not_found"
//
// The provider identifier is used verbatim — provider ids are stable
// lowercase strings by contract — while the code is normalized.
func ForProvider(provider, code string) string {
	return providerNamespace + "." + provider + "." + Normalize(code)
}

// ForCommon returns the cross-provider key for a code shared by several
// provider vocabularies:
//
//	ForCommon("RateLimited") == "errors.provider.common.rate_limited"
func ForCommon(code string) string {
	return providerNamespace + "." + commonSegment + "." + Normalize(code)
}

// ForCode returns the generic key for a non-provider backend code:
//
//	ForCode("InvalidCredentials") == "errors.invalid_credentials"
func ForCode(code string) string {
	return Namespace + "." + Normalize(code)
}
