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

package usererr

// Coarse envelope codes.
//
// These are the discriminators the backend boundary emits at the top level of
// an error value. They are matched exactly (case-sensitive) — unlike the
// lookup-key fragments derived from them, which are normalized by the
// resolver via the key package.
const (
	// CodeProvider marks a provider-scoped error. The envelope payload is
	// expected to be ProviderDetails; if the payload lacks the required
	// provider/code pair the value is NOT classified as a provider error.
	CodeProvider = "Provider"

	// CodeInvalidCredentials is the sentinel indicating that stored
	// credentials were rejected by the remote service. It appears either as
	// a top-level envelope code or as a provider error code inside
	// ProviderDetails. IsCredentialFault matches it exactly, without
	// normalization, because it gates a forced re-authentication flow.
	CodeInvalidCredentials = "InvalidCredentials"

	// CodeFieldValidation marks a field-level credential form error.
	// The payload is FieldDetails.
	CodeFieldValidation = "FieldValidation"

	// CodeUnknown is the degraded classification for absent, malformed or
	// unrecognizable input. Classification is total: anything that does not
	// match a more specific shape ends up here instead of failing.
	CodeUnknown = "unknown"
)

// Common provider error codes.
//
// Providers each have their own error vocabulary; these are the codes shared
// widely enough that the built-in catalog carries cross-provider
// ("errors.provider.common.*") translations for them. The constants are in
// the providers' capitalized-word convention; the resolver normalizes them
// to key fragments.
const (
	// ProviderCodeInvalidCredentials mirrors CodeInvalidCredentials at the
	// provider payload level.
	ProviderCodeInvalidCredentials = "InvalidCredentials"

	// ProviderCodeRateLimited indicates the provider throttled the caller.
	ProviderCodeRateLimited = "RateLimited"

	// ProviderCodeZoneNotFound indicates the requested DNS zone does not
	// exist (or is not visible to the authenticated account).
	ProviderCodeZoneNotFound = "ZoneNotFound"

	// ProviderCodeRecordAlreadyExists indicates a conflicting record is
	// already present in the zone.
	ProviderCodeRecordAlreadyExists = "RecordAlreadyExists"
)
