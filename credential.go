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

// IsCredentialFault reports whether the raw failure value means "the stored
// provider credentials are no longer valid". The consuming session layer
// turns a true result into a forced re-authentication.
//
// The predicate intentionally bypasses Classify and its normalization: it
// matches the CodeInvalidCredentials sentinel exactly and case-sensitively,
// either as the top-level envelope code or as the provider error code inside
// a Provider envelope. Exact matching keeps false positives (an unnecessary
// re-login) to a minimum; a fuzzy lookup has no business gating a
// user-visible, irreversible side effect.
//
// Pure predicate, total over arbitrary input, never panics.
func IsCredentialFault(raw any) bool {
	switch v := raw.(type) {
	case Envelope:
		return envelopeIsCredentialFault(v)
	case map[string]any:
		code, _ := stringField(v, "code")
		if code == CodeInvalidCredentials {
			return true
		}
		if code != CodeProvider {
			return false
		}
		d, ok := v["details"].(map[string]any)
		if !ok {
			return false
		}
		dc, _ := stringField(d, "code")
		return dc == CodeInvalidCredentials
	default:
		return false
	}
}

// envelopeIsCredentialFault applies the same sentinel rule to an already
// classified envelope, so transport adapters (grpcx, httpx) compose with the
// predicate without round-tripping through raw maps.
func envelopeIsCredentialFault(e Envelope) bool {
	if e.Code == CodeInvalidCredentials {
		return true
	}
	if e.Code != CodeProvider {
		return false
	}
	pd, ok := e.Details.(ProviderDetails)
	return ok && pd.Code == ProviderCodeInvalidCredentials
}
