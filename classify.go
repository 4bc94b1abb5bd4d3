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

// Classify normalizes an arbitrary failure value into an Envelope.
//
// It is a total function: any input, however malformed, yields exactly one
// Details variant and never panics. Classification is deterministic and
// side-effect-free.
//
// Shapes are matched in priority order:
//
//  1. nil or empty string -> the generic unknown envelope;
//  2. plain string -> MessageDetails;
//  3. error value -> MessageDetails with the error text;
//  4. map (a decoded JSON object):
//     a. code == CodeProvider with a details object carrying both "provider"
//     and "code" strings -> ProviderDetails;
//     b. any string "code" field -> that code, with MessageDetails when the
//     details carry a message (either details.message or a plain string
//     details), EmptyDetails otherwise;
//     c. a string "message" field -> MessageDetails under CodeUnknown;
//     d. anything else -> OpaqueDetails under CodeUnknown.
//  5. every other value (numbers, booleans, slices, structs) -> OpaqueDetails.
//
// An Envelope passed in is returned unchanged, so boundaries may classify
// defensively without double-wrapping.
func Classify(raw any) Envelope {
	switch v := raw.(type) {
	case nil:
		return Unknown()
	case Envelope:
		return v
	case string:
		if v == "" {
			return Unknown()
		}
		return NewMessage(CodeUnknown, v)
	case error:
		if v == nil {
			return Unknown()
		}
		return NewMessage(CodeUnknown, v.Error())
	case map[string]any:
		return classifyObject(v)
	default:
		return Envelope{Code: CodeUnknown, Details: OpaqueDetails{Value: raw}}
	}
}

// classifyObject matches the object shapes of the boundary protocol.
func classifyObject(m map[string]any) Envelope {
	code, hasCode := stringField(m, "code")

	// 4a. Provider envelope. Requires BOTH provider and code inside the
	// details object; a missing half means the value is not a provider
	// error, and we fall through to the generic code handling below.
	if hasCode && code == CodeProvider {
		if d, ok := m["details"].(map[string]any); ok {
			if pd, ok := providerDetails(d); ok {
				return Envelope{Code: CodeProvider, Details: pd}
			}
		}
	}

	// 4b. Code-bearing envelope.
	if hasCode && code != "" {
		switch d := m["details"].(type) {
		case map[string]any:
			if msg, ok := stringField(d, "message"); ok && msg != "" {
				return Envelope{Code: code, Details: MessageDetails{Text: msg}}
			}
			return Envelope{Code: code, Details: EmptyDetails{}}
		case string:
			if d != "" {
				return Envelope{Code: code, Details: MessageDetails{Text: d}}
			}
			return Envelope{Code: code, Details: EmptyDetails{}}
		default:
			return Envelope{Code: code, Details: EmptyDetails{}}
		}
	}

	// 4c. Bare message object.
	if msg, ok := stringField(m, "message"); ok && msg != "" {
		return NewMessage(CodeUnknown, msg)
	}

	// 4d. Unrecognized shape; keep the value for last-resort diagnostics.
	return Envelope{Code: CodeUnknown, Details: OpaqueDetails{Value: m}}
}

// providerDetails extracts ProviderDetails from a details object. It reports
// false when the required provider/code pair is absent or empty.
func providerDetails(d map[string]any) (ProviderDetails, bool) {
	provider, pok := stringField(d, "provider")
	code, cok := stringField(d, "code")
	if !pok || !cok || provider == "" || code == "" {
		return ProviderDetails{}, false
	}

	pd := ProviderDetails{Provider: provider, Code: code}
	pd.RawMessage, _ = stringField(d, "raw_message")
	pd.Detail, _ = stringField(d, "detail")

	// Everything beyond the known fields is passed through untouched so
	// message templates can reference provider-specific parameters by name.
	for k, v := range d {
		switch k {
		case "provider", "code", "raw_message", "detail":
			continue
		}
		if pd.Extra == nil {
			pd.Extra = make(map[string]any)
		}
		pd.Extra[k] = v
	}
	return pd, true
}

// stringField reads a string-typed field from a decoded object. The second
// result reports whether the field exists AND is a string; a non-string
// value under the key is treated as absent.
func stringField(m map[string]any, k string) (string, bool) {
	v, ok := m[k]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
