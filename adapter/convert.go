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

// Package adapter bundles the three independent consumers of a classified
// failure — message resolution, the credential-fault signal and per-field
// annotation — into one presentation-ready view.
//
// UI layers that do not care about the individual pipelines call ToView once
// per failed request and render the result.
package adapter

import (
	"dirpx.dev/usererr"
	"dirpx.dev/usererr/field"
	"dirpx.dev/usererr/resolver"
)

// View is a self-contained presentation snapshot of one failure. It is safe
// to hand to rendering code as-is; nothing in it references the raw error
// value or the catalog.
type View struct {
	// Message is the single user-facing localized message.
	Message string `json:"message"`

	// CredentialFault reports whether the failure invalidates stored
	// credentials. The session layer reacts by forcing re-authentication.
	CredentialFault bool `json:"credential_fault"`

	// Fields holds localized per-field messages keyed by the caller's form
	// field identifiers. Nil when the failure is not field-scoped.
	Fields map[string]string `json:"fields,omitempty"`
}

// ToView classifies the raw failure value and resolves all three outputs in
// one call. The fields argument carries the caller's association of form
// field keys to validation failures and may be nil.
//
// Like its inputs, ToView is total: any raw value yields a renderable view.
func ToView(r *resolver.Resolver, raw any, fields map[string]field.Error) View {
	v := View{
		Message:         r.Resolve(usererr.Classify(raw)),
		CredentialFault: usererr.IsCredentialFault(raw),
	}
	if len(fields) > 0 {
		v.Fields = make(map[string]string, len(fields))
		for k, fe := range fields {
			v.Fields[k] = r.FieldMessage(fe)
		}
	}
	return v
}
