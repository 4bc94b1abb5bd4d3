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

package field

import (
	"fmt"

	"dirpx.dev/usererr/catalog"
	"dirpx.dev/usererr/key"
)

// Error is a single field-level credential validation failure.
//
// The interface is sealed: only the variants in this package implement
// messageKey. Every variant must declare exactly one catalog key plus the
// parameters its template takes — there is deliberately no generic fallback
// variant, so the catalog vocabulary and the variant set stay in lockstep.
type Error interface {
	error

	// messageKey returns the catalog key and template parameters for this
	// variant. Unexported: implementing it outside this package is
	// impossible, which is what keeps the set closed.
	messageKey() (string, catalog.Params)
}

// Missing reports that a required credential field was not supplied at all.
type Missing struct {
	// Label is the human-facing name of the form field.
	Label string
}

// Empty reports that a credential field was supplied but blank.
type Empty struct {
	Label string
}

// InvalidFormat reports that a credential field value does not match the
// expected format.
type InvalidFormat struct {
	Label string

	// Reason names the violated expectation, e.g. "must be 40 hex characters".
	Reason string
}

func (e Missing) Error() string { return fmt.Sprintf("missing field %q", e.Label) }
func (e Missing) messageKey() (string, catalog.Params) {
	return key.FieldMissing, catalog.Params{"label": e.Label}
}

func (e Empty) Error() string { return fmt.Sprintf("empty field %q", e.Label) }
func (e Empty) messageKey() (string, catalog.Params) {
	return key.FieldEmpty, catalog.Params{"label": e.Label}
}

func (e InvalidFormat) Error() string {
	return fmt.Sprintf("invalid format for field %q: %s", e.Label, e.Reason)
}
func (e InvalidFormat) messageKey() (string, catalog.Params) {
	return key.FieldInvalidFormat, catalog.Params{"label": e.Label, "reason": e.Reason}
}

// Message resolves the localized per-field text for the given validation
// failure. It is total: a nil error renders the generic unknown key, and a
// catalog without the field vocabulary echoes the key (catalog.Static
// semantics), so the caller always gets a non-empty string.
func Message(c catalog.Catalog, e Error) string {
	if e == nil {
		return c.Render(key.Unknown, nil)
	}
	k, params := e.messageKey()
	return c.Render(k, params)
}
