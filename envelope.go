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

import (
	"fmt"

	"dirpx.dev/usererr/field"
)

// Envelope is the normalized representation of any failure value reaching
// the boundary between a remote provider API and the presentation surface.
//
// It carries:
//   - Code: machine-readable discriminator (coarse category such as
//     CodeProvider, CodeInvalidCredentials, or a backend-specific code);
//   - Details: the typed payload, exactly one variant of the closed
//     Details set.
//
// Envelopes are immutable, short-lived values: they are created once at the
// boundary (usually by Classify) and consumed synchronously by exactly one
// resolution call. They are never cached or mutated.
type Envelope struct {
	// Code is the discriminator of the failure. It is either one of the
	// sentinel constants in codes.go or a backend-specific code string.
	// Code is never empty for classified envelopes; Classify degrades
	// unrecognizable input to CodeUnknown.
	Code string `json:"code"`

	// Details is the typed payload. Exactly one variant of the closed set:
	// EmptyDetails, MessageDetails, ProviderDetails, FieldDetails or
	// OpaqueDetails. A zero Envelope has nil Details and resolves like
	// an OpaqueDetails envelope.
	Details Details `json:"details,omitempty"`
}

// Details is the sealed payload sum of an Envelope.
//
// The variant set is closed on purpose: downstream consumers (the message
// resolver, the presentation adapter) switch over it, and every variant must
// be handled explicitly. New variants can only be added inside this package.
type Details interface {
	// detailsVariant is the sealing marker. Only types in this package
	// implement it.
	detailsVariant()
}

// EmptyDetails is the "code only" payload: the Code alone identifies the
// failure and there is nothing else to carry.
type EmptyDetails struct{}

// MessageDetails carries a single human-readable string produced by a lower
// layer. The text may embed a machine code in the "UPPER_SNAKE: detail"
// convention; parsing that is the resolver's job, not the classifier's.
type MessageDetails struct {
	Text string `json:"message"`
}

// ProviderDetails is a provider-scoped structured error. Provider and Code
// are both required for a value to classify as a provider error; absence of
// either means the value is NOT a provider error even if shaped similarly.
type ProviderDetails struct {
	// Provider identifies the originating DNS provider integration,
	// e.g. "cloudflare" or "route53". Stable lowercase identifier.
	Provider string `json:"provider"`

	// Code is the provider-specific error code in the provider's own naming
	// convention (often capitalized words, e.g. "ZoneNotFound"). It is
	// normalized by the resolver before being used as a lookup-key fragment.
	Code string `json:"code"`

	// RawMessage is the provider's own error text. Used only as a
	// last-resort fallback once catalog entries are exhausted.
	RawMessage string `json:"raw_message,omitempty"`

	// Detail is secondary free-text detail, a weaker fallback than RawMessage.
	Detail string `json:"detail,omitempty"`

	// Extra holds any additional provider-specific fields, passed through
	// unmodified as message-template parameters.
	Extra map[string]any `json:"extra,omitempty"`
}

// FieldDetails wraps a field-level credential validation error. These are
// produced by validation layers and transport adapters, not by Classify.
type FieldDetails struct {
	Err field.Error `json:"-"`
}

// OpaqueDetails preserves an unrecognized raw value. It must degrade
// gracefully: the resolver stringifies scalar values only as the final
// fallback and never interprets them as codes.
type OpaqueDetails struct {
	Value any `json:"-"`
}

func (EmptyDetails) detailsVariant()    {}
func (MessageDetails) detailsVariant()  {}
func (ProviderDetails) detailsVariant() {}
func (FieldDetails) detailsVariant()    {}
func (OpaqueDetails) detailsVariant()   {}

// Unknown returns the generic "unknown error" envelope. This is what every
// unclassifiable input degrades to.
func Unknown() Envelope {
	return Envelope{Code: CodeUnknown, Details: EmptyDetails{}}
}

// NewMessage builds a message envelope under the given code. An empty code
// is replaced with CodeUnknown so the envelope stays classified.
func NewMessage(code, text string) Envelope {
	if code == "" {
		code = CodeUnknown
	}
	return Envelope{Code: code, Details: MessageDetails{Text: text}}
}

// NewProvider builds a provider envelope. The returned envelope always has
// Code == CodeProvider; callers discriminate providers via the payload.
func NewProvider(d ProviderDetails) Envelope {
	return Envelope{Code: CodeProvider, Details: d}
}

// NewField builds a field-validation envelope around the given field error.
func NewField(fe field.Error) Envelope {
	return Envelope{Code: CodeFieldValidation, Details: FieldDetails{Err: fe}}
}

// String renders the envelope for logs and debugging. It is not the
// user-facing message; that is the resolver's output.
func (e Envelope) String() string {
	switch d := e.Details.(type) {
	case MessageDetails:
		return fmt.Sprintf("%s: %s", e.Code, d.Text)
	case ProviderDetails:
		return fmt.Sprintf("%s: %s/%s", e.Code, d.Provider, d.Code)
	case FieldDetails:
		if d.Err != nil {
			return fmt.Sprintf("%s: %s", e.Code, d.Err.Error())
		}
		return e.Code
	default:
		return e.Code
	}
}
