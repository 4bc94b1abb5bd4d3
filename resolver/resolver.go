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

package resolver

import (
	"fmt"

	"dirpx.dev/usererr"
	"dirpx.dev/usererr/catalog"
	"dirpx.dev/usererr/field"
	"dirpx.dev/usererr/key"
)

// Resolver resolves envelopes against a localization catalog. Construct it
// once with New and share it; it holds no mutable state.
type Resolver struct {
	cat catalog.Catalog

	// unknownKey is the generic last-resort catalog key, key.Unknown unless
	// overridden.
	unknownKey string

	// fallbackText is returned when even unknownKey is absent from the
	// catalog. Resolve must never return an empty string.
	fallbackText string
}

// New builds a Resolver over the given catalog. A nil catalog is treated as
// empty, which still yields a working (if monolingual) resolver thanks to
// the hardcoded fallback tier.
func New(c catalog.Catalog, opts ...Option) *Resolver {
	if c == nil {
		c = catalog.Static(nil)
	}
	r := &Resolver{
		cat:          c,
		unknownKey:   key.Unknown,
		fallbackText: "An unknown error occurred.",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the user-facing localized message for the envelope.
// It always returns a non-empty string and never fails.
func (r *Resolver) Resolve(e usererr.Envelope) string {
	switch d := e.Details.(type) {
	case usererr.ProviderDetails:
		return r.resolveProvider(d)

	case usererr.FieldDetails:
		return field.Message(r.cat, d.Err)

	case usererr.MessageDetails:
		return r.resolveMessage(e.Code, d.Text)

	case usererr.EmptyDetails:
		if k, ok := r.codeKey(e.Code); ok {
			return r.cat.Render(k, catalog.Params{"code": e.Code})
		}
		return r.unknown(e)

	default:
		// OpaqueDetails or a zero envelope.
		return r.unknown(e)
	}
}

// FieldMessage resolves the localized text for a single field validation
// failure. Exposed so form callers can annotate inputs without wrapping each
// failure in an envelope first.
func (r *Resolver) FieldMessage(fe field.Error) string {
	return field.Message(r.cat, fe)
}

// resolveProvider walks the provider chain: specific key, common key,
// raw_message, detail, generic unknown.
func (r *Resolver) resolveProvider(d usererr.ProviderDetails) string {
	params := providerParams(d)
	for _, k := range providerCandidates(d) {
		if r.cat.Has(k) {
			return r.cat.Render(k, params)
		}
	}
	if d.RawMessage != "" {
		return d.RawMessage
	}
	if d.Detail != "" {
		return d.Detail
	}
	return r.unknown(usererr.NewProvider(d))
}

// resolveMessage walks the non-provider chain for a message envelope:
// code key, embedded-code key, verbatim text, generic unknown.
func (r *Resolver) resolveMessage(code, text string) string {
	if k, ok := r.codeKey(code); ok {
		return r.cat.Render(k, catalog.Params{"code": code, "message": text})
	}
	if emb, ok := key.ParseEmbedded(text); ok && r.cat.Has(emb.Key()) {
		return r.cat.Render(emb.Key(), catalog.Params{"code": emb.Code, "detail": emb.Detail})
	}
	if text != "" {
		return text
	}
	return r.unknown(usererr.NewMessage(code, text))
}

// codeKey returns the generic catalog key for a structured envelope code and
// whether the catalog holds it. The degraded CodeUnknown classification does
// not count as a structured code — a bare message must resolve to its own
// text, not to whatever "errors.unknown" happens to say.
func (r *Resolver) codeKey(code string) (string, bool) {
	if code == "" || code == usererr.CodeUnknown {
		return "", false
	}
	k := key.ForCode(code)
	return k, r.cat.Has(k)
}

// unknown is the terminal tier: the generic catalog entry if present,
// a stringified scalar for opaque values, then the hardcoded fallback.
func (r *Resolver) unknown(e usererr.Envelope) string {
	if r.cat.Has(r.unknownKey) {
		return r.cat.Render(r.unknownKey, nil)
	}
	if od, ok := e.Details.(usererr.OpaqueDetails); ok {
		if s := scalarString(od.Value); s != "" {
			return s
		}
	}
	return r.fallbackText
}

// providerCandidates returns the ordered catalog keys for a provider error:
// provider-and-code-specific first, then the cross-provider common entry.
func providerCandidates(d usererr.ProviderDetails) []string {
	return []string{
		key.ForProvider(d.Provider, d.Code),
		key.ForCommon(d.Code),
	}
}

// providerParams exposes every provider field to message templates: the
// structured fields by their wire names plus all pass-through extras.
func providerParams(d usererr.ProviderDetails) catalog.Params {
	params := make(catalog.Params, len(d.Extra)+4)
	for k, v := range d.Extra {
		params[k] = v
	}
	params["provider"] = d.Provider
	params["code"] = d.Code
	if d.RawMessage != "" {
		params["raw_message"] = d.RawMessage
	}
	if d.Detail != "" {
		params["detail"] = d.Detail
	}
	return params
}

// scalarString stringifies opaque scalar values for the very last fallback.
// Structured values (maps, slices, structs) are never stringified into the
// UI; they fall through to the fallback text.
func scalarString(v any) string {
	switch v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprint(v)
	default:
		return ""
	}
}
