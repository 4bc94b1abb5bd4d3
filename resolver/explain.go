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
	"strings"

	"dirpx.dev/usererr"
	"dirpx.dev/usererr/key"
)

// Explain produces a textual trace of how Resolve would handle the envelope:
// every catalog probe in order, whether it hit, and the tier that finally
// produced the message.
//
// Example output:
//
//	envelope code="Provider" details=provider
//	probe key="errors.provider.cloudflare.zone_not_found" -> miss
//	probe key="errors.provider.common.zone_not_found" -> hit
//	msg: source=catalog key="errors.provider.common.zone_not_found" -> "The DNS zone was not found at cloudflare."
//
// Sources:
//   - catalog     — a candidate key was present and rendered;
//   - raw_message — provider text surfaced verbatim;
//   - detail      — provider secondary text surfaced verbatim;
//   - verbatim    — message text returned as-is;
//   - field       — field-validation vocabulary;
//   - unknown     — generic catalog entry;
//   - opaque      — stringified scalar;
//   - fallback    — hardcoded text.
//
// Explain is for inspection and tests only; it never affects Resolve.
func (r *Resolver) Explain(e usererr.Envelope) string {
	var b strings.Builder
	fmt.Fprintf(&b, "envelope code=%q details=%s\n", e.Code, detailsName(e.Details))

	switch d := e.Details.(type) {
	case usererr.ProviderDetails:
		params := providerParams(d)
		for _, k := range providerCandidates(d) {
			if r.cat.Has(k) {
				fmt.Fprintf(&b, "probe key=%q -> hit\n", k)
				fmt.Fprintf(&b, "msg: source=catalog key=%q -> %q", k, r.cat.Render(k, params))
				return b.String()
			}
			fmt.Fprintf(&b, "probe key=%q -> miss\n", k)
		}
		if d.RawMessage != "" {
			fmt.Fprintf(&b, "msg: source=raw_message -> %q", d.RawMessage)
			return b.String()
		}
		if d.Detail != "" {
			fmt.Fprintf(&b, "msg: source=detail -> %q", d.Detail)
			return b.String()
		}
		return b.String() + r.explainUnknown(e)

	case usererr.FieldDetails:
		fmt.Fprintf(&b, "msg: source=field -> %q", r.FieldMessage(d.Err))
		return b.String()

	case usererr.MessageDetails:
		if e.Code != "" && e.Code != usererr.CodeUnknown {
			k := key.ForCode(e.Code)
			if r.cat.Has(k) {
				fmt.Fprintf(&b, "probe key=%q -> hit\n", k)
				fmt.Fprintf(&b, "msg: source=catalog key=%q -> %q", k, r.Resolve(e))
				return b.String()
			}
			fmt.Fprintf(&b, "probe key=%q -> miss\n", k)
		}
		if emb, ok := key.ParseEmbedded(d.Text); ok {
			if r.cat.Has(emb.Key()) {
				fmt.Fprintf(&b, "probe key=%q -> hit\n", emb.Key())
				fmt.Fprintf(&b, "msg: source=catalog key=%q -> %q", emb.Key(), r.Resolve(e))
				return b.String()
			}
			fmt.Fprintf(&b, "probe key=%q -> miss\n", emb.Key())
		}
		if d.Text != "" {
			fmt.Fprintf(&b, "msg: source=verbatim -> %q", d.Text)
			return b.String()
		}
		return b.String() + r.explainUnknown(e)

	case usererr.EmptyDetails:
		if e.Code != "" && e.Code != usererr.CodeUnknown {
			k := key.ForCode(e.Code)
			if r.cat.Has(k) {
				fmt.Fprintf(&b, "probe key=%q -> hit\n", k)
				fmt.Fprintf(&b, "msg: source=catalog key=%q -> %q", k, r.Resolve(e))
				return b.String()
			}
			fmt.Fprintf(&b, "probe key=%q -> miss\n", k)
		}
		return b.String() + r.explainUnknown(e)

	default:
		return b.String() + r.explainUnknown(e)
	}
}

// explainUnknown renders the terminal tier line, mirroring Resolver.unknown.
func (r *Resolver) explainUnknown(e usererr.Envelope) string {
	if r.cat.Has(r.unknownKey) {
		return fmt.Sprintf("msg: source=unknown key=%q -> %q", r.unknownKey, r.cat.Render(r.unknownKey, nil))
	}
	if od, ok := e.Details.(usererr.OpaqueDetails); ok {
		if s := scalarString(od.Value); s != "" {
			return fmt.Sprintf("msg: source=opaque -> %q", s)
		}
	}
	return fmt.Sprintf("msg: source=fallback -> %q", r.fallbackText)
}

// detailsName labels the payload variant for trace output.
func detailsName(d usererr.Details) string {
	switch d.(type) {
	case usererr.EmptyDetails:
		return "empty"
	case usererr.MessageDetails:
		return "message"
	case usererr.ProviderDetails:
		return "provider"
	case usererr.FieldDetails:
		return "field"
	case usererr.OpaqueDetails:
		return "opaque"
	default:
		return "none"
	}
}
