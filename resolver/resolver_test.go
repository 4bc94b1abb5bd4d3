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
	"testing"

	"dirpx.dev/usererr"
	"dirpx.dev/usererr/catalog"
	"dirpx.dev/usererr/field"
)

func testCatalog() catalog.Static {
	return catalog.Static{
		"errors.unknown":                            "Something went wrong.",
		"errors.invalid_credentials":                "Please sign in again.",
		"errors.rate_limited":                       "Rate limited: {detail}",
		"errors.provider.cloudflare.zone_not_found": "Cloudflare cannot find that zone.",
		"errors.provider.common.zone_not_found":     "The DNS zone was not found at {provider}.",
		"errors.provider.common.rate_limited":       "{provider} is throttling requests.",
		"errors.field.missing":                      "{label} is required.",
		"errors.field.empty":                        "{label} must not be empty.",
		"errors.field.invalid_format":               "{label} is invalid: {reason}.",
	}
}

func TestResolve_ProviderPriorityOrdering(t *testing.T) {
	r := New(testCatalog())

	// zone_not_found exists at BOTH specificity levels for cloudflare;
	// the provider-specific entry must win.
	got := r.Resolve(usererr.NewProvider(usererr.ProviderDetails{
		Provider: "cloudflare",
		Code:     "ZoneNotFound",
	}))
	if got != "Cloudflare cannot find that zone." {
		t.Fatalf("provider-specific key must win, got %q", got)
	}

	// For a provider without a specific entry the common entry applies,
	// with the provider name interpolated.
	got = r.Resolve(usererr.NewProvider(usererr.ProviderDetails{
		Provider: "route53",
		Code:     "ZoneNotFound",
	}))
	if got != "The DNS zone was not found at route53." {
		t.Fatalf("common key fallback failed, got %q", got)
	}
}

func TestResolve_ProviderFallsBackToRawMessage(t *testing.T) {
	r := New(testCatalog())

	tests := []struct {
		name string
		d    usererr.ProviderDetails
		want string
	}{
		{
			"raw_message wins over detail",
			usererr.ProviderDetails{Provider: "cloudflare", Code: "ApiLimitExceeded",
				RawMessage: "API limit exceeded", Detail: "secondary"},
			"API limit exceeded",
		},
		{
			"detail when raw_message empty",
			usererr.ProviderDetails{Provider: "cloudflare", Code: "ApiLimitExceeded",
				Detail: "secondary detail"},
			"secondary detail",
		},
		{
			"generic unknown when both empty",
			usererr.ProviderDetails{Provider: "cloudflare", Code: "ApiLimitExceeded"},
			"Something went wrong.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(usererr.NewProvider(tt.d)); got != tt.want {
				t.Fatalf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolve_GenericCode(t *testing.T) {
	r := New(testCatalog())

	got := r.Resolve(usererr.Envelope{
		Code:    "InvalidCredentials",
		Details: usererr.EmptyDetails{},
	})
	if got != "Please sign in again." {
		t.Fatalf("generic code resolution failed, got %q", got)
	}
}

func TestResolve_EmbeddedCode(t *testing.T) {
	r := New(testCatalog())

	// the detail tail is interpolated into the template
	got := r.Resolve(usererr.NewMessage(usererr.CodeUnknown, "RATE_LIMITED: please wait 30s"))
	if got != "Rate limited: please wait 30s" {
		t.Fatalf("embedded code resolution failed, got %q", got)
	}

	// a structured code on the envelope outranks the embedded one
	got = r.Resolve(usererr.NewMessage("InvalidCredentials", "RATE_LIMITED: ignored"))
	if got != "Please sign in again." {
		t.Fatalf("envelope code must outrank embedded code, got %q", got)
	}

	// unparseable text with no code entry returns verbatim
	got = r.Resolve(usererr.NewMessage(usererr.CodeUnknown, "connection reset by peer"))
	if got != "connection reset by peer" {
		t.Fatalf("verbatim message failed, got %q", got)
	}
}

func TestResolve_MessageVerbatimNotUnknown(t *testing.T) {
	// A bare message under the degraded unknown classification must surface
	// its own text, not the generic catalog entry.
	r := New(testCatalog())
	got := r.Resolve(usererr.Classify("dial tcp: connection refused"))
	if got != "dial tcp: connection refused" {
		t.Fatalf("bare message resolved to %q", got)
	}
}

func TestResolve_OpaqueAndEmpty(t *testing.T) {
	r := New(testCatalog())

	if got := r.Resolve(usererr.Classify(map[string]any{"foo": 1})); got != "Something went wrong." {
		t.Fatalf("opaque object = %q", got)
	}
	if got := r.Resolve(usererr.Classify(nil)); got != "Something went wrong." {
		t.Fatalf("nil input = %q", got)
	}
	if got := r.Resolve(usererr.Envelope{}); got != "Something went wrong." {
		t.Fatalf("zero envelope = %q", got)
	}
}

func TestResolve_EmptyCatalog(t *testing.T) {
	// Even with no catalog at all Resolve is total.
	r := New(nil)

	if got := r.Resolve(usererr.Classify(nil)); got != "An unknown error occurred." {
		t.Fatalf("fallback text = %q", got)
	}
	// opaque scalars are stringified only at this last tier
	if got := r.Resolve(usererr.Classify(42)); got != "42" {
		t.Fatalf("opaque scalar = %q", got)
	}
	if got := r.Resolve(usererr.Classify(true)); got != "true" {
		t.Fatalf("opaque bool = %q", got)
	}
}

func TestResolve_Options(t *testing.T) {
	c := catalog.Static{"errors.oops": "custom generic"}
	r := New(c, WithUnknownKey("errors.oops"), WithFallbackText("last resort"))

	if got := r.Resolve(usererr.Classify(nil)); got != "custom generic" {
		t.Fatalf("WithUnknownKey = %q", got)
	}

	r2 := New(catalog.Static{}, WithFallbackText("last resort"))
	if got := r2.Resolve(usererr.Classify(nil)); got != "last resort" {
		t.Fatalf("WithFallbackText = %q", got)
	}
}

func TestResolve_FieldEnvelope(t *testing.T) {
	r := New(testCatalog())

	got := r.Resolve(usererr.NewField(field.InvalidFormat{Label: "API token", Reason: "too short"}))
	if got != "API token is invalid: too short." {
		t.Fatalf("field envelope = %q", got)
	}
	if got := r.FieldMessage(field.Missing{Label: "Zone"}); got != "Zone is required." {
		t.Fatalf("FieldMessage = %q", got)
	}
}

func TestResolve_ProviderExtrasReachTemplates(t *testing.T) {
	c := catalog.Static{
		"errors.provider.common.rate_limited": "{provider} throttled, retry in {retry_after}s.",
	}
	r := New(c)
	got := r.Resolve(usererr.NewProvider(usererr.ProviderDetails{
		Provider: "cloudflare",
		Code:     "RateLimited",
		Extra:    map[string]any{"retry_after": 30},
	}))
	if got != "cloudflare throttled, retry in 30s." {
		t.Fatalf("extras interpolation = %q", got)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	r := New(testCatalog())
	envs := []usererr.Envelope{
		usererr.NewProvider(usererr.ProviderDetails{Provider: "cloudflare", Code: "ZoneNotFound"}),
		usererr.NewMessage(usererr.CodeUnknown, "RATE_LIMITED: wait"),
		usererr.Classify(map[string]any{"foo": 1}),
		{},
	}
	for _, e := range envs {
		a, b := r.Resolve(e), r.Resolve(e)
		if a != b {
			t.Fatalf("Resolve not idempotent for %v: %q vs %q", e, a, b)
		}
	}
}
