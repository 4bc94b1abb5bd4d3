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

package catalog

import "testing"

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   Params
		want     string
	}{
		{"single param", "{label} is required.", Params{"label": "API token"}, "API token is required."},
		{"two params", "{label} is invalid: {reason}.", Params{"label": "email", "reason": "missing @"}, "email is invalid: missing @."},
		{"non-string param", "wait {seconds}s", Params{"seconds": 30}, "wait 30s"},
		{"missing param kept", "{label} is required.", Params{"other": "x"}, "{label} is required."},
		{"nil params", "{label} is required.", nil, "{label} is required."},
		{"no placeholders", "plain text", Params{"label": "x"}, "plain text"},
		{"unclosed brace", "oops {label", Params{"label": "x"}, "oops {label"},
		{"repeated param", "{p} and {p}", Params{"p": "a"}, "a and a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpolate(tt.template, tt.params)
			if got != tt.want {
				t.Fatalf("Interpolate(%q, %v) = %q, want %q", tt.template, tt.params, got, tt.want)
			}
		})
	}
}

func TestStatic_HasRender(t *testing.T) {
	c := Static{"errors.unknown": "boom", "errors.rate_limited": "wait: {detail}"}

	if !c.Has("errors.unknown") {
		t.Fatal("Has(existing) = false")
	}
	if c.Has("errors.nope") {
		t.Fatal("Has(missing) = true")
	}
	if got := c.Render("errors.rate_limited", Params{"detail": "30s"}); got != "wait: 30s" {
		t.Fatalf("Render() = %q", got)
	}
	// missing keys render as the key itself, never empty
	if got := c.Render("errors.nope", nil); got != "errors.nope" {
		t.Fatalf("Render(missing) = %q, want key echo", got)
	}
}

func TestStatic_Merge(t *testing.T) {
	base := Static{"a": "1", "b": "1"}
	over := Static{"b": "2", "c": "2"}

	got := base.Merge(over)
	if got["a"] != "1" || got["b"] != "2" || got["c"] != "2" {
		t.Fatalf("Merge result wrong: %v", got)
	}
	// inputs untouched
	if base["b"] != "1" {
		t.Fatal("Merge mutated receiver")
	}
}

func TestBuiltin_CoversFixedVocabulary(t *testing.T) {
	c := Builtin()
	for _, k := range []string{
		"errors.unknown",
		"errors.invalid_credentials",
		"errors.field.missing",
		"errors.field.empty",
		"errors.field.invalid_format",
		"errors.provider.common.invalid_credentials",
		"errors.provider.common.rate_limited",
	} {
		if !c.Has(k) {
			t.Fatalf("Builtin missing %q", k)
		}
	}
	// Builtin returns a copy
	c["errors.unknown"] = "mutated"
	if Builtin()["errors.unknown"] == "mutated" {
		t.Fatal("Builtin shares state between calls")
	}
}
