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
	"errors"
	"testing"

	"pgregory.net/rapid"

	"dirpx.dev/usererr"
	"dirpx.dev/usererr/catalog"
)

// TestResolve_Totality checks the core guarantee of the whole layer: for
// arbitrary raw input, Resolve(Classify(x)) returns a non-empty string,
// never panics, and is deterministic — against a populated catalog and
// against an empty one.
func TestResolve_Totality(t *testing.T) {
	full := New(testCatalog())
	bare := New(nil)

	rapid.Check(t, func(t *rapid.T) {
		raw := drawRawValue(t)
		env := usererr.Classify(raw)

		for _, r := range []*Resolver{full, bare} {
			got := r.Resolve(env)
			if got == "" {
				t.Fatalf("Resolve returned empty string for %#v", raw)
			}
			if again := r.Resolve(env); again != got {
				t.Fatalf("Resolve not deterministic for %#v: %q vs %q", raw, got, again)
			}
			if exp := r.Explain(env); exp == "" {
				t.Fatalf("Explain returned empty string for %#v", raw)
			}
		}

		// the predicate is total as well
		_ = usererr.IsCredentialFault(raw)
	})
}

// drawRawValue generates the kinds of values a failed remote call can
// surface: nothing, scalars, strings, errors, well-formed envelopes and
// arbitrarily malformed objects.
func drawRawValue(t *rapid.T) any {
	switch rapid.IntRange(0, 7).Draw(t, "shape") {
	case 0:
		return nil
	case 1:
		return rapid.String().Draw(t, "text")
	case 2:
		return errors.New(rapid.StringMatching(`[A-Za-z0-9_: ]*`).Draw(t, "errtext"))
	case 3:
		return rapid.Int().Draw(t, "number")
	case 4:
		return rapid.Bool().Draw(t, "flag")
	case 5:
		// well-formed provider envelope, possibly with empty required fields
		return map[string]any{
			"code": "Provider",
			"details": map[string]any{
				"provider":    rapid.StringMatching(`[a-z0-9]*`).Draw(t, "provider"),
				"code":        rapid.StringMatching(`[A-Za-z0-9_]*`).Draw(t, "pcode"),
				"raw_message": rapid.String().Draw(t, "raw"),
			},
		}
	case 6:
		// code-bearing envelope with assorted details shapes
		m := map[string]any{
			"code": rapid.StringMatching(`[A-Za-z0-9_]*`).Draw(t, "code"),
		}
		switch rapid.IntRange(0, 3).Draw(t, "details_shape") {
		case 0:
			m["details"] = rapid.String().Draw(t, "details_string")
		case 1:
			m["details"] = map[string]any{"message": rapid.String().Draw(t, "details_message")}
		case 2:
			m["details"] = rapid.Int().Draw(t, "details_int")
		}
		return m
	default:
		// arbitrary flat object
		return map[string]any{
			rapid.StringMatching(`[a-z_]{1,10}`).Draw(t, "k"): rapid.Int().Draw(t, "v"),
		}
	}
}

// TestResolve_TotalityCorpus pins the hand-picked malformed inputs that have
// bitten similar layers before, independent of the generator above.
func TestResolve_TotalityCorpus(t *testing.T) {
	r := New(catalog.Builtin())

	inputs := []any{
		nil,
		"",
		"plain failure text",
		42,
		3.14,
		false,
		[]string{"not", "an", "object"},
		errors.New("wrapped transport error"),
		map[string]any{},
		map[string]any{"code": 7},                      // non-string code
		map[string]any{"code": ""},                     // empty code
		map[string]any{"message": 9},                   // non-string message
		map[string]any{"code": "Provider"},             // provider without details
		map[string]any{"code": "Provider", "details": map[string]any{"provider": "x"}}, // half a pair
		map[string]any{"code": "Provider", "details": "nope"},
		map[string]any{"details": map[string]any{"message": "orphaned"}},
		struct{ X int }{X: 1},
	}
	for _, in := range inputs {
		got := r.Resolve(usererr.Classify(in))
		if got == "" {
			t.Fatalf("empty resolution for %#v", in)
		}
	}
}
