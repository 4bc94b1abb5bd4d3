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

// Static is an immutable-by-convention, map-backed Catalog. Build it once
// (from literals, Builtin, or ParseYAML) and share it freely; nothing in
// this package mutates a Static after construction.
type Static map[string]string

var _ Catalog = Static(nil)

// Has implements Catalog.
func (s Static) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Render implements Catalog. An unknown key renders as the key itself, which
// keeps Render total and makes missing translations visible in the UI
// instead of silently blank.
func (s Static) Render(key string, params Params) string {
	t, ok := s[key]
	if !ok {
		return key
	}
	return Interpolate(t, params)
}

// Merge overlays the given catalogs left to right on top of s and returns a
// fresh Static. Later entries win on key conflicts; none of the inputs are
// modified. Use this to put translation bundles on top of Builtin defaults.
func (s Static) Merge(overlays ...Static) Static {
	n := len(s)
	for _, o := range overlays {
		n += len(o)
	}
	out := make(Static, n)
	for k, v := range s {
		out[k] = v
	}
	for _, o := range overlays {
		for k, v := range o {
			out[k] = v
		}
	}
	return out
}
