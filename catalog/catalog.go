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

import (
	"fmt"
	"strings"
)

// Params carries named template parameters for Render. Values may be of any
// type; they are stringified via fmt when substituted.
type Params map[string]any

// Catalog is the localization lookup capability.
//
// Implementations MUST be safe for concurrent read access and MUST NOT fail:
// Has reports key presence without error, and Render returns a best-effort
// string even for unknown keys. The resolver relies on both properties to
// stay total.
type Catalog interface {
	// Has reports whether the catalog holds a template for the key.
	Has(key string) bool

	// Render formats the template stored under key with the given
	// parameters. For an unknown key implementations SHOULD return the key
	// itself so the failure remains visible without breaking the caller.
	Render(key string, params Params) string
}

// Interpolate substitutes "{name}" placeholders in template with values from
// params. Placeholders without a matching parameter are left intact, so a
// partially-filled template still renders deterministically.
//
// The function is pure: no catalog state, no escapes, no recursion.
func Interpolate(template string, params Params) string {
	if len(params) == 0 || !strings.ContainsRune(template, '{') {
		return template
	}
	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); {
		open := strings.IndexByte(template[i:], '{')
		if open < 0 {
			b.WriteString(template[i:])
			break
		}
		open += i
		closing := strings.IndexByte(template[open:], '}')
		if closing < 0 {
			b.WriteString(template[i:])
			break
		}
		closing += open
		name := template[open+1 : closing]
		if v, ok := params[name]; ok {
			b.WriteString(template[i:open])
			b.WriteString(fmt.Sprint(v))
		} else {
			b.WriteString(template[i : closing+1])
		}
		i = closing + 1
	}
	return b.String()
}
