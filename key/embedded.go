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

package key

import (
	"regexp"
	"strings"
)

const (
	// embeddedFmt matches messages of the form "UPPER_SNAKE_CODE" or
	// "UPPER_SNAKE_CODE: free text detail".
	//
	// Pattern breakdown:
	//
	//	^           - start of string;
	//	[A-Z]       - the code must start with an uppercase letter;
	//	[A-Z0-9_]+  - the rest of the code: uppercase letters, digits,
	//	              underscores; the + makes the code at least 2 chars;
	//	(?::\s*(.*))? - an optional ": detail" tail, colon required,
	//	              surrounding space absorbed;
	//	$           - end of string.
	//
	// The at-least-two-characters and leading-letter constraints are carried
	// over from the backend protocol as-is. Single-letter and digit-leading
	// codes do not match; they are treated as plain message text.
	embeddedFmt = `^([A-Z][A-Z0-9_]+)(?::\s*(.*))?$`
)

var embeddedRe = regexp.MustCompile(embeddedFmt)

// Embedded is the parsed form of a message that carries a machine code in
// its text, e.g. "RATE_LIMITED: please wait 30s".
type Embedded struct {
	// Code is the upper-snake code segment, exactly as it appeared.
	Code string

	// Detail is the free-text tail after the colon, trimmed. Empty when the
	// message was a bare code.
	Detail string
}

// Key returns the generic catalog key for the embedded code, e.g.
// "errors.rate_limited" for code "RATE_LIMITED".
func (e Embedded) Key() string {
	return ForCode(e.Code)
}

// ParseEmbedded attempts to parse an embedded-code message. It reports false
// when the text does not follow the "CODE" / "CODE: detail" convention, in
// which case the text must be treated as an opaque human message.
func ParseEmbedded(text string) (Embedded, bool) {
	m := embeddedRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return Embedded{}, false
	}
	return Embedded{Code: m[1], Detail: strings.TrimSpace(m[2])}, true
}
