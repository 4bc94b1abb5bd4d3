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

// Package resolver turns a classified error envelope into a single localized,
// user-facing message.
//
// # Resolution model
//
// Resolution is a search over an ordered list of candidate catalog keys; the
// first key the catalog holds wins and is rendered immediately, lower
// candidates are never evaluated. Per envelope variant the chain is:
//
//  1. Provider envelope:
//     a. "errors.provider.<provider>.<normalized_code>";
//     b. "errors.provider.common.<normalized_code>";
//     c. the provider's own raw_message, then detail, verbatim;
//  2. Code-bearing envelope: "errors.<normalized_code>";
//  3. Message text in the "UPPER_SNAKE: detail" convention:
//     "errors.<code lowercased>" with the parsed detail as a parameter;
//  4. the raw message text verbatim;
//  5. the generic "errors.unknown" rendering.
//
// A provider whose code has no catalog entry at either specificity level
// surfaces its own raw_message/detail before anything generic: once the
// catalog is exhausted, the provider is the most authoritative source.
//
// # Totality
//
// Resolve always returns a non-empty string, for every envelope, against
// every catalog — including an empty one. The final tier is a hardcoded
// fallback text, the same way a status mapper ultimately hardcodes 500
// rather than returning nothing.
//
// # Diagnostics
//
// Explain returns a human-readable trace of the probes and the tier that
// produced the message. It is intended for inspection and tests, not for
// stable machine parsing, and never affects Resolve's output.
//
// A Resolver is an immutable snapshot over its catalog: safe for concurrent
// use, free of hidden state, and trivially reusable across requests.
package resolver
