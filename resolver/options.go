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

// Option configures a Resolver at construction time. All options are applied
// in New; the Resolver is immutable afterwards.
type Option func(*Resolver)

// WithUnknownKey replaces the catalog key used for the generic last-resort
// message. The default is key.Unknown ("errors.unknown").
func WithUnknownKey(k string) Option {
	return func(r *Resolver) {
		if k != "" {
			r.unknownKey = k
		}
	}
}

// WithFallbackText replaces the hardcoded text returned when the catalog
// holds no generic entry at all. The text must be non-empty; an empty value
// is ignored so Resolve stays total.
func WithFallbackText(s string) Option {
	return func(r *Resolver) {
		if s != "" {
			r.fallbackText = s
		}
	}
}
