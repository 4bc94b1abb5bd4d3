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
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidBundle is returned when a translation bundle cannot be parsed or
// contains non-scalar leaf values.
var ErrInvalidBundle = errors.New("catalog: invalid translation bundle")

// ParseYAML reads a translation bundle and flattens its nested mappings into
// dot-delimited keys. The bundle
//
//	errors:
//	  unknown: "An unknown error occurred."
//	  provider:
//	    common:
//	      rate_limited: "Too many requests to {provider}."
//
// produces the keys "errors.unknown" and
// "errors.provider.common.rate_limited".
//
// Leaf values must be scalars; sequences or null leaves make the bundle
// invalid. The error is wrapped around ErrInvalidBundle for errors.Is checks.
func ParseYAML(data []byte) (Static, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBundle, err)
	}
	out := make(Static)
	if err := flatten("", root, out); err != nil {
		return nil, err
	}
	return out, nil
}

// flatten walks a decoded YAML mapping and writes scalar leaves into dst
// under dot-joined keys.
func flatten(prefix string, node map[string]any, dst Static) error {
	for k, v := range node {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		switch vv := v.(type) {
		case map[string]any:
			if err := flatten(full, vv, dst); err != nil {
				return err
			}
		case string:
			dst[full] = vv
		case bool, int, int64, float64:
			dst[full] = fmt.Sprint(vv)
		default:
			return fmt.Errorf("%w: key %q has non-scalar value %T", ErrInvalidBundle, full, v)
		}
	}
	return nil
}
