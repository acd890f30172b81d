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

package model

import (
	"encoding/json"
	"fmt"
	"slices"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// Checked is the constraint of the helpers that validate before acting:
// they need Validate and a TypeName for the error message.
//
// Helpers take the narrowest contract they need. catalog.Code satisfies
// Checked by value but Model only through *Code.
type Checked interface {
	Validatable
	Identifiable
}

// ValidateAll validates every model and returns one combined error listing
// each failure with its index and type name, or nil when all are valid.
//
// The whole slice is always processed, so callers see every invalid element
// rather than only the first.
//
//	if err := model.ValidateAll(codes); err != nil {
//	    return err
//	}
func ValidateAll[T Checked](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice holding only the models whose IsZero
// reports false. The input is not modified and the result never shares its
// backing array.
//
// For catalog codes this drops every root entry.
func FilterZero[T ZeroCheckable](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate returns m unchanged, or panics if m is invalid. Use it only
// where an invalid value is a programming error: tests and package-level
// tables.
func MustValidate[T Checked](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns m.Redacted(), or m.String() when unsafe is true. It
// keeps the choice between the two representations visible at the call
// site.
func SafeString[T Loggable](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON validates m and encodes it with json.Marshal.
func ToJSON[T Checked](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML validates m and encodes it with yaml.Marshal.
func ToYAML[T Checked](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON decodes data into m and validates the result. On error the
// content of *m is unspecified and MUST NOT be used.
func FromJSON[T Validatable](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML decodes data into m and validates the result. On error the
// content of *m is unspecified and MUST NOT be used.
func FromYAML[T Validatable](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// SortStable sorts items in place by their Compare method, keeping the
// relative order of equal elements.
func SortStable[T Ordered[T]](items []T) {
	slices.SortStableFunc(items, func(a, b T) int {
		return a.Compare(b)
	})
}

// Max returns the greatest element of items by Compare, and false when
// items is empty. When several elements are equal the first one wins.
func Max[T Ordered[T]](items []T) (T, bool) {
	var best T
	if len(items) == 0 {
		return best, false
	}
	best = items[0]
	for _, it := range items[1:] {
		if it.Compare(best) > 0 {
			best = it
		}
	}
	return best, true
}
