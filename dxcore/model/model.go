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

// Package model defines the contracts shared by dxcatalog value types.
//
// Every value type that crosses a package boundary (such as catalog.Code)
// implements Model, which bundles validation, JSON/YAML serialization, safe
// logging, type identification and zero detection. Types with a natural
// ordering additionally implement Ordered so generic helpers can sort them.
//
// The contracts favour immutable values: no method defined here mutates its
// receiver except the Unmarshal methods, and all of them are safe for
// concurrent reads.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the full contract a dxcatalog value type MUST satisfy.
//
// Example implementation:
//
//	type Label struct{ Text string }
//
//	func (l Label) Validate() error    { ... }
//	func (l Label) TypeName() string   { return "Label" }
//	func (l Label) IsZero() bool       { return l.Text == "" }
//	func (l Label) Redacted() string   { return l.Text }
//	func (l Label) String() string     { return l.Text }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ model.Model = (*Label)(nil)
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable is implemented by types that can check their own invariants.
type Validatable interface {
	// Validate returns nil if the instance satisfies all invariants, or an
	// error describing the first violated one.
	//
	// Validate MUST NOT mutate the receiver, MUST be deterministic and MUST
	// NOT perform I/O.
	Validate() error
}

// Serializable is implemented by types with JSON and YAML codecs.
//
// Marshal methods SHOULD call Validate first and refuse to encode invalid
// values. Unmarshal methods SHOULD leave the receiver untouched on error.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable is implemented by types that can be rendered into logs.
type Loggable interface {
	// Redacted returns a representation safe for production logs, with any
	// sensitive content masked.
	Redacted() string

	// String returns the full human-readable representation.
	String() string
}

// Identifiable is implemented by types that report a canonical type name.
type Identifiable interface {
	// TypeName returns a constant CamelCase name without package prefix,
	// used in error messages and structured logs.
	TypeName() string
}

// ZeroCheckable is implemented by types with a meaningful zero state.
type ZeroCheckable interface {
	// IsZero reports whether the instance holds its zero value. For
	// catalog.Code the zero value is the root code.
	IsZero() bool
}

// Comparable is implemented by types with value equality.
type Comparable[T any] interface {
	// Equal reports whether the receiver and other denote the same value.
	Equal(other T) bool
}

// Ordered is implemented by types with a total order.
//
// Compare MUST return a negative number, zero or a positive number when the
// receiver sorts before, equal to or after other, and MUST be consistent
// with Equal: Compare returns zero exactly when Equal returns true.
type Ordered[T any] interface {
	Comparable[T]
	Compare(other T) int
}
