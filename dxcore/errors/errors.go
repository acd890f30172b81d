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

// Package errors provides the error carriers shared by dxcatalog packages.
//
// The types are plain value carriers with stable message formats, meant to
// be matched with errors.As:
//
//   - ParseError: text could not be mapped onto an enum-like value (for
//     example an output format given on the command line).
//   - UnmarshalError: a JSON or YAML payload had the wrong shape for the
//     target type.
//   - ValidationError: a value violates one of its invariants.
//
// Domain-specific parse failures, such as an invalid catalog code, live next
// to the type they describe (see catalog.InvalidCodeError).
package errors

// ParseError is returned when text does not name any known value of an
// enum-like type.
//
// Type is the logical type name (for example "Format") and Value the exact
// text that was rejected.
//
//	func ParseFormat(s string) (Format, error) {
//	    switch s {
//	    case "text":
//	        return FormatText, nil
//	    default:
//	        return 0, &errors.ParseError{Type: "Format", Value: s}
//	    }
//	}
type ParseError struct {
	// Type is the logical name of the type being parsed.
	Type string

	// Value is the rejected text.
	Value string
}

// Error implements the error interface for ParseError.
//
// The message format is:
//
//	"dxcatalog: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "dxcatalog: invalid " + e.Type + " value: " + e.Value
}

// UnmarshalError is returned when decoding data into a typed value fails
// before the value's own parser is reached, typically because the payload
// is not a string.
//
// Data holds the raw payload when available. It is deliberately left out of
// Error() so large or sensitive payloads do not end up in logs.
type UnmarshalError struct {
	// Type is the logical name of the target type.
	Type string

	// Data is the raw input that failed to unmarshal. May be nil.
	Data []byte

	// Reason is a short explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The message format is:
//
//	"dxcatalog: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "dxcatalog: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned by Validate methods.
//
// Field is optional and names the offending field; Value optionally carries
// the offending value for diagnostics.
type ValidationError struct {
	// Type is the logical name of the validated type.
	Type string

	// Field is the name of the invalid field. Empty when the error applies
	// to the whole value.
	Field string

	// Reason explains what is wrong.
	Reason string

	// Value optionally holds the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The message format is:
//
//	"dxcatalog: invalid {Type}.{Field}: {Reason}"  (Field set)
//	"dxcatalog: invalid {Type}: {Reason}"          (Field empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxcatalog: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxcatalog: invalid " + e.Type + ": " + e.Reason
}
