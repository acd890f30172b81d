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

// InvalidCodeError is returned whenever text cannot be interpreted as a
// sequence of non-negative integer segments separated by dots.
//
// Value carries the normalized input (noise characters already stripped),
// not the raw string handed to Parse. Err, when non-nil, is the underlying
// cause (typically a *strconv.NumError) and is exposed through Unwrap so
// callers can inspect it with errors.As.
//
// Every construction path (Parse, New, Append, Offset, Relative and the
// codecs) reports parse failures through this single type.
type InvalidCodeError struct {
	// Value is the normalized text that failed to parse.
	Value string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface for InvalidCodeError.
//
// The message format is:
//
//	"{Value} is not a valid code"
func (e *InvalidCodeError) Error() string {
	return e.Value + " is not a valid code"
}

// Unwrap returns the underlying cause.
func (e *InvalidCodeError) Unwrap() error {
	return e.Err
}

// RelativeMismatchError is returned by Relative when the elder code is not
// a segment-wise prefix of the younger code.
//
// Elder and Younger hold the String form of both operands; the root code
// renders as "root" so that the message never contains an empty operand.
type RelativeMismatchError struct {
	// Elder is the code that was expected to be an ancestor.
	Elder string

	// Younger is the code that was expected to descend from Elder.
	Younger string
}

// Error implements the error interface for RelativeMismatchError.
//
// The message format is:
//
//	"{Younger} is not a descendant of {Elder}"
func (e *RelativeMismatchError) Error() string {
	return displayName(e.Younger) + " is not a descendant of " + displayName(e.Elder)
}

func displayName(s string) string {
	if s == "" {
		return rootLiteral
	}
	return s
}
