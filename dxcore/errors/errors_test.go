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

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			"Format type",
			&ParseError{Type: "Format", Value: "xml"},
			"dxcatalog: invalid Format value: xml",
		},
		{
			"empty value",
			&ParseError{Type: "Format", Value: ""},
			"dxcatalog: invalid Format value: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *UnmarshalError
		want string
	}{
		{
			"not a string",
			&UnmarshalError{
				Type:   "CatalogCode",
				Data:   []byte(`12`),
				Reason: "json: cannot unmarshal number into Go value of type string",
			},
			"dxcatalog: cannot unmarshal CatalogCode: json: cannot unmarshal number into Go value of type string",
		},
		{
			"data omitted from message",
			&UnmarshalError{
				Type:   "CatalogCode",
				Data:   []byte(`{"secret":true}`),
				Reason: "expected a scalar",
			},
			"dxcatalog: cannot unmarshal CatalogCode: expected a scalar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("UnmarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			"with field",
			&ValidationError{Type: "CatalogCode", Field: "segments[1]", Reason: "does not match text"},
			"dxcatalog: invalid CatalogCode.segments[1]: does not match text",
		},
		{
			"without field",
			&ValidationError{Type: "CatalogCode", Reason: "text has 2 segments, expected 3"},
			"dxcatalog: invalid CatalogCode: text has 2 segments, expected 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrors_As(t *testing.T) {
	wrapped := fmt.Errorf("decode: %w", &UnmarshalError{Type: "CatalogCode", Reason: "bad"})

	var ue *UnmarshalError
	if !stderrors.As(wrapped, &ue) {
		t.Fatal("errors.As failed to find *UnmarshalError")
	}
	if ue.Type != "CatalogCode" {
		t.Errorf("Type = %q, want %q", ue.Type, "CatalogCode")
	}
}

func TestErrors_Implements_Error_Interface(t *testing.T) {
	var _ error = (*ParseError)(nil)
	var _ error = (*UnmarshalError)(nil)
	var _ error = (*ValidationError)(nil)
}
