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

// Package catalog defines Code, the dotted-decimal identifier that orders
// and relates entries of a tree-shaped catalog (outline numbering such as
// "1.2.3").
//
// A Code is an immutable value. It is built once from text (Parse, New) or
// derived from another code (Parent, Append, Offset, Increment, Relative)
// and never changes afterwards, so values may be shared between goroutines
// without synchronization.
//
// The zero value of Code is the root of the hierarchy. Current is provided
// as a named alias of that zero value; any depth-0 code, however it was
// obtained, is equal to Current and behaves identically.
//
// Codes are totally ordered: ancestors precede descendants, and siblings are
// ordered numerically by their last segment ("1.2" < "1.10").
package catalog

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	dxerrors "dirpx.dev/dxcatalog/dxcore/errors"
	"dirpx.dev/dxcatalog/dxcore/model"
	"dirpx.dev/rxmerr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	// Separator splits a code into its segments.
	Separator = "."

	// rootLiteral is the textual alias accepted by Parse for the root code.
	rootLiteral = "root"

	typeName = "CatalogCode"
)

// Current is the root code: depth 0, no segments, empty text.
//
// It is the zero value of Code and MUST be treated as read-only.
var Current Code

// Code is a position in a dotted-decimal hierarchy.
//
// The text a Code was parsed from is kept verbatim (after normalization) and
// returned by String, so formatting quirks such as leading zeros survive a
// round trip even though they do not take part in comparison: "01.2" and
// "1.2" are Equal but render differently.
//
// Code implements model.Model and model.Ordered[Code].
type Code struct {
	original string
	segments []int
}

// Parse converts text into a Code.
//
// Normalization drops every rune that is not an ASCII digit, '.' or '-'.
// The empty result, or input that reads "root" (ignoring case and
// surrounding whitespace), yields the root code. Otherwise the normalized
// text is split on '.' and every piece MUST be a base-10 integer that fits
// in an int; a '-' anywhere makes the code invalid because segments are
// non-negative.
//
// Examples:
//
//	Parse("1.2.3")      -> 1.2.3
//	Parse(" § 4.10 ")   -> 4.10
//	Parse("root")       -> root
//	Parse("1-2")        -> *InvalidCodeError
//	Parse("1.a")        -> *InvalidCodeError ("1." has an empty segment)
func Parse(s string) (Code, error) {
	if strings.EqualFold(strings.TrimSpace(s), rootLiteral) {
		return Current, nil
	}

	normalized := normalize(s)
	if normalized == "" {
		return Current, nil
	}
	if strings.Contains(normalized, "-") {
		return Code{}, &InvalidCodeError{Value: normalized}
	}

	pieces := strings.Split(normalized, Separator)
	segments := make([]int, len(pieces))
	for i, p := range pieces {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Code{}, &InvalidCodeError{Value: normalized, Err: err}
		}
		segments[i] = n
	}

	return Code{original: normalized, segments: segments}, nil
}

// MustParse is like Parse but panics if the text is not a valid code. It is
// meant for tests and package-level tables built from literals.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("catalog: MustParse(%q): %v", s, err))
	}
	return c
}

// New builds a Code from its segments. Calling New with no segments returns
// the root code. A negative segment yields *InvalidCodeError.
func New(segments ...int) (Code, error) {
	pieces := make([]string, len(segments))
	for i, n := range segments {
		pieces[i] = strconv.Itoa(n)
	}
	return Parse(strings.Join(pieces, Separator))
}

// ParseAll parses every input and returns the codes in input order.
//
// Unlike a loop over Parse, ParseAll does not stop at the first failure: all
// invalid inputs are reported in one combined error. When any input is
// invalid no codes are returned.
func ParseAll(inputs ...string) ([]Code, error) {
	c := rxmerr.NewCollector()
	codes := make([]Code, 0, len(inputs))

	for i, s := range inputs {
		code, err := Parse(s)
		if err != nil {
			c.Append(fmt.Errorf("input[%d]: %w", i, err))
			continue
		}
		codes = append(codes, code)
	}

	if err := c.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
}

// String returns the normalized text the code was parsed from. The root code
// renders as the empty string.
func (c Code) String() string {
	return c.original
}

// Redacted returns the same text as String. Catalog codes carry no sensitive
// data; the method exists to satisfy model.Loggable.
func (c Code) Redacted() string {
	return c.original
}

// TypeName returns "CatalogCode".
func (c Code) TypeName() string {
	return typeName
}

// IsZero reports whether c is the root code.
func (c Code) IsZero() bool {
	return c.IsRoot()
}

// IsRoot reports whether c has depth 0.
func (c Code) IsRoot() bool {
	return len(c.segments) == 0
}

// Depth returns the number of segments. The root code has depth 0.
func (c Code) Depth() int {
	return len(c.segments)
}

// Segments returns a copy of the integer segments of c.
func (c Code) Segments() []int {
	return slices.Clone(c.segments)
}

// Segment returns the segment at index i. It panics if i is out of range,
// like a slice index.
func (c Code) Segment(i int) int {
	return c.segments[i]
}

// Validate checks that the stored text and segments agree. Every Code
// produced by this package passes; the check backs the marshalers and the
// model contract.
func (c Code) Validate() error {
	if c.IsRoot() {
		if c.original != "" {
			return &dxerrors.ValidationError{
				Type:   typeName,
				Field:  "original",
				Reason: "root code must have empty text",
				Value:  c.original,
			}
		}
		return nil
	}

	pieces := strings.Split(c.original, Separator)
	if len(pieces) != len(c.segments) {
		return &dxerrors.ValidationError{
			Type:   typeName,
			Reason: fmt.Sprintf("text has %d segments, expected %d", len(pieces), len(c.segments)),
			Value:  c.original,
		}
	}
	for i, p := range pieces {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n != c.segments[i] {
			return &dxerrors.ValidationError{
				Type:   typeName,
				Field:  fmt.Sprintf("segments[%d]", i),
				Reason: "does not match text",
				Value:  p,
			}
		}
	}
	return nil
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal
// to, or after b.
//
// Segments are compared numerically from the left; the first difference
// decides. When one code is a prefix of the other the shorter one (the
// ancestor) sorts first, which also places the root before every other code.
func Compare(a, b Code) int {
	return slices.Compare(a.segments, b.segments)
}

// Compare is the method form of the package-level Compare.
func (c Code) Compare(other Code) int {
	return Compare(c, other)
}

// Less reports whether c sorts strictly before other.
func (c Code) Less(other Code) bool {
	return Compare(c, other) < 0
}

// Greater reports whether c sorts strictly after other.
func (c Code) Greater(other Code) bool {
	return Compare(c, other) > 0
}

// Equal reports whether both codes have the same segments. The stored text
// is not compared, so "01.2" equals "1.2".
func (c Code) Equal(other Code) bool {
	return slices.Equal(c.segments, other.segments)
}

// Sort orders codes in place from the root outwards. Equal codes keep their
// relative order.
func Sort(codes []Code) {
	model.SortStable(codes)
}

// Parent returns the code one level up. The parent of a depth-1 code is the
// root, and the parent of the root is the root itself.
func (c Code) Parent() Code {
	n := len(c.segments)
	if n <= 1 {
		return Current
	}
	cut := strings.LastIndex(c.original, Separator)
	return Code{
		original: c.original[:cut],
		segments: c.segments[: n-1 : n-1],
	}
}

// Youngest returns the last segment of c, or 0 for the root code.
func (c Code) Youngest() int {
	if c.IsRoot() {
		return 0
	}
	return c.segments[len(c.segments)-1]
}

// IsAncestorOf reports whether c is a strict prefix of other. A code is not
// its own ancestor; the root is an ancestor of every non-root code.
func (c Code) IsAncestorOf(other Code) bool {
	return len(c.segments) < len(other.segments) &&
		slices.Equal(c.segments, other.segments[:len(c.segments)])
}

// SameFolder reports whether a and b share the same parent.
func SameFolder(a, b Code) bool {
	return a.Parent().Equal(b.Parent())
}

// NextChild returns the first free child slot under parent: one past the
// greatest direct child found in existing, or parent.1 when existing holds
// no direct child of parent. Codes in existing that are not direct children
// of parent are ignored.
func NextChild(parent Code, existing []Code) (Code, error) {
	children := make([]Code, 0, len(existing))
	for _, c := range existing {
		if c.Depth() == parent.Depth()+1 && parent.IsAncestorOf(c) {
			children = append(children, c)
		}
	}

	last, ok := model.Max(children)
	if !ok {
		return parent.Append(MustParse("1"))
	}
	return last.Increment()
}

// Relative expresses younger relative to elder by dropping elder's segments
// from the front of younger.
//
//	Relative(2, 2.3.1)    -> 3.1
//	Relative(root, 4.5)   -> 4.5
//	Relative(2.3, 2.3)    -> root
//	Relative(2, 3.1)      -> *RelativeMismatchError
//
// The remaining pieces keep their original text.
func Relative(elder, younger Code) (Code, error) {
	if !elder.Equal(younger) && !elder.IsAncestorOf(younger) {
		return Code{}, &RelativeMismatchError{
			Elder:   elder.original,
			Younger: younger.original,
		}
	}
	rest := younger.pieces()[elder.Depth():]
	return Parse(strings.Join(rest, Separator))
}

// Append returns child nested under c: the text of c, a separator, then
// the text of child. Appending to the root yields child, and appending the
// root yields c.
func (c Code) Append(child Code) (Code, error) {
	return Parse(strings.Join(append(c.pieces(), child.pieces()...), Separator))
}

// Offset returns the sibling of c whose last segment is c.Youngest()+delta.
//
// The result is validated like any parsed code, so an offset that would
// make the segment negative, or overflow an int, yields *InvalidCodeError.
// The root has no last segment; following the same rule its offset is the
// depth-1 code delta.
func (c Code) Offset(delta int) (Code, error) {
	youngest := c.Youngest()

	var last string
	if delta > 0 && youngest > math.MaxInt-delta {
		// Both operands are non-negative, so the sum fits in a uint64 and
		// Parse reports the range error.
		last = strconv.FormatUint(uint64(youngest)+uint64(delta), 10)
	} else {
		last = strconv.Itoa(youngest + delta)
	}

	return Parse(strings.Join(append(c.Parent().pieces(), last), Separator))
}

// Increment returns the next sibling, c.Offset(1).
func (c Code) Increment() (Code, error) {
	return c.Offset(1)
}

func (c Code) pieces() []string {
	if c.IsRoot() {
		return nil
	}
	return strings.Split(c.original, Separator)
}

// MarshalLogObject implements zapcore.ObjectMarshaler so codes can be logged
// with zap.Object.
func (c Code) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("code", displayName(c.original))
	enc.AddInt("depth", len(c.segments))
	return enc.AddArray("segments", zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
		for _, s := range c.segments {
			ae.AppendInt(s)
		}
		return nil
	}))
}

// MarshalText implements encoding.TextMarshaler for text-based encoders
// such as environment and flag loaders.
func (c Code) MarshalText() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", typeName, err)
	}
	return []byte(c.original), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON encodes the code as a JSON string holding its text. The root
// code encodes as "".
func (c Code) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", typeName, err)
	}
	return json.Marshal(c.original)
}

// UnmarshalJSON decodes a JSON string with Parse. Non-string JSON values are
// rejected with *dxerrors.UnmarshalError; parse failures are returned as
// *InvalidCodeError.
func (c *Code) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{
			Type:   typeName,
			Data:   data,
			Reason: err.Error(),
		}
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

// MarshalYAML encodes the code as a YAML string scalar.
func (c Code) MarshalYAML() (interface{}, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", typeName, err)
	}
	return c.original, nil
}

// UnmarshalYAML decodes a YAML scalar with Parse.
//
// Unquoted scalars such as 1.2 are read by their source text, so the YAML
// float interpretation never applies and "1.10" is not collapsed to "1.1".
func (c *Code) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &dxerrors.UnmarshalError{
			Type:   typeName,
			Reason: fmt.Sprintf("expected a scalar, got YAML node kind %d", node.Kind),
		}
	}

	parsed, err := Parse(node.Value)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

var (
	_ model.Model              = (*Code)(nil)
	_ model.Ordered[Code]      = Code{}
	_ zapcore.ObjectMarshaler  = Code{}
	_ encoding.TextMarshaler   = Code{}
	_ encoding.TextUnmarshaler = (*Code)(nil)
)
