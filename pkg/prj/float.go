package prj

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const defaultFloatText = "0.0"

// FloatField holds a floating point field as the decimal text it was read or
// set from. PRJ files are compared textually, so text supplied by a caller is
// written back verbatim instead of being reformatted through a float64.
//
// The zero value reads as "0.0".
type FloatField struct {
	text string
}

// Value is a float field input: either a number (Num) or decimal text (Text).
type Value interface {
	isValue()
}

// Num is a numeric Value. Setting a FloatField from a Num always succeeds.
type Num float64

// Text is a textual Value. Setting a FloatField from Text succeeds only if the
// text is a valid floating point literal.
type Text string

func (Num) isValue()  {}
func (Text) isValue() {}

// F returns a FloatField holding the canonical text for v.
func F(v float64) FloatField {
	var f FloatField
	f.SetFloat64(v)
	return f
}

// ParseFloatField validates s and returns a FloatField holding it verbatim.
func ParseFloatField(s string) (FloatField, error) {
	if !validFloatText(s) {
		return FloatField{}, fmt.Errorf("%w: %q", ErrMalformedNumericField, s)
	}
	return floatText(s), nil
}

// MustText is like ParseFloatField but panics on invalid text. It is meant for
// literals in code and tests.
func MustText(s string) FloatField {
	f, err := ParseFloatField(s)
	if err != nil {
		panic(err)
	}
	return f
}

// String returns the stored text.
func (f FloatField) String() string {
	if f.text == "" {
		return defaultFloatText
	}
	return f.text
}

// Float64 parses the stored text. The text is validated on every path that
// stores it, so a parse failure means the value was corrupted in memory.
func (f FloatField) Float64() float64 {
	v, err := strconv.ParseFloat(f.String(), 64)
	if err != nil {
		panic(fmt.Sprintf("prj: corrupt float field %q: %v", f.text, err))
	}
	return v
}

// SetFloat64 stores the canonical decimal text for v.
func (f *FloatField) SetFloat64(v float64) {
	f.text = strconv.FormatFloat(v, 'g', -1, 64)
}

// SetString stores s verbatim if it is a valid floating point literal. On
// failure the field is unchanged and false is returned.
func (f *FloatField) SetString(s string) bool {
	if !validFloatText(s) {
		return false
	}
	*f = floatText(s)
	return true
}

// Set applies v. Num always succeeds; Text behaves like SetString.
func (f *FloatField) Set(v Value) bool {
	switch v := v.(type) {
	case Num:
		f.SetFloat64(float64(v))
		return true
	case Text:
		return f.SetString(string(v))
	}
	return false
}

// IsZero reports whether the field holds the default text.
func (f FloatField) IsZero() bool {
	return f.text == ""
}

// floatText stores the default literal as the zero value so that a decoded
// "0.0" compares equal to an untouched field.
func floatText(s string) FloatField {
	if s == defaultFloatText {
		return FloatField{}
	}
	return FloatField{text: s}
}

func validFloatText(s string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}
	// strconv accepts hex mantissas and digit separators; PRJ readers do not.
	if strings.ContainsAny(s, "xX_") {
		return false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// parseFloatFields validates every element before building the result.
func parseFloatFields(texts []string) ([]FloatField, bool) {
	out := make([]FloatField, len(texts))
	for i, s := range texts {
		if !validFloatText(s) {
			return nil, false
		}
		out[i] = floatText(s)
	}
	return out, true
}

func floatFieldsOf(values []float64) []FloatField {
	out := make([]FloatField, len(values))
	for i, v := range values {
		out[i].SetFloat64(v)
	}
	return out
}
