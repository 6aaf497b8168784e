package prj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatField_Default(t *testing.T) {
	var f FloatField
	assert.Equal(t, "0.0", f.String())
	assert.Equal(t, 0.0, f.Float64())
	assert.True(t, f.IsZero())
}

func TestFloatField_SetString(t *testing.T) {
	testCases := []struct {
		name string
		text string
		ok   bool
		want float64
	}{
		{name: "trailing zero kept", text: "1.50", ok: true, want: 1.5},
		{name: "exponent", text: "6.0795e-04", ok: true, want: 6.0795e-04},
		{name: "integer literal", text: "42", ok: true, want: 42},
		{name: "negative", text: "-0.25", ok: true, want: -0.25},
		{name: "leading plus", text: "+3", ok: true, want: 3},
		{name: "empty", text: ""},
		{name: "word", text: "abc"},
		{name: "trailing junk", text: "1.5x"},
		{name: "surrounding space", text: " 1.5"},
		{name: "nan", text: "NaN"},
		{name: "inf", text: "Inf"},
		{name: "hex mantissa", text: "0x1p-2"},
		{name: "digit separator", text: "1_000"},
		{name: "overflow", text: "1e400"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := MustText("7.0")
			ok := f.SetString(tc.text)
			assert.Equal(t, tc.ok, ok)
			if !tc.ok {
				assert.Equal(t, "7.0", f.String(), "failed set must not mutate")
				return
			}
			assert.Equal(t, tc.text, f.String())
			assert.Equal(t, tc.want, f.Float64())
		})
	}
}

func TestFloatField_SetFloat64(t *testing.T) {
	var f FloatField
	f.SetFloat64(1.5)
	assert.Equal(t, "1.5", f.String())
	f.SetFloat64(2)
	assert.Equal(t, "2", f.String())
	f.SetFloat64(1e-7)
	assert.Equal(t, "1e-07", f.String())
}

func TestFloatField_Set(t *testing.T) {
	var f FloatField
	assert.True(t, f.Set(Num(0.125)))
	assert.Equal(t, "0.125", f.String())

	assert.True(t, f.Set(Text("3.000")))
	assert.Equal(t, "3.000", f.String())

	assert.False(t, f.Set(Text("three")))
	assert.Equal(t, "3.000", f.String())
}

func TestParseFloatField(t *testing.T) {
	f, err := ParseFloatField("2.50")
	require.NoError(t, err)
	assert.Equal(t, "2.50", f.String())

	_, err = ParseFloatField("two")
	assert.ErrorIs(t, err, ErrMalformedNumericField)

	assert.Panics(t, func() { MustText("two") })
}

func TestFloatField_DefaultTextEqualsZero(t *testing.T) {
	assert.Equal(t, FloatField{}, MustText("0.0"))
	assert.NotEqual(t, FloatField{}, MustText("0"))
}

func TestFloatField_CorruptPanics(t *testing.T) {
	f := FloatField{text: "garbage"}
	assert.Panics(t, func() { f.Float64() })
}

func TestParseFloatFields_AllOrNothing(t *testing.T) {
	got, ok := parseFloatFields([]string{"1", "2.0", "3e1"})
	require.True(t, ok)
	assert.Equal(t, []FloatField{MustText("1"), MustText("2.0"), MustText("3e1")}, got)

	got, ok = parseFloatFields([]string{"1", "bad", "3"})
	assert.False(t, ok)
	assert.Nil(t, got)
}
