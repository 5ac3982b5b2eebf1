package interp

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the type of a Value.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_TEXT = Kind(0) // text
	KIND_INT  = Kind(1) // int
)

// Value is a resolved operand: either an integer taken from a queue, or
// text from the string pool, an alias or a literal.
type Value struct {
	Kind Kind
	Int  int32
	Text string
}

func IntValue(value int32) Value {
	return Value{Kind: KIND_INT, Int: value}
}

func TextValue(text string) Value {
	return Value{Kind: KIND_TEXT, Text: text}
}

func (v Value) String() string {
	if v.Kind == KIND_INT {
		return strconv.FormatInt(int64(v.Int), 10)
	}
	return v.Text
}

// AsInt returns the value as a 32-bit integer, parsing text in base 10.
func (v Value) AsInt() (value int32, err error) {
	if v.Kind == KIND_INT {
		value = v.Int
		return
	}

	v64, err := strconv.ParseInt(v.Text, 10, 32)
	if err != nil {
		err = ErrParseInteger(v.Text)
		return
	}

	value = int32(v64)
	return
}

// AsFloat returns the value as a float.
func (v Value) AsFloat() (value float64, err error) {
	if v.Kind == KIND_INT {
		value = float64(v.Int)
		return
	}

	value, err = strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
	if err != nil {
		err = ErrParseFloat(v.Text)
		return
	}

	return
}

// truncate converts a float to an integer, rounding toward zero and
// saturating at the int32 limits. NaN is zero.
func truncate(value float64) int32 {
	switch {
	case math.IsNaN(value):
		return 0
	case value >= math.MaxInt32:
		return math.MaxInt32
	case value <= math.MinInt32:
		return math.MinInt32
	}
	return int32(value)
}
