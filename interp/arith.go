package interp

import (
	"fmt"
	"math"
)

// opArithmetic computes 'a <op> b' and stores it to the target.
//
//	+ - * : %  a b target
//	concat     a b target
//
// '+' concatenates when either side is not an integer.
func (m *Machine) opArithmetic(op string, args []string) (err error) {
	a, err := m.Resolve(args[0])
	if err != nil {
		return
	}
	b, err := m.Resolve(args[1])
	if err != nil {
		return
	}

	if op == "concat" {
		err = m.Store(args[2], TextValue(a.String()+b.String()))
		return
	}

	x, errA := a.AsInt()
	y, errB := b.AsInt()
	if op == "+" && (errA != nil || errB != nil) {
		err = m.Store(args[2], TextValue(a.String()+b.String()))
		return
	}
	if errA != nil {
		err = errA
		return
	}
	if errB != nil {
		err = errB
		return
	}

	var result int32
	switch op {
	case "+":
		result = x + y
	case "-":
		result = x - y
	case "*":
		result = x * y
	case ":", "%":
		if y == 0 {
			err = ErrDivideByZero
			return
		}
		if op == ":" {
			result = x / y
		} else {
			result = x % y
		}
	}

	err = m.Store(args[2], IntValue(result))
	return
}

// opBitwise computes 'a <op> b' and stores it to the target. Shift counts
// use their low five bits; '>' is an arithmetic shift.
func (m *Machine) opBitwise(op string, args []string) (err error) {
	values, err := m.resolveInts(args[0], args[1])
	if err != nil {
		return
	}
	x, y := int32(values[0]), int32(values[1])

	var result int32
	switch op {
	case "^":
		result = x ^ y
	case "<":
		result = x << (uint32(y) & 31)
	case ">":
		result = x >> (uint32(y) & 31)
	case "|":
		result = x | y
	case "&":
		result = x & y
	}

	err = m.Store(args[2], IntValue(result))
	return
}

var trigUnary = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"atan": math.Atan,
	"sqrt": math.Sqrt,
}

var trigBinary = map[string]func(float64, float64) float64{
	"atan2": math.Atan2,
	"pow":   math.Pow,
}

// opTrigonometric evaluates a floating point function and stores the
// result, truncated to an integer.
//
//	sin cos tan atan sqrt  a target
//	atan2 pow              a b target
func (m *Machine) opTrigonometric(op string, args []string) (err error) {
	a, err := m.Resolve(args[0])
	if err != nil {
		return
	}
	x, err := a.AsFloat()
	if err != nil {
		return
	}

	if fn, ok := trigUnary[op]; ok {
		err = m.Store(args[1], IntValue(truncate(fn(x))))
		return
	}

	b, err := m.Resolve(args[1])
	if err != nil {
		return
	}
	y, err := b.AsFloat()
	if err != nil {
		return
	}

	err = m.Store(args[2], IntValue(truncate(trigBinary[op](x, y))))
	return
}

// opBinaryToDecimal converts a string of binary digits to an integer.
// The rightmost digit has weight 1, each digit to its left double that,
// wrapping at 32 bits.
func (m *Machine) opBinaryToDecimal(op string, args []string) (err error) {
	value, err := m.Resolve(args[0])
	if err != nil {
		return
	}

	text := value.String()
	if len(text) == 0 {
		err = ErrParseInteger(text)
		return
	}

	var result int32
	for n := range len(text) {
		ch := text[len(text)-1-n]
		if ch < '0' || ch > '9' {
			err = ErrParseInteger(text)
			return
		}
		result += int32(ch-'0') * (int32(1) << (uint(n) & 31))
	}

	err = m.Store(args[1], IntValue(result))
	return
}

// opDecimalToBinary converts an integer to its 32 digit two's complement
// binary string.
func (m *Machine) opDecimalToBinary(op string, args []string) (err error) {
	value, err := m.resolveInt(args[0])
	if err != nil {
		return
	}

	err = m.Store(args[1], TextValue(fmt.Sprintf("%032b", uint32(value))))
	return
}

// opRandom stores 0 or 1.
func (m *Machine) opRandom(op string, args []string) (err error) {
	var bit int32
	if m.Rand() {
		bit = 1
	}

	err = m.Store(args[0], IntValue(bit))
	return
}
