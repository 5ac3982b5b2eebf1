package emulator

import (
	"github.com/ezrec/twoq/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrPredefine is a predefined alias whose expression is not an integer or
// a string.
type ErrPredefine string

func (err ErrPredefine) Error() string {
	return f("predefine %v is not an integer or string", string(err))
}

// ErrExpression is a predefined alias expression that failed to evaluate.
type ErrExpression struct {
	Name string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("predefine %v: %v", err.Name, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}
