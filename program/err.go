package program

import (
	"errors"

	"github.com/ezrec/twoq/translate"
)

var f = translate.From

var (
	ErrLabelEmpty = errors.New(f("label name empty"))
)

// ErrLabelMissing is returned when a jump names an undefined label.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrLoad reports a failure to read a program file.
type ErrLoad struct {
	Path string
	Err  error
}

func (err *ErrLoad) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}
