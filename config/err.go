package config

import (
	"errors"

	"github.com/ezrec/twoq/translate"
)

var f = translate.From

var (
	ErrFrameRate = errors.New(f("frame rate must not be negative"))
)

// ErrColorInvalid is an unknown colour mode.
type ErrColorInvalid string

func (err ErrColorInvalid) Error() string {
	return f("color mode %q invalid, expected auto, always or never", string(err))
}

// ErrLoad is a configuration file that could not be read.
type ErrLoad struct {
	Path string
	Err  error
}

func (err *ErrLoad) Error() string {
	return f("config %v: %v", err.Path, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}
