package display

import (
	"errors"

	"github.com/ezrec/twoq/translate"
)

var f = translate.From

var (
	ErrSize        = errors.New(f("surface size invalid"))
	ErrOutOfBounds = errors.New(f("coordinates out of bounds"))
	ErrFrameRate   = errors.New(f("frame rate invalid"))
	ErrClosed      = errors.New(f("surface closed"))
)
