package interp

import (
	"errors"

	"github.com/ezrec/twoq/translate"
)

var f = translate.From

var (
	// Instruction family errors
	ErrStack         = errors.New(f("stack"))
	ErrOutput        = errors.New(f("output"))
	ErrCondition     = errors.New(f("condition"))
	ErrArithmetic    = errors.New(f("arithmetic"))
	ErrBitwise       = errors.New(f("bitwise"))
	ErrTrigonometric = errors.New(f("trigonometric"))
	ErrConversion    = errors.New(f("conversion"))
	ErrRandom        = errors.New(f("random"))
	ErrAlias         = errors.New(f("alias"))
	ErrDelay         = errors.New(f("delay"))
	ErrGraphics      = errors.New(f("graphics"))
	ErrJump          = errors.New(f("jump"))

	// Execution errors
	ErrOperandMissing      = errors.New(f("operand missing"))
	ErrDivideByZero        = errors.New(f("divide by zero"))
	ErrComparatorInvalid   = errors.New(f("comparator invalid"))
	ErrDelayNegative       = errors.New(f("delay negative"))
	ErrSurfaceMissing      = errors.New(f("the display isn't initialized"))
	ErrGraphicsUnsupported = errors.New(f("graphics command unsupported"))
)

// ErrInstructionInvalid names an unknown mnemonic.
type ErrInstructionInvalid string

func (ei ErrInstructionInvalid) Error() string {
	return f("keyword is not implemented: %v", string(ei))
}

// ErrQueueEmpty names the queue that was popped or peeked while empty.
type ErrQueueEmpty string

func (eq ErrQueueEmpty) Error() string {
	return f("%v is empty", string(eq))
}

func (eq ErrQueueEmpty) Is(err error) (ok bool) {
	_, ok = err.(ErrQueueEmpty)
	return
}

// ErrAliasMissing names an alias that is not defined.
type ErrAliasMissing string

func (ea ErrAliasMissing) Error() string {
	return f("alias %v missing", string(ea))
}

// ErrTargetInvalid is a destination operand with an unknown sigil.
type ErrTargetInvalid string

func (et ErrTargetInvalid) Error() string {
	return f("'%v' is not a push target", string(et))
}

// ErrParseInteger is an operand that is not a 32-bit integer.
type ErrParseInteger string

func (err ErrParseInteger) Error() string {
	return f("'%v' is not an integer", string(err))
}

// ErrParseFloat is an operand that is not a number.
type ErrParseFloat string

func (err ErrParseFloat) Error() string {
	return f("'%v' is not a number", string(err))
}

// Fault is a fatal runtime error at an instruction.
type Fault struct {
	Ip     int    // Instruction index.
	LineNo int    // Source line number.
	Line   string // Source text.
	Err    error
}

func (ft *Fault) Error() string {
	return f("error at %d. -> %v: %v", ft.Ip, ft.Line, ft.Err)
}

func (ft *Fault) Unwrap() error {
	return ft.Err
}
