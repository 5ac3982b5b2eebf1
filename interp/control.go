package interp

import (
	"time"

	"github.com/ezrec/twoq/program"
)

// opCondition compares two integers and jumps past the label on success.
//
//	! <cmp> a b label
//
// <cmp> is one of '<', '>', '=' or 'x' (not equal). The label may be
// written with its definition or jump marker.
func (m *Machine) opCondition(op string, args []string) (err error) {
	values, err := m.resolveInts(args[1], args[2])
	if err != nil {
		return
	}
	a, b := values[0], values[1]

	var cond bool
	switch args[0] {
	case "<":
		cond = a < b
	case ">":
		cond = a > b
	case "=":
		cond = a == b
	case "x", "!=":
		cond = a != b
	default:
		err = ErrComparatorInvalid
		return
	}

	if !cond {
		return
	}

	label := args[3]
	if label[0] == program.LABEL_DEFINE || label[0] == program.LABEL_JUMP {
		label = label[1:]
	}

	err = m.jump(label)
	return
}

// opDelay suspends the machine for a number of milliseconds.
func (m *Machine) opDelay(op string, args []string) (err error) {
	ms, err := m.resolveInt(args[0])
	if err != nil {
		return
	}

	if ms < 0 {
		err = ErrDelayNegative
		return
	}

	m.Sleep(time.Duration(ms) * time.Millisecond)
	return
}
