package interp

// opPush pushes integers to the left ('[', '[.') or right (']', '].')
// queue. The single forms push only their first operand.
func (m *Machine) opPush(op string, args []string) (err error) {
	q := &m.State.Left
	if op[0] == TARGET_RIGHT {
		q = &m.State.Right
	}

	if len(op) == 1 {
		args = args[:1]
	}

	for _, arg := range args {
		var value int32
		value, err = m.resolveInt(arg)
		if err != nil {
			return
		}
		q.Push(value)
	}

	return
}

// opPushString pushes the raw operand to the string pool.
func (m *Machine) opPushString(op string, args []string) (err error) {
	m.State.Pool.Push(args[0])
	return
}

// opTransfer moves or copies a whole queue onto the end of the other.
func (m *Machine) opTransfer(op string, args []string) (err error) {
	st := &m.State

	switch op {
	case "\\/":
		st.Right.Append(st.Left.Values()...)
		st.Left.Clear()
	case "/\\":
		st.Left.Append(st.Right.Values()...)
		st.Right.Clear()
	case ")(":
		st.Right.Append(st.Left.Values()...)
	case "()":
		st.Left.Append(st.Right.Values()...)
	}

	return
}

// opPrint prints a queue, or a resolved value.
func (m *Machine) opPrint(op string, args []string) (err error) {
	switch op {
	case "~l":
		m.print(m.State.Left.String())
	case "~r":
		m.print(m.State.Right.String())
	default:
		var value Value
		value, err = m.Resolve(args[0])
		if err != nil {
			return
		}
		m.print(value.String())
	}

	return
}
