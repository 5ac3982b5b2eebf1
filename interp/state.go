package interp

import (
	"github.com/ezrec/twoq/queue"
)

// Operand sigils, read positions.
const (
	SIGIL_POOL_POP   = ','
	SIGIL_POOL_PEEK  = '.'
	SIGIL_LEFT_POP   = '\\'
	SIGIL_RIGHT_POP  = '/'
	SIGIL_LEFT_PEEK  = '('
	SIGIL_RIGHT_PEEK = ')'
	SIGIL_ALIAS      = '@'
)

// Push target sigils, write positions.
const (
	TARGET_RIGHT = ']'
	TARGET_LEFT  = '['
	TARGET_POOL  = '\''
	TARGET_ALIAS = '#'
)

// Queue names, as reported by ErrQueueEmpty.
const (
	NAME_LEFT  = "left queue"
	NAME_RIGHT = "right queue"
	NAME_POOL  = "string pool"
)

// State is the execution state of a running program.
type State struct {
	Left  queue.Queue[int32]  // Left integer queue.
	Right queue.Queue[int32]  // Right integer queue.
	Pool  queue.Queue[string] // String pool.
	Alias map[string]string   // Alias table.
	Ip    int                 // Instruction pointer.
}

// Reset empties the queues, pool and alias table, and rewinds the
// instruction pointer.
func (st *State) Reset() {
	st.Left.Clear()
	st.Right.Clear()
	st.Pool.Clear()
	st.Alias = make(map[string]string)
	st.Ip = 0
}

// Resolve returns the value of an operand in a read position.
//
//	,x .x      pop / peek the string pool
//	\x /x      pop the left / right queue
//	(x )x      peek the left / right queue
//	@<sigil>   same as <sigil>
//	@@x        the alias named by the value of @x
//	@name      the alias 'name'
//
// Anything else is a literal. Every pop sigil consumes an element each time
// it is resolved.
func (st *State) Resolve(token string) (value Value, err error) {
	if len(token) == 0 {
		value = TextValue(token)
		return
	}

	sigil := token[0]
	if sigil == SIGIL_ALIAS {
		name := token[1:]
		if len(name) > 0 && name[0] == SIGIL_ALIAS {
			var inner Value
			inner, err = st.Resolve(name)
			if err != nil {
				return
			}
			value, err = st.lookup(inner.String())
			return
		}
		if len(name) == 0 || !isSigil(name[0]) {
			value, err = st.lookup(name)
			return
		}
		sigil = name[0]
	}

	switch sigil {
	case SIGIL_POOL_POP, SIGIL_POOL_PEEK:
		value, err = st.takePool(sigil)
	case SIGIL_LEFT_POP, SIGIL_RIGHT_POP, SIGIL_LEFT_PEEK, SIGIL_RIGHT_PEEK:
		value, err = st.takeQueue(sigil)
	default:
		value = TextValue(token)
	}

	return
}

// isSigil is true for the pool and queue sigils.
func isSigil(ch byte) bool {
	switch ch {
	case SIGIL_POOL_POP, SIGIL_POOL_PEEK,
		SIGIL_LEFT_POP, SIGIL_RIGHT_POP, SIGIL_LEFT_PEEK, SIGIL_RIGHT_PEEK:
		return true
	}
	return false
}

func (st *State) lookup(name string) (value Value, err error) {
	text, ok := st.Alias[name]
	if !ok {
		err = ErrAliasMissing(name)
		return
	}

	value = TextValue(text)
	return
}

func (st *State) takePool(sigil byte) (value Value, err error) {
	var text string
	var ok bool
	if sigil == SIGIL_POOL_POP {
		text, ok = st.Pool.Pop()
	} else {
		text, ok = st.Pool.Peek()
	}
	if !ok {
		err = ErrQueueEmpty(NAME_POOL)
		return
	}

	value = TextValue(text)
	return
}

func (st *State) takeQueue(sigil byte) (value Value, err error) {
	var q *queue.Queue[int32]
	var name string
	switch sigil {
	case SIGIL_LEFT_POP, SIGIL_LEFT_PEEK:
		q, name = &st.Left, NAME_LEFT
	default:
		q, name = &st.Right, NAME_RIGHT
	}

	var v int32
	var ok bool
	if sigil == SIGIL_LEFT_POP || sigil == SIGIL_RIGHT_POP {
		v, ok = q.Pop()
	} else {
		v, ok = q.Peek()
	}
	if !ok {
		err = ErrQueueEmpty(name)
		return
	}

	value = IntValue(v)
	return
}

// Store writes a value to a destination operand.
//
//	]    push to the right queue
//	[    push to the left queue
//	'    push to the string pool
//	#name  set the alias 'name'
func (st *State) Store(target string, value Value) (err error) {
	if len(target) == 0 {
		err = ErrTargetInvalid(target)
		return
	}

	switch target[0] {
	case TARGET_RIGHT, TARGET_LEFT:
		var v int32
		v, err = value.AsInt()
		if err != nil {
			return
		}
		if target[0] == TARGET_RIGHT {
			st.Right.Push(v)
		} else {
			st.Left.Push(v)
		}
	case TARGET_POOL:
		st.Pool.Push(value.String())
	case TARGET_ALIAS:
		if st.Alias == nil {
			st.Alias = make(map[string]string)
		}
		st.Alias[target[1:]] = value.String()
	default:
		err = ErrTargetInvalid(target)
	}

	return
}
