package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ezrec/twoq/internal"
	tqio "github.com/ezrec/twoq/io"
)

// traceInstruction reports the instruction about to be dispatched.
func (m *Machine) traceInstruction(ip int, token string) {
	color := m.Options.ColorInstructions

	index := tqio.Colorize(color, tqio.COLOR_GREEN, fmt.Sprintf("%d: ", ip))
	text := tqio.Colorize(color, tqio.COLOR_YELLOW, "instruction: "+m.Program.Text(ip))
	tok := tqio.Colorize(color, tqio.COLOR_RED, " token: "+token)

	fmt.Fprintln(m.Trace, index+text+tok)
}

// traceState reports the state traces enabled by the options line.
func (m *Machine) traceState() {
	opt := &m.Options
	st := &m.State

	if opt.TraceStacks {
		left := tqio.Colorize(opt.ColorStacks, tqio.COLOR_CYAN, "LEFT: "+st.Left.String())
		right := tqio.Colorize(opt.ColorStacks, tqio.COLOR_PURPLE, " RIGHT: "+st.Right.String())
		fmt.Fprintln(m.Trace, left+right)
	}

	if opt.TraceLabels {
		fmt.Fprintln(m.Trace, "Labels: "+tqio.Colorize(opt.ColorLabels, tqio.COLOR_CYAN, m.names()))
	}

	if opt.TracePool {
		fmt.Fprintln(m.Trace, "String pool: "+tqio.Colorize(true, tqio.COLOR_GREEN, st.Pool.String()))
	}
}

// names renders the labels, then the aliases, as '{name=value, ...}'
// in key order.
func (m *Machine) names() string {
	labels := make(map[string]string, len(m.Program.Labels))
	for name, ip := range m.Program.Labels {
		labels[name] = strconv.Itoa(ip)
	}

	var entries []string
	for name, value := range internal.IterSeq2Concat(internal.Sorted(labels), internal.Sorted(m.State.Alias)) {
		entries = append(entries, name+"="+value)
	}

	return "{" + strings.Join(entries, ", ") + "}"
}
