// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package interp

import (
	"errors"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/ezrec/twoq/display"
	tqio "github.com/ezrec/twoq/io"
	"github.com/ezrec/twoq/program"
)

// SurfaceFactory creates the surface for the window create instruction.
type SurfaceFactory func(width, height int, title string) (display.Surface, error)

// Machine is the interpreter for a single program run.
type Machine struct {
	Verbose bool // If set, logs each dispatched instruction.

	State   State            // Execution state.
	Program *program.Program // Program being run.
	Options program.Options  // Debug and presentation options.

	Output     tqio.Sink           // Destination of the print instructions.
	Trace      io.Writer           // Destination of the debug traces.
	Surface    display.Surface     // Window, once created.
	NewSurface SurfaceFactory      // Creates the window.
	Sleep      func(time.Duration) // Delay implementation.
	Rand       func() bool         // Coin flip for 'rand'.

	Halted bool // Set by the halt forever instruction.
	Ticks  int  // Instructions executed since reset.

	next int // Instruction pointer after the current instruction.
}

// NewMachine creates a machine for a program, printing to stdout.
func NewMachine(prog *program.Program) (m *Machine) {
	m = &Machine{
		Program: prog,
		Options: prog.Options,
		Output:  &tqio.Console{Output: os.Stdout},
		Trace:   os.Stdout,
		Sleep:   time.Sleep,
		Rand:    func() bool { return rand.IntN(2) == 1 },
	}
	m.NewSurface = m.newFramebuffer

	m.Reset()

	return
}

// newFramebuffer is the default SurfaceFactory.
func (m *Machine) newFramebuffer(width, height int, title string) (surface display.Surface, err error) {
	fb, err := display.NewFramebuffer(width, height, title)
	if err != nil {
		return
	}

	fb.Vsync = m.Options.Vsync
	fb.Fullscreen = m.Options.Fullscreen
	fb.CustomLoop = m.Options.CustomLoop
	fb.Start()

	surface = fb
	return
}

// Reset the execution state. An existing surface is kept.
func (m *Machine) Reset() {
	m.State.Reset()
	m.Halted = false
	m.Ticks = 0
}

// Done is true once the program has run off its end or halted.
func (m *Machine) Done() bool {
	return m.Halted || m.State.Ip >= m.Program.Len()
}

// Tick executes a single instruction.
func (m *Machine) Tick() (done bool, err error) {
	if m.Done() {
		done = true
		return
	}

	ip := m.State.Ip
	words := m.Program.Lines[ip]

	defer func() {
		if err != nil {
			err = &Fault{
				Ip:     ip,
				LineNo: m.Program.Line(ip),
				Line:   m.Program.Text(ip),
				Err:    err,
			}
		}
	}()

	if m.Options.TraceInstructions && len(words) > 0 {
		m.traceInstruction(ip, words[0])
	}

	m.next = ip + 1

	err = m.Execute(words)
	if err != nil {
		return
	}

	m.State.Ip = m.next
	m.Ticks++

	if m.Options.Debug() {
		m.traceState()
	}

	done = m.Done()
	return
}

// Run ticks until the program is done, or faults.
func (m *Machine) Run() (err error) {
	for done := false; !done; {
		done, err = m.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Execute dispatches a single tokenised line. Jumps are applied to the
// pending instruction pointer.
func (m *Machine) Execute(words []string) (err error) {
	if len(words) == 0 {
		return
	}

	token := words[0]
	args := words[1:]

	if m.Verbose {
		log.Printf("%03d: %v", m.State.Ip, strings.Join(words, " "))
	}

	inst, ok := instructions[token]
	if !ok {
		switch token[0] {
		case program.LABEL_JUMP:
			err = m.jump(token[1:])
			if err != nil {
				err = errors.Join(ErrJump, err)
			}
			return
		case program.LABEL_DEFINE:
			return
		}
		err = ErrInstructionInvalid(token)
		return
	}

	if len(args) < inst.arity {
		err = errors.Join(inst.family, ErrOperandMissing)
		return
	}

	err = inst.run(m, token, args)
	if err != nil {
		err = errors.Join(inst.family, err)
		return
	}

	return
}

// jump continues execution after the definition of a label.
func (m *Machine) jump(label string) (err error) {
	ip, err := m.Program.Label(label)
	if err != nil {
		return
	}

	m.next = ip + 1
	return
}

// Resolve an operand against the current state.
func (m *Machine) Resolve(token string) (Value, error) {
	return m.State.Resolve(token)
}

// resolveInt resolves an operand as an integer.
func (m *Machine) resolveInt(token string) (value int32, err error) {
	v, err := m.State.Resolve(token)
	if err != nil {
		return
	}

	return v.AsInt()
}

// resolveInts resolves each operand, in order, as an integer.
func (m *Machine) resolveInts(tokens ...string) (values []int, err error) {
	values = make([]int, len(tokens))
	for n, token := range tokens {
		var v int32
		v, err = m.resolveInt(token)
		if err != nil {
			return
		}
		values[n] = int(v)
	}

	return
}

// Store a value to a push target.
func (m *Machine) Store(target string, value Value) error {
	return m.State.Store(target, value)
}

// print writes a line to the output sink with the program's formatting.
func (m *Machine) print(text string) {
	m.Output.Write(text, m.Options.Format, !m.Options.NoPrefix)
}
