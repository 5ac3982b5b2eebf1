// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"
	"iter"
	"math"
	"os"
	"slices"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/twoq/display"
	"github.com/ezrec/twoq/internal"
	"github.com/ezrec/twoq/interp"
	tqio "github.com/ezrec/twoq/io"
	"github.com/ezrec/twoq/program"
)

var _emulator_defines = map[string]string{
	"INT_MAX":     strconv.Itoa(math.MaxInt32),
	"INT_MIN":     strconv.Itoa(math.MinInt32),
	"DEFAULT_FPS": strconv.Itoa(display.DEFAULT_FPS),
}

// predefine is a named alias expression.
type predefine struct {
	name string
	expr string
}

// Emulator state. Interpreter + console + window.
type Emulator struct {
	Verbose bool             // If set, enables verbose logging.
	Machine *interp.Machine  // Reference to the interpreter.
	Program *program.Program // Reference to the currently loaded program.

	Console   tqio.Console // Console for the print instructions.
	Stats     io.Writer    // Destination of the FPS/UPS report.
	FrameDir  string       // If set, every rendered frame is saved here.
	FrameRate int          // Initial frame rate cap, if non-zero.

	predefine []predefine
	defined   map[string]string
}

// NewEmulator creates a new emulator, printing to stdout.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: program.FromLines(nil),
		Console: tqio.Console{Output: os.Stdout},
		Stats:   os.Stdout,
	}

	emu.Machine = interp.NewMachine(emu.Program)
	emu.Machine.Output = &emu.Console
	emu.Machine.NewSurface = emu.newSurface

	return
}

// newSurface creates the framebuffer for the window create instruction.
func (emu *Emulator) newSurface(width, height int, title string) (surface display.Surface, err error) {
	fb, err := display.NewFramebuffer(width, height, title)
	if err != nil {
		return
	}

	opt := &emu.Machine.Options
	fb.Vsync = opt.Vsync
	fb.Fullscreen = opt.Fullscreen
	fb.CustomLoop = opt.CustomLoop
	fb.Stats = emu.Stats
	fb.FrameDir = emu.FrameDir

	if emu.FrameRate != 0 {
		err = fb.SetFrameRateCap(emu.FrameRate)
		if err != nil {
			return
		}
	}

	fb.Start()

	surface = fb
	return
}

// Load a program, and reset the emulator.
func (emu *Emulator) Load(prog *program.Program) (err error) {
	emu.Program = prog
	emu.Machine.Program = prog
	emu.Machine.Options = prog.Options

	err = emu.Reset()
	return
}

// Predefine sets an alias to the value of a starlark expression before the
// program starts. The expression may refer to the built-in defines, and
// to other predefines.
func (emu *Emulator) Predefine(name string, expr string) {
	for n, pre := range emu.predefine {
		if pre.name == name {
			emu.predefine[n].expr = expr
			return
		}
	}

	emu.predefine = append(emu.predefine, predefine{name: name, expr: expr})
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(internal.Sorted(_emulator_defines),
		internal.Sorted(emu.defined),
	)
}

// Close the emulator, and its window.
func (emu *Emulator) Close() (err error) {
	if emu.Machine.Surface != nil {
		err = emu.Machine.Surface.Close()
		emu.Machine.Surface = nil
	}

	return
}

// Reset the interpreter state, and evaluate the predefines.
func (emu *Emulator) Reset() (err error) {
	emu.Machine.Verbose = emu.Verbose
	emu.Machine.Reset()

	pred := starlark.StringDict{}
	for key, str := range _emulator_defines {
		pred[key] = starlarkValue(str)
	}

	emu.defined = make(map[string]string, len(emu.predefine))

	// Predefines may refer to each other in any order, so evaluate in
	// passes until every one resolves, or a pass makes no progress.
	pending := slices.Clone(emu.predefine)
	for len(pending) != 0 {
		var failed []predefine
		var first error
		for _, pre := range pending {
			value, perr := evaluate(pre.name, pre.expr, pred)
			if perr != nil {
				if first == nil {
					first = perr
				}
				failed = append(failed, pre)
				continue
			}
			pred[pre.name] = starlarkValue(value)
			emu.defined[pre.name] = value
			emu.Machine.State.Alias[pre.name] = value
		}

		if len(failed) == len(pending) {
			err = first
			return
		}
		pending = failed
	}

	return
}

// starlarkValue converts an alias value to an integer when it is one.
func starlarkValue(str string) starlark.Value {
	v64, err := strconv.ParseInt(str, 10, 32)
	if err != nil {
		return starlark.String(str)
	}
	return starlark.MakeInt64(v64)
}

// evaluate a predefine expression as an alias value.
func evaluate(name string, expr string, pred starlark.StringDict) (value string, err error) {
	thread := starlark.Thread{Name: name}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, name, prog, pred)
	if err != nil {
		err = &ErrExpression{Name: name, Err: err}
		return
	}

	switch rc := dict["rc"].(type) {
	case starlark.Int:
		v64, ok := rc.Int64()
		if !ok || v64 < math.MinInt32 || v64 > math.MaxInt32 {
			err = ErrPredefine(name)
			return
		}
		value = strconv.FormatInt(v64, 10)
	case starlark.String:
		value = rc.GoString()
	default:
		err = ErrPredefine(name)
	}

	return
}

// Ticks returns the total instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Machine.Ticks
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return emu.Machine.State.Ip
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	return emu.Program.Line(emu.Machine.State.Ip)
}

// Halted is true once the program has entered its halt forever state.
func (emu *Emulator) Halted() bool {
	return emu.Machine.Halted
}

// Surface returns the window, if one has been created.
func (emu *Emulator) Surface() display.Surface {
	return emu.Machine.Surface
}

// Tick performs a single instruction.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Machine.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	done, err = emu.Machine.Tick()
	return
}

// Run the program until it halts, or faults.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
