package program

import (
	"strings"
)

// OPTIONS_MARKER starts the optional first line of a program.
const OPTIONS_MARKER = '_'

// Options are the debug and presentation flags from the options line.
type Options struct {
	Present bool // An options line was found.

	TraceStacks       bool // s
	ColorStacks       bool // S
	TraceInstructions bool // i
	ColorInstructions bool // I
	TraceLabels       bool // l
	ColorLabels       bool // L
	TracePool         bool // p
	Format            bool // f: '§' in output becomes a newline.
	ShowFps           bool // F
	NoPrefix          bool // c: no "Output: " prefix.
	Vsync             bool // V
	Fullscreen        bool // U
	CustomLoop        bool // C
}

// ParseOptions sets the flags named by the letters in text. The upper
// case trace letters imply their lower case counterpart. Unknown letters
// are ignored.
func (opt *Options) ParseOptions(text string) {
	for _, ch := range text {
		switch ch {
		case 'S':
			opt.ColorStacks = true
			fallthrough
		case 's':
			opt.TraceStacks = true
		case 'I':
			opt.ColorInstructions = true
			fallthrough
		case 'i':
			opt.TraceInstructions = true
		case 'L':
			opt.ColorLabels = true
			fallthrough
		case 'l':
			opt.TraceLabels = true
		case 'p':
			opt.TracePool = true
		case 'f':
			opt.Format = true
		case 'F':
			opt.ShowFps = true
		case 'c':
			opt.NoPrefix = true
		case 'V':
			opt.Vsync = true
		case 'U':
			opt.Fullscreen = true
		case 'C':
			opt.CustomLoop = true
		}
	}
}

// Debug is set when post-instruction traces should be considered.
func (opt *Options) Debug() bool {
	return opt.Present
}

// String renders the options back as an options line, without the marker.
func (opt Options) String() string {
	var sb strings.Builder
	flags := []struct {
		set    bool
		letter byte
	}{
		{opt.ColorStacks, 'S'},
		{opt.TraceStacks && !opt.ColorStacks, 's'},
		{opt.ColorInstructions, 'I'},
		{opt.TraceInstructions && !opt.ColorInstructions, 'i'},
		{opt.ColorLabels, 'L'},
		{opt.TraceLabels && !opt.ColorLabels, 'l'},
		{opt.TracePool, 'p'},
		{opt.Format, 'f'},
		{opt.ShowFps, 'F'},
		{opt.NoPrefix, 'c'},
		{opt.Vsync, 'V'},
		{opt.Fullscreen, 'U'},
		{opt.CustomLoop, 'C'},
	}
	for _, flag := range flags {
		if flag.set {
			sb.WriteByte(flag.letter)
		}
	}
	return sb.String()
}
