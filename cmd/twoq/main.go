// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/tebeka/atexit"

	"github.com/ezrec/twoq/config"
	"github.com/ezrec/twoq/emulator"
	"github.com/ezrec/twoq/internal"
	"github.com/ezrec/twoq/program"
	"github.com/ezrec/twoq/translate"
)

var errDefine = errors.New("expected name=expression")

// defineFlag collects repeated -D name=expr flags.
type defineFlag map[string]string

func (df defineFlag) String() string {
	var defs []string
	for name, expr := range internal.Sorted(df) {
		defs = append(defs, name+"="+expr)
	}
	return strings.Join(defs, ",")
}

func (df defineFlag) Set(value string) error {
	name, expr, ok := strings.Cut(value, "=")
	if !ok || len(name) == 0 {
		return errDefine
	}
	df[name] = expr
	return nil
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [flags] program.tq\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	var configPath string
	var verbose bool
	var color string
	var seed uint64
	var fps int
	var frames string
	var trace string
	var lang string
	define := defineFlag{}

	flag.StringVar(&configPath, "config", "", "YAML configuration file (default $"+config.ENV_CONFIG+")")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&color, "color", config.COLOR_AUTO, "Output colour: auto, always or never")
	flag.Uint64Var(&seed, "seed", 0, "Seed for 'rand', 0 for a random seed")
	flag.IntVar(&fps, "fps", 0, "Initial frame rate cap")
	flag.StringVar(&frames, "frames", "", "Directory to save rendered frames to")
	flag.StringVar(&trace, "trace", "", "Extra options line letters")
	flag.StringVar(&lang, "lang", "", "Message language, as a BCP 47 tag")
	flag.Var(define, "D", "Predefine an alias as name=expression (repeatable)")
	flag.Usage = usage

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		atexit.Exit(2)
	}
	path := flag.Arg(0)

	if len(lang) != 0 {
		err := translate.SetLanguage(lang)
		if err != nil {
			log.Printf("%v: %v", lang, err)
			atexit.Exit(2)
		}
	}

	cfg, err := config.Load(config.Path(configPath))
	if err != nil {
		log.Printf("%v", err)
		atexit.Exit(2)
	}

	// Flags given on the command line override the configuration file.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "v":
			cfg.Verbose = verbose
		case "color":
			cfg.Color = color
		case "seed":
			cfg.Seed = seed
		case "fps":
			cfg.Fps = fps
		case "frames":
			cfg.Frames = frames
		case "trace":
			cfg.Trace += trace
		case "D":
			for name, expr := range define {
				cfg.Define[name] = expr
			}
		}
	})

	err = cfg.Validate()
	if err != nil {
		log.Printf("%v", err)
		atexit.Exit(2)
	}

	prog, err := program.Load(path)
	if err != nil {
		atexit.Fatalf("%v", err)
	}

	if len(cfg.Trace) != 0 {
		prog.Options.Present = true
		prog.Options.ParseOptions(cfg.Trace)
	}

	if cfg.Verbose {
		log.Printf("%v: options %q", path, prog.Options.String())
		for _, label := range slices.Compact(slices.Sorted(slices.Values(prog.Redefined))) {
			log.Printf("%v: label %v redefined", path, label)
		}
	}

	emu := emulator.NewEmulator()
	emu.Verbose = cfg.Verbose
	emu.Console.Color = cfg.UseColor(os.Stdout.Fd())
	emu.FrameDir = cfg.Frames
	emu.FrameRate = cfg.Fps

	if cfg.Seed != 0 {
		rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
		emu.Machine.Rand = func() bool { return rng.IntN(2) == 1 }
	}

	for name, expr := range internal.Sorted(cfg.Define) {
		emu.Predefine(name, expr)
	}

	atexit.Register(func() {
		err := emu.Close()
		if err != nil {
			log.Printf("%v", err)
		}
	})

	err = emu.Load(prog)
	if err != nil {
		atexit.Fatalf("%v: %v", path, err)
	}

	err = emu.Run()
	if err != nil {
		atexit.Fatalf("%v: %v", path, err)
	}

	if emu.Halted() {
		// The window stays up until the user interrupts.
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
	}

	atexit.Exit(0)
}
