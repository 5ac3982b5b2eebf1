// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package program holds a loaded twoq program: the tokenised lines, the
// options line flags and the label table.
package program

import (
	"bufio"
	"io"
	"os"
	"strings"
)

const (
	LABEL_DEFINE = '{' // Starts a label definition line.
	LABEL_JUMP   = '}' // Starts an unconditional jump line.
)

// Program is an immutable, pre-tokenised program.
type Program struct {
	Options Options

	Lines  [][]string     // Tokens for each instruction.
	Source []string       // Raw text for each instruction.
	LineNo []int          // 1-based line number in the loaded text.
	Labels map[string]int // Label name to instruction index.

	Redefined []string // Labels defined more than once.
}

// Parse reads a program from input.
func Parse(input io.Reader) (prog *Program, err error) {
	var text []string

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		text = append(text, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	prog = FromLines(text)
	return
}

// FromLines builds a program from already loaded text lines.
func FromLines(text []string) (prog *Program) {
	prog = &Program{}

	lineno := 1
	if len(text) > 0 && strings.HasPrefix(text[0], string(OPTIONS_MARKER)) {
		prog.Options.Present = true
		prog.Options.ParseOptions(text[0][1:])
		text = text[1:]
		lineno++
	}

	for n, line := range text {
		prog.Source = append(prog.Source, line)
		prog.Lines = append(prog.Lines, strings.Fields(line))
		prog.LineNo = append(prog.LineNo, lineno+n)
	}

	prog.buildLabels()

	return
}

// Load reads a program file from disk.
func Load(path string) (prog *Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		err = &ErrLoad{Path: path, Err: err}
		return
	}
	defer inf.Close()

	prog, err = Parse(inf)
	if err != nil {
		err = &ErrLoad{Path: path, Err: err}
		return
	}

	return
}

// buildLabels records every label definition. A later definition of the
// same name replaces the earlier one.
func (prog *Program) buildLabels() {
	prog.Labels = make(map[string]int, 16)

	for n, words := range prog.Lines {
		if len(words) == 0 || words[0][0] != LABEL_DEFINE {
			continue
		}
		label := words[0][1:]
		if _, ok := prog.Labels[label]; ok {
			prog.Redefined = append(prog.Redefined, label)
		}
		prog.Labels[label] = n
	}
}

// Label returns the instruction index of a label definition.
func (prog *Program) Label(name string) (ip int, err error) {
	if len(name) == 0 {
		err = ErrLabelEmpty
		return
	}

	ip, ok := prog.Labels[name]
	if !ok {
		err = ErrLabelMissing(name)
		return
	}

	return
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Lines)
}

// Line returns the 1-based source line number for an instruction index.
func (prog *Program) Line(ip int) int {
	if ip < 0 || ip >= len(prog.LineNo) {
		return 0
	}
	return prog.LineNo[ip]
}

// Text returns the raw text for an instruction index.
func (prog *Program) Text(ip int) string {
	if ip < 0 || ip >= len(prog.Source) {
		return ""
	}
	return prog.Source[ip]
}
