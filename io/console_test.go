package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_Write(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		text       string
		substitute bool
		prefixed   bool
		color      bool
		output     string
	}{
		{"5", false, true, false, "Output: 5\n"},
		{"5", false, false, false, "5\n"},
		{"a§b", false, false, false, "a§b\n"},
		{"a§b", true, false, false, "a\nb\n"},
		{"a§b", true, true, false, "Output: a\nb\n"},
		{"[1, 2]", false, true, true, "Output: " + COLOR_BLUE + "[1, 2]" + COLOR_RESET + "\n"},
	}

	for _, entry := range table {
		out := &bytes.Buffer{}
		con := &Console{Output: out, Color: entry.color}
		con.Write(entry.text, entry.substitute, entry.prefixed)
		assert.Equal(entry.output, out.String(), entry.text)
	}
}

func TestColorize(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("x", Colorize(false, COLOR_RED, "x"))
	assert.Equal(COLOR_RED+"x"+COLOR_RESET, Colorize(true, COLOR_RED, "x"))
}

func TestCapture(t *testing.T) {
	assert := assert.New(t)

	capt := &Capture{}
	capt.Write("1", false, true)
	capt.Write("x§y", true, false)

	assert.Equal([]string{"1", "x§y"}, capt.Texts())
	assert.Equal("Output: 1\nx\ny\n", capt.String())
	assert.Equal(Entry{Text: "1", Prefixed: true}, capt.Entries[0])

	capt.Reset()
	assert.Empty(capt.Entries)
	assert.Equal("", capt.String())
}
