package io

import (
	"io"
	"strings"
	"sync"
)

// Console writes printed lines to an io.Writer.
type Console struct {
	Output io.Writer
	Color  bool // If set, printed values are shown in blue.

	mutex sync.Mutex
}

var _ Sink = (*Console)(nil)

// Format renders a line as Console would write it, without the newline.
func Format(text string, substitute, prefixed, color bool) string {
	if substitute {
		text = strings.ReplaceAll(text, NEWLINE_AS, "\n")
	}
	text = Colorize(color, COLOR_BLUE, text)
	if prefixed {
		text = PREFIX + text
	}
	return text
}

func (con *Console) Write(text string, substitute bool, prefixed bool) {
	con.mutex.Lock()
	defer con.mutex.Unlock()

	io.WriteString(con.Output, Format(text, substitute, prefixed, con.Color)+"\n")
}
