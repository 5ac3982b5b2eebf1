package io

import (
	"strings"
)

// Capture is a Sink that records every line.
type Capture struct {
	Entries []Entry
}

// Entry is a single captured Write.
type Entry struct {
	Text       string
	Substitute bool
	Prefixed   bool
}

var _ Sink = (*Capture)(nil)

func (capt *Capture) Write(text string, substitute bool, prefixed bool) {
	capt.Entries = append(capt.Entries, Entry{Text: text, Substitute: substitute, Prefixed: prefixed})
}

// Texts returns the raw text of each captured line.
func (capt *Capture) Texts() (texts []string) {
	for _, entry := range capt.Entries {
		texts = append(texts, entry.Text)
	}
	return
}

// String renders the captured lines as an uncoloured console would.
func (capt *Capture) String() string {
	var sb strings.Builder
	for _, entry := range capt.Entries {
		sb.WriteString(Format(entry.Text, entry.Substitute, entry.Prefixed, false))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Reset forgets all captured lines.
func (capt *Capture) Reset() {
	capt.Entries = nil
}
