// Package io provides the output sinks of the twoq print instructions.
package io

// Sink receives the text of the print instructions.
type Sink interface {
	// Write outputs a single line. If substitute is set, each '§' in text
	// becomes a newline. If prefixed is set, the line starts with the
	// "Output: " prefix.
	Write(text string, substitute bool, prefixed bool)
}

const (
	PREFIX     = "Output: " // Prefix of printed lines.
	NEWLINE_AS = "§"        // Replaced by a newline when substituting.
)
