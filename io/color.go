package io

// ANSI colours used by the console sink and the debug traces.
const (
	COLOR_RESET  = "\033[0m"
	COLOR_RED    = "\033[0;31m"
	COLOR_GREEN  = "\033[0;32m"
	COLOR_YELLOW = "\033[0;33m"
	COLOR_BLUE   = "\033[0;34m"
	COLOR_PURPLE = "\033[0;35m"
	COLOR_CYAN   = "\033[0;36m"
)

// Colorize wraps text in a colour when enabled.
func Colorize(enabled bool, color string, text string) string {
	if !enabled {
		return text
	}
	return color + text + COLOR_RESET
}
