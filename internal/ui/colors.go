// Package ui holds the ANSI palette and the styling helpers the CLI
// commands share. Log lines are styled by zerolog's console writer;
// these cover only the direct command output.
package ui

const (
	ColorReset = "\x1b[0m"
	ColorBold  = "\x1b[1m"
	ColorDim   = "\x1b[2m"

	ColorCyan   = "\x1b[36m"
	ColorGreen  = "\x1b[32m"
	ColorYellow = "\x1b[33m"
	ColorWhite  = "\x1b[97m"
	ColorRed    = "\x1b[31m"
)

func paint(code, s string) string {
	return code + s + ColorReset
}

// Bold emphasizes a fragment, used for stage and artifact names
func Bold(s string) string { return paint(ColorBold, s) }

// Success marks a completed step
func Success(s string) string { return paint(ColorGreen, s) }

// Info styles secondary detail like skip reasons and log pointers
func Info(s string) string { return paint(ColorDim+ColorYellow, s) }

// Error marks a failure
func Error(s string) string { return paint(ColorRed, s) }
