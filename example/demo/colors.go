package main

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"

	colorGray        = "\033[90m"
	colorBrightRed   = "\033[91m"
	colorBrightGreen = "\033[92m"
	colorBrightCyan  = "\033[96m"
)

// colorSupported reports whether stdout is a terminal.
func colorSupported() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func colorize(text, color string) string {
	if !colorSupported() {
		return text
	}
	return color + text + colorReset
}

func header(text string) string {
	return colorize(colorize(text, colorBrightCyan), colorBold)
}

func separator(length int) string {
	return colorize(strings.Repeat("─", length), colorGray)
}

func statusIcon(ok bool) string {
	if ok {
		return colorize("✅", colorBrightGreen)
	}
	return colorize("❌", colorBrightRed)
}
