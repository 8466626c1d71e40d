// Package detector provides environment detection for prompt mode selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// InputMode represents how the user is prompted for input.
type InputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto InputMode = iota
	// ModeInteractive uses terminal forms with masked secret input.
	ModeInteractive
	// ModeLine reads plain lines from stdin.
	ModeLine
)

// DetectEnvironment returns the recommended input mode based on the environment.
// Forms need both stdin and stderr attached to a terminal outside of CI.
func DetectEnvironment() InputMode {
	isTTY := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeLine
	}
	return ModeInteractive
}

// ResolveMode applies the user override flag to auto-detection.
// userFlag should be one of: "auto", "interactive", "line", or empty.
func ResolveMode(autoDetected InputMode, userFlag string) InputMode {
	switch userFlag {
	case "interactive", "tty":
		return ModeInteractive
	case "line", "plain":
		return ModeLine
	default:
		return autoDetected
	}
}
