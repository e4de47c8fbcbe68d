package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode selects whether `logsim check` draws the progress view.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch mode := uiMode(strings.TrimSpace(strings.ToLower(value))); mode {
	case "":
		return uiModeAuto, nil
	case uiModeAuto, uiModeOn, uiModeOff:
		return mode, nil
	default:
		return "", fmt.Errorf("check: --ui must be auto, on or off, got %q", value)
	}
}

// wantsProgressView decides whether a check run gets the progress view.
// Only pretty output over several circuit files qualifies; with --ui=auto
// stdout must also be a terminal.
func wantsProgressView(s checkSettings, files int) bool {
	if s.format != "pretty" || s.quiet || files < 2 {
		return false
	}
	switch s.ui {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}
