// Package controller provides the terminal front ends that display diffs and
// test run results.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/Eeeeast/diff/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeCompare StartMode = iota
	ModeProgram
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode   StartMode
	cancel func()
}

// WithCompareMode sets the UI to display a single diff.
func WithCompareMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCompare
	}
}

// WithProgramMode sets the UI to test execution mode.
func WithProgramMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeProgram
	}
}

// WithCancel registers a function the UI calls when the user aborts a run.
func WithCancel(cancel func()) StartOption {
	return func(c *StartConfig) {
		c.cancel = cancel
	}
}

// UI defines how diffs and test results reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayDiff(diff m.DiffResult) error
	DisplayText(text string) error
	DisplayRunInfo(target m.Path, cases int, threads int)
	DisplayCompletedTestInfo(outcome m.TestOutcome)
	DisplayResults(outcomes []m.TestOutcome) error
}

// ColorMode controls whether diffs are colorized.
type ColorMode string

// Available ColorMode values.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Enabled resolves the mode against whether output is a terminal.
func (c ColorMode) Enabled(tty bool) bool {
	switch c {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return tty
	}
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool, color ColorMode) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout(), color.Enabled(true))
	}

	return NewSimpleUI(cmd, color.Enabled(false))
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}
