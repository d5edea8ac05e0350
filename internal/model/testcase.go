package model

import (
	"fmt"
	"time"
)

// Path represents a file system path.
type Path string

// Mode selects how the two inputs of a comparison are interpreted.
type Mode string

const (
	// ModeInteractive compares the two arguments literally.
	ModeInteractive Mode = "interactive"
	// ModeBatch compares the contents of two files.
	ModeBatch Mode = "batch"
	// ModeProgram runs an executable against a test-case file.
	ModeProgram Mode = "program"
)

// TestCase is one input/expected-output pair for a target program.
type TestCase struct {
	Note     string // label printed above the case; optional
	Args     string // whitespace separated command line arguments; optional
	Input    string // fed to the target on stdin
	Expected string // expected stdout
}

// RunErrorKind classifies why a test case could not be evaluated normally.
type RunErrorKind string

const (
	// SpawnFailed means the target could not be launched.
	SpawnFailed RunErrorKind = "spawn_failed"
	// NonZeroExit means the target exited with a non-zero status.
	NonZeroExit RunErrorKind = "non_zero_exit"
	// Timeout means the target exceeded the per-case deadline.
	Timeout RunErrorKind = "timeout"
	// OutputDecodeFailed means the target's stdout was not valid UTF-8.
	OutputDecodeFailed RunErrorKind = "output_decode_failed"
)

// RunError is a per-case failure. It never aborts the rest of a run.
type RunError struct {
	Kind     RunErrorKind
	ExitCode int
	Err      error
}

func (e *RunError) Error() string {
	switch {
	case e.Kind == NonZeroExit:
		return fmt.Sprintf("%s: exit status %d", e.Kind, e.ExitCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return string(e.Kind)
	}
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// TestOutcome is the verdict for one TestCase.
type TestOutcome struct {
	Index    int
	Case     TestCase
	Passed   bool
	Actual   string
	Diff     DiffResult
	Err      *RunError
	Duration time.Duration
}

// ProcessRequest describes one invocation of a target program.
type ProcessRequest struct {
	Target Path
	Args   []string
	Stdin  []byte
}

// ProcessResult is what a finished invocation produced.
type ProcessResult struct {
	Stdout   []byte
	ExitCode int
}
