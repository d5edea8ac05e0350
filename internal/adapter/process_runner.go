package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	m "github.com/Eeeeast/diff/internal/model"
)

// ErrSpawnFailed is wrapped by ProcessRunner errors when the target could not
// be started at all.
var ErrSpawnFailed = errors.New("process failed to start")

// processWaitDelay bounds how long Execute waits for stdout to drain after
// the target has been killed, e.g. when a grandchild keeps the pipe open.
const processWaitDelay = 500 * time.Millisecond

// ProcessRunner executes a target program once: it writes the request's stdin,
// collects stdout and reports the exit status.
type ProcessRunner interface {
	// Execute runs the target to completion. A non-zero exit is not an error:
	// it is reported through ProcessResult.ExitCode. When ctx is done the
	// process is killed and ctx.Err() is returned.
	Execute(ctx context.Context, req m.ProcessRequest) (m.ProcessResult, error)
}

// LocalProcessRunner runs targets as child processes of the current process.
type LocalProcessRunner struct{}

// NewLocalProcessRunner constructs a LocalProcessRunner.
func NewLocalProcessRunner() *LocalProcessRunner {
	return &LocalProcessRunner{}
}

// Execute implements ProcessRunner.
func (r *LocalProcessRunner) Execute(ctx context.Context, req m.ProcessRequest) (m.ProcessResult, error) {
	// #nosec G204 - running the user supplied target is the point of this adapter
	cmd := exec.CommandContext(ctx, string(req.Target), req.Args...)
	cmd.Stdin = bytes.NewReader(req.Stdin)
	cmd.WaitDelay = processWaitDelay

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Start(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return m.ProcessResult{}, ctxErr
		}

		return m.ProcessResult{}, fmt.Errorf("%w: %s: %w", ErrSpawnFailed, req.Target, err)
	}

	err := cmd.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return m.ProcessResult{}, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return m.ProcessResult{Stdout: stdout.Bytes(), ExitCode: exitErr.ExitCode()}, nil
	}

	if err != nil {
		return m.ProcessResult{}, fmt.Errorf("waiting for %s: %w", req.Target, err)
	}

	return m.ProcessResult{Stdout: stdout.Bytes(), ExitCode: 0}, nil
}
