package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Eeeeast/diff/internal/adapter"
	"github.com/Eeeeast/diff/internal/common"
	"github.com/Eeeeast/diff/internal/controller"
	m "github.com/Eeeeast/diff/internal/model"
)

// ErrTestsFailed is returned by Program when at least one case did not pass.
var ErrTestsFailed = errors.New("some tests failed")

// ErrUnsupportedMode is returned by Compare for modes it cannot handle.
var ErrUnsupportedMode = errors.New("unsupported mode")

// CompareArgs contains the arguments for comparing two texts.
type CompareArgs struct {
	Left  string
	Right string
	// Mode is ModeInteractive to compare Left and Right as given, or
	// ModeBatch to treat them as paths and compare the file contents.
	Mode m.Mode
}

// ProgramArgs contains the arguments for running a target against a test file.
type ProgramArgs struct {
	Target  m.Path
	Tests   m.Path
	Threads int
	Timeout time.Duration
}

// ExampleArgs contains the arguments for generating a sample test file.
type ExampleArgs struct {
	Count  int
	Output m.Path
	Format adapter.Format
}

// Workflow ties the engine, the harness, storage and the UI together. Each
// method backs one CLI mode.
type Workflow interface {
	Compare(args CompareArgs) error
	Program(ctx context.Context, args ProgramArgs) error
	Example(args ExampleArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	store     adapter.TestCaseStore
	ui        controller.UI
	harness   Harness
	differ    Differ
	logger    common.Logger
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	store adapter.TestCaseStore,
	ui controller.UI,
	harness Harness,
	differ Differ,
	logger common.Logger,
) Workflow {
	if differ == nil {
		differ = NewLCSDiffer()
	}

	return &workflow{
		fsAdapter: fsAdapter,
		store:     store,
		ui:        ui,
		harness:   harness,
		differ:    differ,
		logger:    common.MaskLogger(logger),
	}
}

// Compare diffs two texts, or two files in batch mode, and displays the result.
func (w *workflow) Compare(args CompareArgs) error {
	left, right := args.Left, args.Right

	switch args.Mode {
	case m.ModeInteractive, "":
	case m.ModeBatch:
		var err error

		if left, err = w.readText(m.Path(args.Left)); err != nil {
			return err
		}

		if right, err = w.readText(m.Path(args.Right)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w for comparison: %q", ErrUnsupportedMode, args.Mode)
	}

	w.logger.Printf("comparing in %s mode (%d and %d bytes)", args.Mode, len(left), len(right))

	if err := w.ui.Start(controller.WithCompareMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	return w.ui.DisplayDiff(w.differ.Diff(left, right))
}

func (w *workflow) readText(path m.Path) (string, error) {
	data, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return string(data), nil
}

// Program runs the target once per case in the test file and displays the
// results. It returns ErrTestsFailed when any case did not pass, and the
// context error when the run was aborted.
func (w *workflow) Program(ctx context.Context, args ProgramArgs) error {
	target, err := w.fsAdapter.ResolveExecutable(args.Target)
	if err != nil {
		return err
	}

	cases, err := w.store.Load(args.Tests)
	if err != nil {
		return fmt.Errorf("failed to load tests: %w", err)
	}

	threads := max(args.Threads, 1)
	w.logger.Printf("running %d case(s) from %s against %s with %d worker(s)", len(cases), args.Tests, target, threads)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.ui.Start(controller.WithProgramMode(), controller.WithCancel(cancel)); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplayRunInfo(target, len(cases), threads)

	outcomes, runErr := w.harness.RunTests(ctx, target, cases,
		WithParallelism(threads),
		WithTimeout(args.Timeout),
		WithProgress(w.ui.DisplayCompletedTestInfo),
	)

	if err := w.ui.DisplayResults(outcomes); err != nil {
		return fmt.Errorf("failed to display results: %w", err)
	}

	if runErr != nil {
		return fmt.Errorf("test run aborted: %w", runErr)
	}

	w.ui.Wait()

	for _, outcome := range outcomes {
		if !outcome.Passed {
			return ErrTestsFailed
		}
	}

	return nil
}

// Example writes count placeholder cases to Output, or displays them when no
// output path is given.
func (w *workflow) Example(args ExampleArgs) error {
	if args.Count < 0 {
		return fmt.Errorf("example count must not be negative, got %d", args.Count)
	}

	cases := w.store.Generate(args.Count)

	format := args.Format
	if format == "" && args.Output != "" {
		if _, err := adapter.FormatForPath(args.Output); err == nil {
			w.logger.Printf("writing %d example case(s) to %s", len(cases), args.Output)

			return w.store.Save(args.Output, cases)
		}
	}

	if format == "" {
		format = adapter.FormatTOML
	}

	var buf bytes.Buffer
	if err := w.store.Encode(&buf, format, cases); err != nil {
		return err
	}

	if args.Output == "" {
		return w.ui.DisplayText(buf.String())
	}

	w.logger.Printf("writing %d example case(s) to %s as %s", len(cases), args.Output, format)

	return w.fsAdapter.WriteFile(args.Output, buf.Bytes(), 0o644)
}
