package domain

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/Eeeeast/diff/internal/adapter"
	"github.com/Eeeeast/diff/internal/common"
	m "github.com/Eeeeast/diff/internal/model"
)

// DefaultTimeout is the per-case deadline used when none is configured.
const DefaultTimeout = 10 * time.Second

// Harness runs a target program once per test case and diffs the expected
// output against what the program printed.
type Harness interface {
	// RunTests returns one outcome per case, in the order of cases. Per-case
	// failures are reported in TestOutcome.Err and never stop the run. If ctx
	// is cancelled, cases that had not finished are left out and ctx.Err() is
	// returned along with the outcomes that did finish.
	RunTests(ctx context.Context, target m.Path, cases []m.TestCase, opts ...RunOption) ([]m.TestOutcome, error)
}

// RunOption configures a single RunTests call.
type RunOption func(*runConfig)

type runConfig struct {
	parallelism int
	timeout     time.Duration
	progress    func(m.TestOutcome)
}

// WithParallelism caps the number of target processes running at once.
func WithParallelism(n int) RunOption {
	return func(c *runConfig) {
		c.parallelism = n
	}
}

// WithTimeout sets the deadline applied to each case.
func WithTimeout(d time.Duration) RunOption {
	return func(c *runConfig) {
		c.timeout = d
	}
}

// WithProgress registers fn to be called as each case finishes. fn is called
// from worker goroutines and must be safe for concurrent use.
func WithProgress(fn func(m.TestOutcome)) RunOption {
	return func(c *runConfig) {
		c.progress = fn
	}
}

type harness struct {
	runner adapter.ProcessRunner
	differ Differ
	logger common.Logger
}

// NewHarness constructs a Harness that executes targets through runner and
// compares output with differ.
func NewHarness(runner adapter.ProcessRunner, differ Differ, logger common.Logger) Harness {
	if differ == nil {
		differ = NewLCSDiffer()
	}

	return &harness{
		runner: runner,
		differ: differ,
		logger: common.MaskLogger(logger),
	}
}

func (h *harness) RunTests(ctx context.Context, target m.Path, cases []m.TestCase, opts ...RunOption) ([]m.TestOutcome, error) {
	cfg := runConfig{parallelism: 1, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.parallelism <= 0 {
		cfg.parallelism = 1
	}

	if cfg.timeout <= 0 {
		cfg.timeout = DefaultTimeout
	}

	// Each worker only writes its own slot.
	slots := make([]*m.TestOutcome, len(cases))

	var g errgroup.Group

	g.SetLimit(cfg.parallelism)

	for i, tc := range cases {
		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			outcome, ok := h.runCase(ctx, cfg, target, i, tc)
			if !ok {
				return nil
			}

			slots[i] = &outcome

			if cfg.progress != nil {
				cfg.progress(outcome)
			}

			return nil
		})
	}

	_ = g.Wait()

	outcomes := make([]m.TestOutcome, 0, len(cases))

	for _, outcome := range slots {
		if outcome != nil {
			outcomes = append(outcomes, *outcome)
		}
	}

	if err := ctx.Err(); err != nil {
		h.logger.Printf("run aborted after %d of %d cases: %v", len(outcomes), len(cases), err)

		return outcomes, err
	}

	return outcomes, nil
}

// runCase evaluates a single case. It reports false when the run was aborted
// before the case could finish.
func (h *harness) runCase(ctx context.Context, cfg runConfig, target m.Path, index int, tc m.TestCase) (m.TestOutcome, bool) {
	if ctx.Err() != nil {
		return m.TestOutcome{}, false
	}

	caseCtx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	start := time.Now()
	res, err := h.runner.Execute(caseCtx, m.ProcessRequest{
		Target: target,
		Args:   strings.Fields(tc.Args),
		Stdin:  []byte(tc.Input),
	})

	outcome := m.TestOutcome{Index: index, Case: tc, Duration: time.Since(start)}

	if err != nil {
		switch {
		case ctx.Err() != nil:
			return m.TestOutcome{}, false
		case errors.Is(err, context.DeadlineExceeded) || errors.Is(caseCtx.Err(), context.DeadlineExceeded):
			outcome.Err = &m.RunError{Kind: m.Timeout, Err: err}
		default:
			outcome.Err = &m.RunError{Kind: m.SpawnFailed, Err: err}
		}

		h.logger.Printf("case %d: %v after %s", index, outcome.Err, outcome.Duration)

		return outcome, true
	}

	if !utf8.Valid(res.Stdout) {
		outcome.Err = &m.RunError{Kind: m.OutputDecodeFailed, ExitCode: res.ExitCode}
		h.logger.Printf("case %d: %v", index, outcome.Err)

		return outcome, true
	}

	outcome.Actual = string(res.Stdout)
	outcome.Diff = h.differ.Diff(tc.Expected, outcome.Actual)

	if res.ExitCode != 0 {
		outcome.Err = &m.RunError{Kind: m.NonZeroExit, ExitCode: res.ExitCode}
		h.logger.Printf("case %d: %v after %s", index, outcome.Err, outcome.Duration)

		return outcome, true
	}

	outcome.Passed = outcome.Diff.Identical()
	h.logger.Printf("case %d: passed=%t in %s", index, outcome.Passed, outcome.Duration)

	return outcome, true
}
