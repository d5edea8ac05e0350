package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Eeeeast/diff/internal/adapter"
	adaptermocks "github.com/Eeeeast/diff/internal/adapter/mocks"
	m "github.com/Eeeeast/diff/internal/model"
)

const testTarget = m.Path("/usr/local/bin/solution")

func echo(_ context.Context, req m.ProcessRequest) (m.ProcessResult, error) {
	return m.ProcessResult{Stdout: req.Stdin}, nil
}

func echoCases(n int) []m.TestCase {
	cases := make([]m.TestCase, 0, n)
	for i := range n {
		text := fmt.Sprintf("case %d\n", i)
		cases = append(cases, m.TestCase{Input: text, Expected: text})
	}

	return cases
}

func TestHarness_RunTests_PassingCases(t *testing.T) {
	runner := adaptermocks.NewMockProcessRunner(t)
	runner.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(echo)

	h := NewHarness(runner, nil, nil)

	outcomes, err := h.RunTests(context.Background(), testTarget, echoCases(3))

	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	for i, o := range outcomes {
		assert.Equal(t, i, o.Index)
		assert.True(t, o.Passed)
		assert.Nil(t, o.Err)
		assert.True(t, o.Diff.Identical())
	}
}

func TestHarness_RunTests_EmptyCases(t *testing.T) {
	runner := adaptermocks.NewMockProcessRunner(t)
	h := NewHarness(runner, nil, nil)

	outcomes, err := h.RunTests(context.Background(), testTarget, nil)

	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func TestHarness_RunTests_PreservesInputOrder(t *testing.T) {
	runner := adaptermocks.NewMockProcessRunner(t)
	cases := echoCases(12)

	// Earlier cases take longer, so they finish last.
	runner.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, req m.ProcessRequest) (m.ProcessResult, error) {
			var i int
			_, _ = fmt.Sscanf(string(req.Stdin), "case %d", &i)
			time.Sleep(time.Duration(len(cases)-i) * 2 * time.Millisecond)

			return echo(ctx, req)
		})

	var (
		mu       sync.Mutex
		finished []int
	)

	h := NewHarness(runner, nil, nil)

	outcomes, err := h.RunTests(context.Background(), testTarget, cases,
		WithParallelism(len(cases)),
		WithProgress(func(o m.TestOutcome) {
			mu.Lock()
			defer mu.Unlock()

			finished = append(finished, o.Index)
		}),
	)

	require.NoError(t, err)
	require.Len(t, outcomes, len(cases))

	for i, o := range outcomes {
		assert.Equal(t, i, o.Index)
		assert.Equal(t, cases[i], o.Case)
	}

	assert.Len(t, finished, len(cases))
}

func TestHarness_RunTests_RespectsParallelism(t *testing.T) {
	runner := adaptermocks.NewMockProcessRunner(t)

	var running, peak atomic.Int32

	runner.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, req m.ProcessRequest) (m.ProcessResult, error) {
			n := running.Add(1)
			defer running.Add(-1)

			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}

			time.Sleep(5 * time.Millisecond)

			return echo(ctx, req)
		})

	h := NewHarness(runner, nil, nil)

	outcomes, err := h.RunTests(context.Background(), testTarget, echoCases(10), WithParallelism(2))

	require.NoError(t, err)
	assert.Len(t, outcomes, 10)
	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.Positive(t, peak.Load())
}

func TestHarness_RunTests_NonZeroExitKeepsDiff(t *testing.T) {
	runner := adaptermocks.NewMockProcessRunner(t)
	cases := []m.TestCase{
		{Note: "first", Input: "1", Expected: "one"},
		{Note: "second", Input: "2", Expected: "two"},
		{Note: "third", Input: "3", Expected: "three"},
	}

	runner.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, req m.ProcessRequest) (m.ProcessResult, error) {
			switch string(req.Stdin) {
			case "1":
				return m.ProcessResult{Stdout: []byte("one")}, nil
			case "2":
				return m.ProcessResult{Stdout: []byte("tw"), ExitCode: 1}, nil
			default:
				return m.ProcessResult{Stdout: []byte("three")}, nil
			}
		})

	h := NewHarness(runner, nil, nil)

	outcomes, err := h.RunTests(context.Background(), testTarget, cases, WithParallelism(3))

	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	assert.True(t, outcomes[0].Passed)
	assert.True(t, outcomes[2].Passed)

	failed := outcomes[1]
	assert.False(t, failed.Passed)
	require.NotNil(t, failed.Err)
	assert.Equal(t, m.NonZeroExit, failed.Err.Kind)
	assert.Equal(t, 1, failed.Err.ExitCode)
	assert.Equal(t, "tw", failed.Actual)
	assert.False(t, failed.Diff.Identical())
	assert.Equal(t, 1, failed.Diff.EditCount())
}

func TestHarness_RunTests_ZeroExitWithMismatchFails(t *testing.T) {
	runner := adaptermocks.NewMockProcessRunner(t)
	runner.EXPECT().Execute(mock.Anything, mock.Anything).Return(m.ProcessResult{Stdout: []byte("world")}, nil)

	h := NewHarness(runner, nil, nil)

	outcomes, err := h.RunTests(context.Background(), testTarget, []m.TestCase{{Expected: "hello"}})

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.False(t, outcomes[0].Passed)
	assert.Nil(t, outcomes[0].Err)
	assert.Equal(t, ComputeDiff("hello", "world"), outcomes[0].Diff)
}

func TestHarness_RunTests_Timeout(t *testing.T) {
	runner := adaptermocks.NewMockProcessRunner(t)
	runner.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, _ m.ProcessRequest) (m.ProcessResult, error) {
			<-ctx.Done()

			return m.ProcessResult{}, ctx.Err()
		})

	h := NewHarness(runner, nil, nil)

	outcomes, err := h.RunTests(context.Background(), testTarget,
		[]m.TestCase{{Input: "x", Expected: "x"}},
		WithTimeout(20*time.Millisecond),
	)

	require.NoError(t, err)
	require.Len(t, outcomes, 1)

	o := outcomes[0]
	assert.False(t, o.Passed)
	require.NotNil(t, o.Err)
	assert.Equal(t, m.Timeout, o.Err.Kind)
	assert.True(t, errors.Is(o.Err, context.DeadlineExceeded))
	assert.Empty(t, o.Actual)
	assert.Empty(t, o.Diff.Ops)
	assert.GreaterOrEqual(t, o.Duration, 20*time.Millisecond)
}

func TestHarness_RunTests_SpawnFailure(t *testing.T) {
	runner := adaptermocks.NewMockProcessRunner(t)
	spawnErr := fmt.Errorf("%w: %s: no such file", adapter.ErrSpawnFailed, testTarget)
	runner.EXPECT().Execute(mock.Anything, mock.Anything).Return(m.ProcessResult{}, spawnErr)

	h := NewHarness(runner, nil, nil)

	outcomes, err := h.RunTests(context.Background(), testTarget, echoCases(2))

	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	for _, o := range outcomes {
		require.NotNil(t, o.Err)
		assert.Equal(t, m.SpawnFailed, o.Err.Kind)
		assert.ErrorIs(t, o.Err, adapter.ErrSpawnFailed)
		assert.False(t, o.Passed)
		assert.Empty(t, o.Diff.Ops)
	}
}

func TestHarness_RunTests_OutputDecodeFailure(t *testing.T) {
	runner := adaptermocks.NewMockProcessRunner(t)
	runner.EXPECT().Execute(mock.Anything, mock.Anything).Return(m.ProcessResult{Stdout: []byte{0xff, 0xfe}}, nil)

	h := NewHarness(runner, nil, nil)

	outcomes, err := h.RunTests(context.Background(), testTarget, []m.TestCase{{Expected: "x"}})

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	require.NotNil(t, outcomes[0].Err)
	assert.Equal(t, m.OutputDecodeFailed, outcomes[0].Err.Kind)
	assert.Empty(t, outcomes[0].Diff.Ops)
	assert.False(t, outcomes[0].Passed)
}

func TestHarness_RunTests_PassesArgsAndStdin(t *testing.T) {
	runner := adaptermocks.NewMockProcessRunner(t)
	runner.EXPECT().Execute(mock.Anything, m.ProcessRequest{
		Target: testTarget,
		Args:   []string{"-n", "3", "--verbose"},
		Stdin:  []byte("1 2 3\n"),
	}).Return(m.ProcessResult{Stdout: []byte("6\n")}, nil).Once()

	h := NewHarness(runner, nil, nil)

	outcomes, err := h.RunTests(context.Background(), testTarget, []m.TestCase{
		{Args: "  -n 3\t--verbose ", Input: "1 2 3\n", Expected: "6\n"},
	})

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].Passed)
}

func TestHarness_RunTests_AlreadyCancelled(t *testing.T) {
	runner := adaptermocks.NewMockProcessRunner(t)
	h := NewHarness(runner, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes, err := h.RunTests(ctx, testTarget, echoCases(3))

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, outcomes)
}

func TestHarness_RunTests_CancelOmitsUnfinishedCases(t *testing.T) {
	runner := adaptermocks.NewMockProcessRunner(t)
	runner.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(echo).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHarness(runner, nil, nil)

	outcomes, err := h.RunTests(ctx, testTarget, echoCases(3),
		WithParallelism(1),
		WithProgress(func(m.TestOutcome) { cancel() }),
	)

	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, outcomes, 1)
	assert.Equal(t, 0, outcomes[0].Index)
	assert.True(t, outcomes[0].Passed)
}

func TestHarness_RunTests_CancelDiscardsRunningCase(t *testing.T) {
	runner := adaptermocks.NewMockProcessRunner(t)
	started := make(chan struct{})

	runner.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, _ m.ProcessRequest) (m.ProcessResult, error) {
			close(started)
			<-ctx.Done()

			return m.ProcessResult{}, ctx.Err()
		}).Once()

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		<-started
		cancel()
	}()

	h := NewHarness(runner, nil, nil)

	outcomes, err := h.RunTests(ctx, testTarget, echoCases(1))

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, outcomes)
}

func TestHarness_RunTests_Isolation(t *testing.T) {
	runner := adaptermocks.NewMockProcessRunner(t)
	runner.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, req m.ProcessRequest) (m.ProcessResult, error) {
			if string(req.Stdin) == "boom" {
				return m.ProcessResult{Stdout: []byte("partial"), ExitCode: 2}, nil
			}

			return m.ProcessResult{Stdout: req.Stdin}, nil
		})

	h := NewHarness(runner, nil, nil)

	subject := m.TestCase{Input: "steady", Expected: "steady"}
	noisy := []m.TestCase{{Input: "boom", Expected: "x"}, subject, {Input: "boom", Expected: "y"}}

	alone, err := h.RunTests(context.Background(), testTarget, []m.TestCase{subject})
	require.NoError(t, err)

	batch, err := h.RunTests(context.Background(), testTarget, noisy, WithParallelism(3))
	require.NoError(t, err)
	require.Len(t, batch, 3)

	got := batch[1]
	want := alone[0]

	assert.Equal(t, want.Passed, got.Passed)
	assert.Equal(t, want.Actual, got.Actual)
	assert.Equal(t, want.Diff, got.Diff)
	assert.Equal(t, want.Err, got.Err)
}

type stubDiffer struct {
	calls atomic.Int32
}

func (s *stubDiffer) Diff(left, right string) m.DiffResult {
	s.calls.Add(1)

	return ComputeDiff(left, right)
}

func TestHarness_RunTests_UsesGivenDiffer(t *testing.T) {
	runner := adaptermocks.NewMockProcessRunner(t)
	runner.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(echo)

	differ := &stubDiffer{}
	h := NewHarness(runner, differ, nil)

	_, err := h.RunTests(context.Background(), testTarget, echoCases(4), WithParallelism(2))

	require.NoError(t, err)
	assert.Equal(t, int32(4), differ.calls.Load())
}
