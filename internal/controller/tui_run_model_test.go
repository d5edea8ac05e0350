package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/Eeeeast/diff/internal/model"
)

func update(t *testing.T, model runModel, msg tea.Msg) (runModel, tea.Cmd) {
	t.Helper()

	next, cmd := model.Update(msg)
	rm, ok := next.(runModel)
	require.True(t, ok)

	return rm, cmd
}

func runningModel(t *testing.T) runModel {
	t.Helper()

	model := newRunModel(PlainPalette())
	model, _ = update(t, model, tea.WindowSizeMsg{Width: 100, Height: 40})
	model, _ = update(t, model, runInfoMsg{target: "/bin/prog", cases: 3, threads: 2})

	return model
}

func failedOutcome() m.TestOutcome {
	return m.TestOutcome{Index: 1, Case: m.TestCase{Note: "greets"}, Actual: "world", Diff: helloWorld()}
}

func TestRunModel_PreparingView(t *testing.T) {
	model := newRunModel(PlainPalette())

	assert.Equal(t, "Preparing test run…\n", model.View())
	assert.NotNil(t, model.Init())
}

func TestRunModel_RunInfo(t *testing.T) {
	model := runningModel(t)

	assert.True(t, model.rendered)
	assert.Equal(t, 3, model.totalCases)
	assert.Equal(t, 2, model.threads)

	view := model.View()
	assert.Contains(t, view, "Running /bin/prog")
	assert.Contains(t, view, "Press q to abort")
}

func TestRunModel_CompletedCases(t *testing.T) {
	model := runningModel(t)

	model, _ = update(t, model, completedCaseMsg{outcome: m.TestOutcome{Index: 0, Passed: true}})
	model, _ = update(t, model, completedCaseMsg{outcome: failedOutcome()})

	assert.Equal(t, 2, model.completedCount)
	assert.Equal(t, 1, model.passedCount)
	assert.InDelta(t, 2.0/3.0, model.progressPercent, 1e-9)
	require.Len(t, model.recent, 2)
	assert.Equal(t, "greets", model.recent[1].title)
	assert.Equal(t, "failed", model.recent[1].status)
	assert.Equal(t, "[-hell-]{+w+}o{+rld+}", model.recent[1].diff)
}

func TestRunModel_RecentIsBounded(t *testing.T) {
	model := runningModel(t)

	for i := range 8 {
		model, _ = update(t, model, completedCaseMsg{outcome: m.TestOutcome{Index: i, Passed: true}})
	}

	require.Len(t, model.recent, recentCases)
	assert.Equal(t, 3, model.recent[0].index)
	assert.Equal(t, 7, model.recent[recentCases-1].index)
}

func TestRunModel_Finished(t *testing.T) {
	model := runningModel(t)

	model, _ = update(t, model, finishedMsg{outcomes: []m.TestOutcome{
		{Index: 0, Passed: true},
		failedOutcome(),
		{Index: 2, Err: &m.RunError{Kind: m.Timeout}},
	}})

	assert.True(t, model.finished)
	require.Len(t, model.results, 3)
	assert.Equal(t, 1, model.countStatus("passed"))
	assert.Equal(t, "timeout", model.results[2].status)
	assert.Equal(t, "timeout\n", model.results[2].diff)
	assert.Contains(t, model.View(), "Test Results")
}

func TestRunModel_QuitWhileRunningCancels(t *testing.T) {
	model := runningModel(t)

	called := false
	model.onQuit = func() { called = true }

	_, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	assert.True(t, called)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRunModel_QuitAfterFinishDoesNotCancel(t *testing.T) {
	model := runningModel(t)
	model, _ = update(t, model, finishedMsg{outcomes: []m.TestOutcome{{Passed: true}}})

	called := false
	model.onQuit = func() { called = true }

	_, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.False(t, called)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRunModel_KeysIgnoredWhileRunning(t *testing.T) {
	model := runningModel(t)

	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, model.showDiff)
}

func TestRunModel_ToggleDiff(t *testing.T) {
	model := runningModel(t)
	model, _ = update(t, model, finishedMsg{outcomes: []m.TestOutcome{failedOutcome()}})

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, model.showDiff)
	assert.Equal(t, "greets", model.selectedTitle)
	assert.Contains(t, model.View(), "Diff • greets")

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, model.showDiff)
	assert.Empty(t, model.selectedDiff)
}

func TestRunModel_ToggleWithoutDiff(t *testing.T) {
	model := runningModel(t)
	model, _ = update(t, model, finishedMsg{outcomes: []m.TestOutcome{{Passed: true}}})

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, model.showDiff)
}

func TestRunModel_TickAnimatesOnlyWhenFinished(t *testing.T) {
	model := runningModel(t)

	model, cmd := update(t, model, tickMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, 0, model.animOffset)

	model, _ = update(t, model, finishedMsg{})
	model, _ = update(t, model, tickMsg{})
	assert.Equal(t, 1, model.animOffset)
}

func TestRunModel_DiffBoxHeight(t *testing.T) {
	model := runningModel(t)
	assert.Equal(t, 0, model.diffBoxHeight())

	model.showDiff = true
	model.selectedDiff = "a\nb"
	assert.Equal(t, 5, model.diffBoxHeight())

	model.selectedDiff = "x\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx\nx"
	assert.Equal(t, model.diffMaxLines()+3, model.diffBoxHeight())
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "2", string(statusColor("passed")))
	assert.Equal(t, "1", string(statusColor("exit 2")))
	assert.Equal(t, "3", string(statusColor("timeout")))
	assert.Equal(t, "8", string(statusColor("")))
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "12345", 5, "12345"},
		{"truncated", "a long title", 6, "a lon…"},
		{"zero width", "text", 0, ""},
		{"only ellipsis", "text", 1, "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncateText(tt.text, tt.width))
		})
	}
}

func TestAnimateScroll(t *testing.T) {
	assert.Equal(t, "short", animateScroll("short", 10, 50))
	assert.Equal(t, "abcd…", animateScroll("abcdefgh", 5, 0))
	assert.Equal(t, "bcdef", animateScroll("abcdefgh", 5, 6))
	assert.Equal(t, "h   a", animateScroll("abcdefgh", 5, 12))
	assert.Equal(t, "", animateScroll("abcdefgh", 0, 6))
}
