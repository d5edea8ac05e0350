package cmd

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Eeeeast/diff/internal/domain"
	domainmocks "github.com/Eeeeast/diff/internal/domain/mocks"
	m "github.com/Eeeeast/diff/internal/model"
)

func TestGetCmd_Interactive(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Compare(domain.CompareArgs{
		Left:  "hello",
		Right: "world",
		Mode:  m.ModeInteractive,
	}).Return(nil)

	_, err := executeCommand(t, mockWorkflow, "get", "hello", "world")

	require.NoError(t, err)
}

func TestGetCmd_Batch(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Compare(domain.CompareArgs{
		Left:  "expected.txt",
		Right: "actual.txt",
		Mode:  m.ModeBatch,
	}).Return(nil)

	_, err := executeCommand(t, mockWorkflow, "get", "expected.txt", "actual.txt", "--mode", "batch")

	require.NoError(t, err)
}

func TestGetCmd_Program(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Program(mock.Anything, domain.ProgramArgs{
		Target:  "./solution",
		Tests:   "tests.toml",
		Threads: 3,
		Timeout: 2 * time.Second,
	}).Return(nil)

	_, err := executeCommand(t, mockWorkflow, "get", "./solution", "tests.toml", "-m", "program", "-p", "3", "-t", "2s")

	require.NoError(t, err)
}

func TestGetCmd_ProgramDefaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Program(mock.Anything, domain.ProgramArgs{
		Target:  "./solution",
		Tests:   "tests.yaml",
		Threads: 1,
		Timeout: domain.DefaultTimeout,
	}).Return(nil)

	_, err := executeCommand(t, mockWorkflow, "get", "./solution", "tests.yaml", "--mode", "program")

	require.NoError(t, err)
}

func TestGetCmd_ProgramFromEnvironment(t *testing.T) {
	t.Setenv("DIFF_MODE", "program")
	t.Setenv("DIFF_PARALLEL", "5")

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Program(mock.Anything, mock.MatchedBy(func(args domain.ProgramArgs) bool {
		return args.Threads == 5 && args.Target == "./solution"
	})).Return(nil)

	_, err := executeCommand(t, mockWorkflow, "get", "./solution", "tests.toml")

	require.NoError(t, err)
}

func TestGetCmd_ConfigFileInWorkingDirectory(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Program(mock.Anything, mock.MatchedBy(func(args domain.ProgramArgs) bool {
		return args.Threads == 6 && args.Timeout == 3*time.Second
	})).Return(nil)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/custom.yaml", []byte("mode: program\nparallel: 6\ntimeout: 3s\n"), 0o644))

	_, err := executeCommand(t, mockWorkflow, "get", "./solution", "tests.toml", "--config", dir+"/custom.yaml")

	require.NoError(t, err)
}

func TestGetCmd_FailingTestsReturnError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Program(mock.Anything, mock.Anything).Return(domain.ErrTestsFailed)

	out, err := executeCommand(t, mockWorkflow, "get", "./solution", "tests.toml", "-m", "program")

	require.ErrorIs(t, err, domain.ErrTestsFailed)
	assert.Contains(t, out, "some tests failed")
	assert.NotContains(t, out, "Usage:")
}

func TestGetCmd_InvalidMode(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	_, err := executeCommand(t, mockWorkflow, "get", "a", "b", "--mode", "fast")

	assert.ErrorContains(t, err, "invalid mode")
}

func TestGetCmd_InvalidEngine(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	_, err := executeCommand(t, mockWorkflow, "get", "a", "b", "--engine", "myers")

	assert.ErrorContains(t, err, "invalid engine")
}

func TestGetCmd_RequiresTwoArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	_, err := executeCommand(t, mockWorkflow, "get", "only-one")

	assert.Error(t, err)
}
