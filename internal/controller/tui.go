package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/Eeeeast/diff/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	palette Palette

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, colored bool) *TUI {
	palette := PlainPalette()
	if colored {
		palette = LipglossPalette()
	}

	return &TUI{output: output, palette: palette}
}

// Start launches the Bubble Tea program for test runs. Comparisons print
// directly and need no program.
func (t *TUI) Start(options ...StartOption) error {
	cfg := &StartConfig{}
	for _, opt := range options {
		opt(cfg)
	}

	if cfg.mode != ModeProgram {
		return nil
	}

	model := newRunModel(t.palette)
	model.onQuit = cfg.cancel

	return t.startWithModel(model, tea.WithOutput(t.output))
}

func (t *TUI) startWithModel(model tea.Model, opts ...tea.ProgramOption) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("ui already started")
	}

	program := tea.NewProgram(model, opts...)
	done := make(chan struct{})

	go func() {
		defer close(done)

		_, _ = program.Run()
	}()

	t.program = program
	t.done = done

	return nil
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// Wait blocks until the user leaves the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Close stops the program if it is still running.
func (t *TUI) Close() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// DisplayDiff prints the diff inline.
func (t *TUI) DisplayDiff(diff m.DiffResult) error {
	_, err := fmt.Fprintln(t.output, RenderDiff(diff, t.palette))

	return err
}

// DisplayText prints text verbatim.
func (t *TUI) DisplayText(text string) error {
	_, err := fmt.Fprint(t.output, text)

	return err
}

// DisplayRunInfo tells the program how many cases to expect.
func (t *TUI) DisplayRunInfo(target m.Path, cases int, threads int) {
	t.send(runInfoMsg{target: string(target), cases: cases, threads: threads})
}

// DisplayCompletedTestInfo forwards a finished case to the program.
func (t *TUI) DisplayCompletedTestInfo(outcome m.TestOutcome) {
	t.send(completedCaseMsg{outcome: outcome})
}

// DisplayResults hands the ordered outcomes to the program, which switches
// to the browsable result list.
func (t *TUI) DisplayResults(outcomes []m.TestOutcome) error {
	t.send(finishedMsg{outcomes: outcomes})

	return nil
}
