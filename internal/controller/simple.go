package controller

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/Eeeeast/diff/internal/model"
)

// SimpleUI implements UI by writing plain text to the command's output.
type SimpleUI struct {
	cmd     *cobra.Command
	palette Palette
	mu      sync.Mutex
	total   int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, colored bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, palette: NewPalette(colored)}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; there is nothing to dismiss.
func (s *SimpleUI) Wait() {}

// DisplayDiff prints the diff inline.
func (s *SimpleUI) DisplayDiff(diff m.DiffResult) error {
	s.printf("%s\n", RenderDiff(diff, s.palette))

	return nil
}

// DisplayText prints text verbatim.
func (s *SimpleUI) DisplayText(text string) error {
	s.printf("%s", text)

	return nil
}

// DisplayRunInfo announces a test run.
func (s *SimpleUI) DisplayRunInfo(target m.Path, cases int, threads int) {
	s.mu.Lock()
	s.total = cases
	s.mu.Unlock()

	s.printf("Running %d test(s) against %s with %d worker(s)\n", cases, target, threads)
}

// DisplayCompletedTestInfo prints a one-line status as each case finishes.
func (s *SimpleUI) DisplayCompletedTestInfo(outcome m.TestOutcome) {
	s.mu.Lock()
	total := s.total
	s.mu.Unlock()

	s.printf("[%d/%d] %s: %s (%s)\n", outcome.Index+1, total, outcomeTitle(outcome), formatOutcomeStatus(outcome), formatDuration(outcome.Duration))
}

// DisplayResults prints every case's diff in input order followed by a
// summary table.
func (s *SimpleUI) DisplayResults(outcomes []m.TestOutcome) error {
	if len(outcomes) == 0 {
		s.printf("No tests were run\n")
		return nil
	}

	for _, o := range outcomes {
		s.printf("\n%s\n", outcomeTitle(o))

		if o.Err != nil {
			s.printf("%s\n", o.Err.Error())
		}

		if len(o.Diff.Ops) > 0 {
			s.printf("%s\n", RenderDiff(o.Diff, s.palette))
		}
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Test", "Status", "Output", "Duration"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, o := range outcomes {
		table.Append([]string{
			fmt.Sprintf("%d", o.Index+1),
			outcomeTitle(o),
			formatOutcomeStatus(o),
			formatSize(len(o.Actual)),
			formatDuration(o.Duration),
		})
	}

	table.SetFooter([]string{
		"",
		fmt.Sprintf("Total %d", len(outcomes)),
		fmt.Sprintf("Passed %d", countPassed(outcomes)),
		"",
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
