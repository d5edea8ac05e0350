package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	m "github.com/Eeeeast/diff/internal/model"
)

// Palette maps each op kind to the function that styles its text.
type Palette struct {
	Equal  func(string) string
	Delete func(string) string
	Insert func(string) string
}

func (p Palette) style(kind m.OpKind) func(string) string {
	switch kind {
	case m.OpDelete:
		return p.Delete
	case m.OpInsert:
		return p.Insert
	default:
		return p.Equal
	}
}

// RenderDiff renders d inline: every op's text, in order, styled by p.
func RenderDiff(d m.DiffResult, p Palette) string {
	var b strings.Builder

	for _, op := range d.Ops {
		b.WriteString(p.style(op.Kind)(d.Text(op)))
	}

	return b.String()
}

// PlainPalette marks changes with wdiff-style brackets, for output without
// color.
func PlainPalette() Palette {
	return Palette{
		Equal:  func(s string) string { return s },
		Delete: func(s string) string { return "[-" + s + "-]" },
		Insert: func(s string) string { return "{+" + s + "+}" },
	}
}

// ColorPalette paints deletions on red and insertions on cyan.
func ColorPalette() Palette {
	del := color.New(color.BgRed)
	del.EnableColor()

	ins := color.New(color.BgCyan)
	ins.EnableColor()

	return Palette{
		Equal:  func(s string) string { return s },
		Delete: func(s string) string { return del.Sprint(s) },
		Insert: func(s string) string { return ins.Sprint(s) },
	}
}

// NewPalette returns ColorPalette when colored is true, PlainPalette
// otherwise.
func NewPalette(colored bool) Palette {
	if colored {
		return ColorPalette()
	}

	return PlainPalette()
}

// LipglossPalette is the TUI counterpart of ColorPalette.
func LipglossPalette() Palette {
	del := lipgloss.NewStyle().Background(lipgloss.Color("1"))
	ins := lipgloss.NewStyle().Background(lipgloss.Color("6")).Foreground(lipgloss.Color("0"))

	return Palette{
		Equal:  func(s string) string { return s },
		Delete: func(s string) string { return renderLines(del, s) },
		Insert: func(s string) string { return renderLines(ins, s) },
	}
}

// renderLines styles each line separately; lipgloss pads multi-line blocks to
// a common width, which would change the text.
func renderLines(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

// formatOutcomeStatus returns a short status word for the outcome.
func formatOutcomeStatus(o m.TestOutcome) string {
	if o.Err != nil {
		switch o.Err.Kind {
		case m.SpawnFailed:
			return "error"
		case m.NonZeroExit:
			return fmt.Sprintf("exit %d", o.Err.ExitCode)
		case m.Timeout:
			return "timeout"
		case m.OutputDecodeFailed:
			return "binary"
		}
	}

	if o.Passed {
		return "passed"
	}

	return "failed"
}

// outcomeTitle is the label shown above a case.
func outcomeTitle(o m.TestOutcome) string {
	if o.Case.Note != "" {
		return o.Case.Note
	}

	return fmt.Sprintf("test %d", o.Index+1)
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}

func formatSize(n int) string {
	return humanize.Bytes(uint64(n))
}

func countPassed(outcomes []m.TestOutcome) int {
	passed := 0

	for _, o := range outcomes {
		if o.Passed {
			passed++
		}
	}

	return passed
}
