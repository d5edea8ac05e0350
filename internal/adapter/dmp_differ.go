package adapter

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	m "github.com/Eeeeast/diff/internal/model"
)

// DMPDiffer diffs texts with diff-match-patch followed by semantic cleanup.
// Its scripts reconstruct both inputs but are not always minimal: cleanup
// trades a few extra edits for runs that read better.
type DMPDiffer struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewDMPDiffer constructs a DMPDiffer with default settings and no timeout.
func NewDMPDiffer() *DMPDiffer {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0

	return &DMPDiffer{dmp: dmp}
}

// Diff converts diff-match-patch output into rune spans.
func (d *DMPDiffer) Diff(left, right string) m.DiffResult {
	diffs := d.dmp.DiffMain(left, right, false)
	diffs = d.dmp.DiffCleanupSemantic(diffs)

	result := m.DiffResult{Left: []rune(left), Right: []rune(right)}
	i, j := 0, 0

	for _, diff := range diffs {
		n := utf8.RuneCountInString(diff.Text)
		if n == 0 {
			continue
		}

		op := m.EditOp{Left: m.Span{Start: i, End: i}, Right: m.Span{Start: j, End: j}}

		switch diff.Type {
		case diffmatchpatch.DiffEqual:
			op.Kind = m.OpEqual
			op.Left.End += n
			op.Right.End += n
		case diffmatchpatch.DiffDelete:
			op.Kind = m.OpDelete
			op.Left.End += n
		case diffmatchpatch.DiffInsert:
			op.Kind = m.OpInsert
			op.Right.End += n
		}

		i, j = op.Left.End, op.Right.End

		if last := len(result.Ops) - 1; last >= 0 && result.Ops[last].Kind == op.Kind {
			result.Ops[last].Left.End = op.Left.End
			result.Ops[last].Right.End = op.Right.End

			continue
		}

		result.Ops = append(result.Ops, op)
	}

	return result
}
