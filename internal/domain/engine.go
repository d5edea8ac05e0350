package domain

import (
	m "github.com/Eeeeast/diff/internal/model"
)

// Differ computes the edit script between an expected and an actual text.
type Differ interface {
	Diff(left, right string) m.DiffResult
}

type lcsDiffer struct{}

// NewLCSDiffer returns the default Differ, backed by Compute.
func NewLCSDiffer() Differ {
	return lcsDiffer{}
}

func (lcsDiffer) Diff(left, right string) m.DiffResult {
	return ComputeDiff(left, right)
}

// ComputeDiff compares left and right rune by rune.
func ComputeDiff(left, right string) m.DiffResult {
	l, r := []rune(left), []rune(right)

	return m.DiffResult{
		Left:  l,
		Right: r,
		Ops:   Compute(l, r),
	}
}

// Compute returns a minimal edit script turning left into right. The script
// follows a longest-common-subsequence alignment and adjacent ops of the same
// kind are merged.
//
// The alignment comes from a prefix-LCS table walked from the end toward the
// start: equal elements are always matched; otherwise an insertion is taken
// whenever it stays on an optimal path, and a deletion only when it does not.
// As a result a changed region reads as its deletions followed by its
// insertions. The common suffix is matched up front, which is exactly what
// the walk would do first.
//
// Time is O(N*M) and the table holds (N+1)*(M+1) int32 values, where N and M
// are the lengths left after the common suffix. Two 20000-rune inputs that
// differ near their ends need about 1.6 GB.
func Compute[T comparable](left, right []T) []m.EditOp {
	suffix := commonSuffix(left, right)
	a, c := left[:len(left)-suffix], right[:len(right)-suffix]

	b := &scriptBuilder{}

	switch {
	case len(a) == 0:
		b.add(m.OpInsert, 0, 0, len(c))
	case len(c) == 0:
		b.add(m.OpDelete, 0, 0, len(a))
	default:
		walkLCS(a, c, func(kind m.OpKind, i, j int) {
			b.add(kind, i, j, 1)
		})
	}

	b.add(m.OpEqual, len(a), len(c), suffix)

	return b.ops
}

// walkLCS emits one step per element, in forward order, for the alignment of
// a and b. i and j are the positions in a and b before the step.
func walkLCS[T comparable](a, b []T, fn func(kind m.OpKind, i, j int)) {
	width := len(b) + 1
	table := make([]int32, (len(a)+1)*width)

	for i := 1; i <= len(a); i++ {
		row, prev := i*width, (i-1)*width
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				table[row+j] = table[prev+j-1] + 1
			case table[prev+j] >= table[row+j-1]:
				table[row+j] = table[prev+j]
			default:
				table[row+j] = table[row+j-1]
			}
		}
	}

	type step struct {
		kind m.OpKind
		i, j int
	}

	steps := make([]step, 0, len(a)+len(b))
	i, j := len(a), len(b)

	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1]:
			i, j = i-1, j-1
			steps = append(steps, step{m.OpEqual, i, j})
		case j > 0 && (i == 0 || table[i*width+j-1] >= table[(i-1)*width+j]):
			j--
			steps = append(steps, step{m.OpInsert, i, j})
		default:
			i--
			steps = append(steps, step{m.OpDelete, i, j})
		}
	}

	for k := len(steps) - 1; k >= 0; k-- {
		fn(steps[k].kind, steps[k].i, steps[k].j)
	}
}

// scriptBuilder appends ops in forward order, merging contiguous runs.
type scriptBuilder struct {
	ops []m.EditOp
}

// add appends n elements of kind starting at left index i and right index j.
func (b *scriptBuilder) add(kind m.OpKind, i, j, n int) {
	if n == 0 {
		return
	}

	op := m.EditOp{Kind: kind, Left: m.Span{Start: i, End: i}, Right: m.Span{Start: j, End: j}}
	if kind != m.OpInsert {
		op.Left.End += n
	}

	if kind != m.OpDelete {
		op.Right.End += n
	}

	if last := len(b.ops) - 1; last >= 0 && b.ops[last].Kind == kind {
		b.ops[last].Left.End = op.Left.End
		b.ops[last].Right.End = op.Right.End

		return
	}

	b.ops = append(b.ops, op)
}

func commonSuffix[T comparable](a, b []T) int {
	n := 0
	for n < len(a) && n < len(b) && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}

	return n
}
