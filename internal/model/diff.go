// Package model defines the data structures shared by the diff engine, the
// test harness and the renderers.
package model

// OpKind classifies a run of elements in an edit script.
type OpKind int

const (
	// OpEqual marks elements present unchanged on both sides.
	OpEqual OpKind = iota
	// OpDelete marks elements present only on the left side.
	OpDelete
	// OpInsert marks elements present only on the right side.
	OpInsert
)

func (k OpKind) String() string {
	switch k {
	case OpEqual:
		return "equal"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// Span is a half-open index range [Start, End) into a sequence.
type Span struct {
	Start int
	End   int
}

// Len returns the number of elements covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// EditOp is one maximal run of an edit script.
//
// OpEqual uses both spans. OpDelete only covers Left; its Right span is empty
// and sits at the right-hand index where the deletion happens. OpInsert is the
// mirror image.
type EditOp struct {
	Kind  OpKind
	Left  Span
	Right Span
}

// Len returns the number of elements the op covers on its own side.
func (op EditOp) Len() int {
	if op.Kind == OpInsert {
		return op.Right.Len()
	}

	return op.Left.Len()
}

// DiffResult is the full alignment of Left against Right.
//
// Invariants:
//   - concat(Left[op.Left] for Equal and Delete ops) == Left
//   - concat(Right[op.Right] for Equal and Insert ops) == Right
//   - no two adjacent ops share a Kind
//
// Left and Right are kept so renderers can materialise op text without
// holding on to the original inputs.
type DiffResult struct {
	Left  []rune
	Right []rune
	Ops   []EditOp
}

// Identical reports whether the result contains no Insert or Delete ops.
func (d DiffResult) Identical() bool {
	for _, op := range d.Ops {
		if op.Kind != OpEqual {
			return false
		}
	}

	return true
}

// EditCount returns the total number of inserted and deleted elements.
func (d DiffResult) EditCount() int {
	count := 0

	for _, op := range d.Ops {
		if op.Kind != OpEqual {
			count += op.Len()
		}
	}

	return count
}

// Text returns the text covered by op on the side it belongs to.
func (d DiffResult) Text(op EditOp) string {
	if op.Kind == OpInsert {
		return d.RightText(op)
	}

	return d.LeftText(op)
}

// LeftText returns the left-hand text of op.
func (d DiffResult) LeftText(op EditOp) string {
	return string(d.Left[op.Left.Start:op.Left.End])
}

// RightText returns the right-hand text of op.
func (d DiffResult) RightText(op EditOp) string {
	return string(d.Right[op.Right.Start:op.Right.End])
}
