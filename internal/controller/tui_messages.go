package controller

import (
	"time"

	m "github.com/Eeeeast/diff/internal/model"
)

// Message types.
type tickMsg time.Time

type runInfoMsg struct {
	target  string
	cases   int
	threads int
}

type completedCaseMsg struct {
	outcome m.TestOutcome
}

type finishedMsg struct {
	outcomes []m.TestOutcome
}

// caseItem is one row of the result list.
type caseItem struct {
	index  int
	title  string
	status string
	diff   string
}

func (c caseItem) FilterValue() string {
	return c.title + " " + c.status
}
