package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const recentCases = 5

// caseDelegate renders result list rows.
type caseDelegate struct {
	offset int
}

func (d caseDelegate) Height() int  { return 1 }
func (d caseDelegate) Spacing() int { return 0 }
func (d caseDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d caseDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	result, ok := item.(caseItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()
	titleWidth := m.Width() - 20 // Reserve space for number and status columns

	numStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(6)
	statusStyle := lipgloss.NewStyle().Foreground(statusColor(result.status)).Bold(true).Width(10)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	title := truncateText(result.title, titleWidth)

	if isSelected {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		numStyle = selected.Width(6)
		statusStyle = selected.Width(10)
		titleStyle = selected
		title = animateScroll(result.title, titleWidth, d.offset)
	}

	line := fmt.Sprintf("%s  %s  %s",
		numStyle.Render(fmt.Sprintf("%d", result.index+1)),
		statusStyle.Render(result.status),
		titleStyle.Render(title),
	)
	_, _ = fmt.Fprint(w, line)
}

func statusColor(status string) lipgloss.Color {
	switch {
	case status == "passed":
		return lipgloss.Color("2") // Green
	case status == "failed", status == "error", strings.HasPrefix(status, "exit"):
		return lipgloss.Color("1") // Red
	case status == "timeout", status == "binary":
		return lipgloss.Color("3") // Yellow
	default:
		return lipgloss.Color("8") // Gray
	}
}

// runModel shows progress while cases run, then a browsable result list.
type runModel struct {
	width           int
	height          int
	palette         Palette
	progressBar     progress.Model
	spinner         spinner.Model
	target          string
	totalCases      int
	completedCount  int
	passedCount     int
	progressPercent float64
	threads         int
	recent          []caseItem
	rendered        bool
	finished        bool
	results         []caseItem
	resultsList     list.Model
	delegate        caseDelegate
	animOffset      int
	lastSelected    int
	showDiff        bool
	selectedDiff    string
	selectedTitle   string
	onQuit          func()
}

func newRunModel(palette Palette) runModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := caseDelegate{}
	resultsList := list.New([]list.Item{}, delegate, 80, 20)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter results…"

	return runModel{
		palette:      palette,
		progressBar:  prog,
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		resultsList:  resultsList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m runModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	}))
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tickMsg:
		return m.handleTickMsg(msg)

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)

	case runInfoMsg:
		m.target = msg.target
		m.totalCases = msg.cases
		m.threads = msg.threads
		m.completedCount = 0
		m.progressPercent = 0
		m.rendered = true

	case completedCaseMsg:
		m = m.handleCompletedCase(msg)

	case finishedMsg:
		m = m.handleFinished(msg)
	}

	return m, cmd
}

func (m runModel) View() string {
	if !m.rendered {
		return "Preparing test run…\n"
	}

	if m.finished {
		return m.viewResults()
	}

	return m.viewProgress()
}

func (m runModel) viewProgress() string {
	accentColor := lipgloss.Color("6") // Cyan

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	title := titleStyle.Render(fmt.Sprintf("%s Running %s", m.spinner.View(), m.target))

	summary := summaryStyle.Render(fmt.Sprintf(
		"Progress: %s / %s  •  Passed: %s  •  Workers: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.completedCount)),
		accentStyle.Render(fmt.Sprintf("%d", m.totalCases)),
		accentStyle.Render(fmt.Sprintf("%d", m.passedCount)),
		accentStyle.Render(fmt.Sprintf("%d", m.threads)),
	))

	progressView := lipgloss.NewStyle().Padding(0, 2).Render(m.progressBar.ViewAs(m.progressPercent))

	recentBox := m.renderRecentBox(accentColor)

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("Press q to abort")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		recentBox,
		footer,
	)
}

func (m runModel) renderRecentBox(accentColor lipgloss.Color) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1).
		Margin(1, 1, 1, 0)

	if m.width > 4 {
		boxStyle = boxStyle.Width(m.width - 4)
	}

	if len(m.recent) == 0 {
		return boxStyle.Render("waiting for the first case")
	}

	lines := make([]string, 0, len(m.recent))
	for _, item := range m.recent {
		lines = append(lines, fmt.Sprintf("%s  %s",
			lipgloss.NewStyle().Foreground(statusColor(item.status)).Width(10).Render(item.status),
			truncateText(item.title, m.width-20),
		))
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m runModel) viewResults() string {
	accentColor := lipgloss.Color("6") // Cyan

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	title := titleStyle.Render("Test Results")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Total: %s  •  Passed: %s  •  Failed: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(m.results))),
		accentStyle.Render(fmt.Sprintf("%d", m.countStatus("passed"))),
		accentStyle.Render(fmt.Sprintf("%d", len(m.results)-m.countStatus("passed"))),
	))

	resultsBox := m.renderResultsBox(accentColor)

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/k up • ↓/j down • / filter • enter/space diff • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		resultsBox,
		footer,
	)
}

func (m runModel) renderResultsBox(accentColor lipgloss.Color) string {
	listWidth := m.width - 4
	if listWidth < 20 {
		listWidth = 20
	}

	listHeight := m.height - 9 - m.diffBoxHeight()
	if listHeight < 5 {
		listHeight = 5
	}

	m.resultsList.SetHeight(listHeight)
	m.resultsList.SetWidth(listWidth)

	headers := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth).
		Render(fmt.Sprintf("%-6s  %-10s  %s", "#", "Status", "Test"))

	resultsBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, m.resultsList.View()))

	diffBox := m.renderDiffBox(accentColor, listWidth)
	if diffBox == "" {
		return resultsBox
	}

	return lipgloss.JoinVertical(lipgloss.Left, resultsBox, diffBox)
}

func (m runModel) countStatus(status string) int {
	count := 0

	for _, result := range m.results {
		if result.status == status {
			count++
		}
	}

	return count
}

func (m runModel) handleCompletedCase(msg completedCaseMsg) runModel {
	m.completedCount++
	m.rendered = true

	if msg.outcome.Passed {
		m.passedCount++
	}

	m.recent = append(m.recent, m.caseItem(msg))
	if len(m.recent) > recentCases {
		m.recent = m.recent[len(m.recent)-recentCases:]
	}

	if m.totalCases > 0 {
		m.progressPercent = float64(m.completedCount) / float64(m.totalCases)
	}

	return m
}

func (m runModel) caseItem(msg completedCaseMsg) caseItem {
	o := msg.outcome

	var diff strings.Builder
	if o.Err != nil {
		diff.WriteString(o.Err.Error())
		diff.WriteString("\n")
	}

	if len(o.Diff.Ops) > 0 {
		diff.WriteString(RenderDiff(o.Diff, m.palette))
	}

	return caseItem{
		index:  o.Index,
		title:  outcomeTitle(o),
		status: formatOutcomeStatus(o),
		diff:   diff.String(),
	}
}

func (m runModel) handleFinished(msg finishedMsg) runModel {
	m.results = make([]caseItem, 0, len(msg.outcomes))
	items := make([]list.Item, 0, len(msg.outcomes))

	for _, o := range msg.outcomes {
		item := m.caseItem(completedCaseMsg{outcome: o})
		m.results = append(m.results, item)
		items = append(items, item)
	}

	m.resultsList.SetItems(items)
	m.finished = true
	m.rendered = true
	m.progressPercent = 1

	return m
}

func (m runModel) handleKeyMsg(msg tea.KeyMsg) (runModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "q", "ctrl+c":
		if !m.finished && m.onQuit != nil {
			m.onQuit()
		}

		return m, tea.Quit
	default:
		if !m.finished {
			return m, nil
		}

		if msg.String() == "enter" || msg.String() == " " {
			m.toggleSelectedDiff()
			return m, nil
		}

		m.resultsList, cmd = m.resultsList.Update(msg)

		// Detect selection change to reset animation
		if m.resultsList.Index() != m.lastSelected {
			m.lastSelected = m.resultsList.Index()
			m.animOffset = 0
			m.delegate.offset = 0
			m.resultsList.SetDelegate(m.delegate)
			m.showDiff = false
			m.selectedDiff = ""
			m.selectedTitle = ""
		}

		return m, cmd
	}
}

func (m *runModel) toggleSelectedDiff() {
	result, ok := m.resultsList.SelectedItem().(caseItem)
	if !ok {
		return
	}

	if result.diff == "" || (m.showDiff && m.selectedDiff == result.diff) {
		m.showDiff = false
		m.selectedDiff = ""
		m.selectedTitle = ""

		return
	}

	m.showDiff = true
	m.selectedDiff = result.diff
	m.selectedTitle = result.title
}

func (m runModel) diffMaxLines() int {
	return min(max(m.height/3, 6), 20)
}

func (m runModel) diffBoxHeight() int {
	if !m.showDiff || m.selectedDiff == "" {
		return 0
	}

	lines := strings.Count(m.selectedDiff, "\n") + 1

	return min(lines, m.diffMaxLines()) + 3
}

func (m runModel) renderDiffBox(accentColor lipgloss.Color, width int) string {
	if !m.showDiff || m.selectedDiff == "" {
		return ""
	}

	lines := strings.Split(m.selectedDiff, "\n")
	if maxLines := m.diffMaxLines(); len(lines) > maxLines {
		lines = append(lines[:maxLines-1], "…")
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Render(truncateText("Diff • "+m.selectedTitle, width-4))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(lines, "\n")))
}

func (m runModel) handleWindowSize(msg tea.WindowSizeMsg) runModel {
	m.width = msg.Width
	m.height = msg.Height

	m.progressBar.Width = m.width - 8
	if m.progressBar.Width < 20 {
		m.progressBar.Width = 20
	}

	return m
}

func (m runModel) handleTickMsg(_ tickMsg) (runModel, tea.Cmd) {
	if m.finished && m.resultsList.FilterState() != list.Filtering {
		m.animOffset++
		m.delegate.offset = m.animOffset
		m.resultsList.SetDelegate(m.delegate)
	}

	return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	// Initial pause before scrolling starts (in ticks)
	pause := 5

	if offset < pause {
		return truncateText(text, width)
	}

	runes := []rune(text + "   ")
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	ellipsis := "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
