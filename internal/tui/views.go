package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fairweather/tidewatch/internal/metrics"
	"github.com/fairweather/tidewatch/internal/model"
	"github.com/fairweather/tidewatch/internal/synth"
	"github.com/fairweather/tidewatch/internal/tui/components"
	"github.com/fairweather/tidewatch/internal/tui/viewmodel"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.theme.Faint.Render("loading…")
	}
	if m.showHelp {
		return m.renderHelp()
	}

	sections := []string{
		m.renderTabs(),
		"",
	}

	switch m.tab {
	case TabDashboard:
		sections = append(sections, m.renderDashboard())
	case TabTransactions:
		sections = append(sections, m.txnList.View())
	case TabReports:
		sections = append(sections, m.renderReports())
	}

	sections = append(sections, "", m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTabs draws the application title and tab bar.
func (m Model) renderTabs() string {
	title := m.theme.Title.Render("tidewatch")

	var tabs []string
	for i, label := range tabLabels {
		if Tab(i) == m.tab {
			tabs = append(tabs, m.theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.theme.TabInactive.Render(label))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", strings.Join(tabs, ""))
}

// renderDashboard draws the period header, summary cards, chart, and the
// elapsed-period progress bar.
func (m Model) renderDashboard() string {
	header := components.PeriodHeader{Theme: m.theme}.Render(m.nav)

	current := m.nav.Current()
	summary := viewmodel.NewSummary(current, m.nav.Previous(), synth.Today)

	cards := components.SummaryCards{Theme: m.theme, Width: m.width}.
		Render(summary, viewmodel.CashSeries(current, synth.Today))

	sections := []string{header, "", cards, ""}

	if current.IsCurrent() {
		chart := components.BarChart{Theme: m.theme, Today: synth.Today, Height: m.chartHeight()}
		sections = append(sections,
			m.theme.Subtitle.Render("Revenue — "+current.Label),
			chart.Render(metrics.BucketsFor(m.nav.View, current.Days)),
			"",
			m.renderPeriodProgress(current),
		)
	} else {
		sections = append(sections,
			m.theme.Faint.Render("Select the current period for the daily breakdown."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderPeriodProgress shows how much of the current period has elapsed.
func (m Model) renderPeriodProgress(p model.FinancialPeriod) string {
	elapsed := 0
	for _, d := range p.Days {
		if d.Date.After(synth.Today) {
			break
		}
		elapsed++
	}
	frac := float64(elapsed) / float64(len(p.Days))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Subtitle.Render("Period progress"),
		m.progress.ViewAs(frac),
	)
}

// renderReports draws the per-period comparison table for the active view
// type.
func (m Model) renderReports() string {
	header := components.PeriodHeader{Theme: m.theme}.Render(m.nav)
	rows := viewmodel.BuildReportRows(m.nav.Periods())
	table := components.ReportTable{Theme: m.theme}.Render(rows, m.nav.Index)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", table)
}

// renderFooter draws the short help line and any pending error.
func (m Model) renderFooter() string {
	var parts []string
	for _, b := range m.keymap.ShortHelp() {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	footer := m.theme.Faint.Render(strings.Join(parts, "  •  "))

	if m.lastError != nil {
		footer = lipgloss.JoinVertical(lipgloss.Left,
			m.theme.StatusError.Render("error: "+m.lastError.Error()),
			footer,
		)
	}
	return footer
}

// renderHelp draws the full key binding reference.
func (m Model) renderHelp() string {
	lines := []string{m.theme.Title.Render("Key bindings"), ""}
	for _, group := range m.keymap.FullHelp() {
		for _, b := range group {
			lines = append(lines,
				m.theme.Bold.Render(b.Help().Key)+"  "+m.theme.Normal.Render(b.Help().Desc))
		}
		lines = append(lines, "")
	}
	lines = append(lines, m.theme.Faint.Render("press ? to close"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) chartHeight() int {
	h := (m.height - 18) / 2
	if h < 4 {
		h = 4
	}
	if h > 10 {
		h = 10
	}
	return h
}
