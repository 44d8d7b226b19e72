package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fairweather/tidewatch/internal/model"
	"github.com/fairweather/tidewatch/internal/tui/themes"
	"github.com/fairweather/tidewatch/internal/tui/viewmodel"
)

// ToggleHiddenMsg asks the parent to flip a transaction's hidden flag.
type ToggleHiddenMsg struct {
	TransactionID string
	Hidden        bool
}

// RecategorizeMsg asks the parent to store a manual category override.
type RecategorizeMsg struct {
	TransactionID string
	CategoryID    string
}

// TransactionListModel is the scrollable transaction table with the
// hidden-row toggle and the category picker overlay.
type TransactionListModel struct {
	theme      themes.Theme
	rows       []viewmodel.TransactionRow
	categories []model.Category
	cursor     int
	pickIndex  int
	width      int
	height     int
	showHidden bool
	picking    bool
}

// NewTransactionListModel creates the list with the category picker choices.
func NewTransactionListModel(categories []model.Category, theme themes.Theme) TransactionListModel {
	return TransactionListModel{
		theme:      theme,
		categories: categories,
		height:     20,
	}
}

// SetRows replaces the rows, keeping the cursor in range.
func (m *TransactionListModel) SetRows(rows []viewmodel.TransactionRow) {
	m.rows = rows
	m.clampCursor()
}

// Picking reports whether the category picker overlay is open.
func (m TransactionListModel) Picking() bool {
	return m.picking
}

// Resize updates the component size.
func (m *TransactionListModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles list navigation, the hidden toggle, and the picker.
func (m TransactionListModel) Update(msg tea.Msg) (TransactionListModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.picking {
		return m.updatePicker(keyMsg)
	}

	visible := m.visibleRows()
	switch keyMsg.String() {
	case "j", "down":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = len(visible) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
	case "H":
		m.showHidden = !m.showHidden
		m.clampCursor()
	case "x":
		if row, ok := m.selected(); ok {
			return m, func() tea.Msg {
				return ToggleHiddenMsg{TransactionID: row.ID, Hidden: !row.Hidden}
			}
		}
	case "c":
		if _, ok := m.selected(); ok {
			m.picking = true
			m.pickIndex = 0
		}
	}
	return m, nil
}

func (m TransactionListModel) updatePicker(msg tea.KeyMsg) (TransactionListModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.pickIndex < len(m.categories)-1 {
			m.pickIndex++
		}
	case "k", "up":
		if m.pickIndex > 0 {
			m.pickIndex--
		}
	case "enter":
		row, ok := m.selected()
		m.picking = false
		if ok {
			cat := m.categories[m.pickIndex]
			return m, func() tea.Msg {
				return RecategorizeMsg{TransactionID: row.ID, CategoryID: cat.ID}
			}
		}
	case "esc":
		m.picking = false
	}
	return m, nil
}

// View renders the table, or the category picker while one is open.
func (m TransactionListModel) View() string {
	if m.picking {
		return m.viewPicker()
	}

	visible := m.visibleRows()
	if len(visible) == 0 {
		return m.theme.Faint.Render("no transactions")
	}

	header := m.theme.Subtitle.Render(
		fmt.Sprintf("%-7s %-22s %-24s %12s  %s", "DATE", "MERCHANT", "CATEGORY", "AMOUNT", "ACCOUNT"))

	start, end := m.window(len(visible))
	lines := []string{header}
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(visible[i], i == m.cursor))
	}

	footer := m.theme.Faint.Render(
		fmt.Sprintf("%d transactions  •  x hide  c categorize  H show hidden", len(visible)))
	lines = append(lines, footer)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m TransactionListModel) renderRow(row viewmodel.TransactionRow, selected bool) string {
	category := fmt.Sprintf("%s %s", row.Category.Icon, row.Category.Name)
	if row.Manual {
		category += " *"
	}

	amount := row.Amount
	line := fmt.Sprintf("%-7s %-22s %-24s %12s  %s ••%s",
		row.DateLabel,
		truncate(row.Merchant, 22),
		truncate(category, 24),
		amount,
		row.AccountKind,
		row.Account.Mask,
	)

	switch {
	case selected:
		return m.theme.Selected.Render(line)
	case row.Hidden:
		return m.theme.HiddenRow.Render(line)
	case row.Negative:
		return m.theme.Normal.Render(line)
	default:
		return m.theme.BadgeUp.Render(line)
	}
}

func (m TransactionListModel) viewPicker() string {
	row, _ := m.selected()
	title := m.theme.Title.Render("Categorize: " + row.Merchant)

	var lines []string
	for i, c := range m.categories {
		label := fmt.Sprintf("%s %s", c.Icon, c.Name)
		if i == m.pickIndex {
			lines = append(lines, m.theme.Selected.Render("› "+label))
		} else {
			lines = append(lines, m.theme.Normal.Render("  "+label))
		}
	}
	help := m.theme.Faint.Render("enter apply  •  esc cancel")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		strings.Join(lines, "\n"),
		help,
	)
}

// visibleRows filters hidden rows unless the toggle shows them.
func (m TransactionListModel) visibleRows() []viewmodel.TransactionRow {
	if m.showHidden {
		return m.rows
	}
	var out []viewmodel.TransactionRow
	for _, r := range m.rows {
		if !r.Hidden {
			out = append(out, r)
		}
	}
	return out
}

func (m TransactionListModel) selected() (viewmodel.TransactionRow, bool) {
	visible := m.visibleRows()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return viewmodel.TransactionRow{}, false
	}
	return visible[m.cursor], true
}

// window picks the slice of rows that fits the component height, keeping
// the cursor visible.
func (m TransactionListModel) window(n int) (start, end int) {
	rows := m.height - 2
	if rows < 1 {
		rows = n
	}
	if n <= rows {
		return 0, n
	}
	start = m.cursor - rows/2
	if start < 0 {
		start = 0
	}
	end = start + rows
	if end > n {
		end = n
		start = end - rows
	}
	return start, end
}

func (m *TransactionListModel) clampCursor() {
	visible := len(m.visibleRows())
	if m.cursor >= visible {
		m.cursor = visible - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
