package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fairweather/tidewatch/internal/model"
	"github.com/fairweather/tidewatch/internal/nav"
	"github.com/fairweather/tidewatch/internal/synth"
	"github.com/fairweather/tidewatch/internal/tui/components"
	"github.com/fairweather/tidewatch/internal/tui/themes"
	"github.com/fairweather/tidewatch/internal/tui/viewmodel"
)

// Tab identifies the active dashboard tab.
type Tab int

const (
	TabDashboard Tab = iota
	TabTransactions
	TabReports
)

var tabLabels = []string{"Dashboard", "Transactions", "Reports"}

// Model holds the main dashboard state.
type Model struct {
	theme        themes.Theme
	lastError    error
	config       Config
	nav          nav.State
	keymap       KeyMap
	transactions []model.Transaction
	txnList      components.TransactionListModel
	progress     progress.Model
	tab          Tab
	width        int
	height       int
	ready        bool
	quitting     bool
	showHelp     bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	prog := progress.New(progress.WithDefaultGradient())
	prog.ShowPercentage = false
	prog.Width = 40

	return Model{
		config:   cfg,
		theme:    cfg.Theme,
		keymap:   DefaultKeyMap(),
		nav:      nav.NewState(cfg.Catalog, cfg.View),
		txnList:  components.NewTransactionListModel(synth.Categories(), cfg.Theme),
		progress: prog,
		width:    cfg.Width,
		height:   cfg.Height,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, m.loadTransactions())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case dataLoadedMsg:
		m.transactions = msg.transactions
		m.txnList.SetRows(viewmodel.BuildTransactionRows(
			msg.transactions, synth.CategoryByID, synth.AccountByID))
		m.ready = true
		return m, nil

	case components.ToggleHiddenMsg:
		return m, m.saveHidden(msg.TransactionID, msg.Hidden)

	case components.RecategorizeMsg:
		return m, m.saveCategory(msg.TransactionID, msg.CategoryID)

	case errorMsg:
		m.lastError = msg.err
		return m, nil
	}

	return m, nil
}

// handleKey routes keys: application-wide bindings first, then the active
// tab.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Quit):
		// Esc first closes the category picker, handled by the list.
		if m.tab == TabTransactions && m.txnList.Picking() {
			break
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keymap.NextTab):
		m.tab = (m.tab + 1) % Tab(len(tabLabels))
		return m, nil

	case key.Matches(msg, m.keymap.PrevTab):
		m.tab = (m.tab + Tab(len(tabLabels)) - 1) % Tab(len(tabLabels))
		return m, nil
	}

	if m.tab == TabTransactions {
		newList, cmd := m.txnList.Update(msg)
		m.txnList = newList
		return m, cmd
	}

	// Dashboard and reports share period navigation.
	switch {
	case key.Matches(msg, m.keymap.PrevPeriod):
		m.nav = m.nav.Prev()
	case key.Matches(msg, m.keymap.NextPeriod):
		m.nav = m.nav.Next()
	case key.Matches(msg, m.keymap.ViewMonth):
		m.nav = m.nav.SelectView(model.ViewMonth)
	case key.Matches(msg, m.keymap.ViewQuarter):
		m.nav = m.nav.SelectView(model.ViewQuarter)
	case key.Matches(msg, m.keymap.ViewYear):
		m.nav = m.nav.SelectView(model.ViewYear)
	}
	return m, nil
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	m.txnList.Resize(m.width-2, m.height-6)
	w := m.width / 2
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	m.progress.Width = w
}
