package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fairweather/tidewatch/internal/model"
	"github.com/fairweather/tidewatch/internal/storage"
	"github.com/fairweather/tidewatch/internal/synth"
)

// baseTransactions is the seeded demo set plus anything imported before
// launch.
func (m Model) baseTransactions() []model.Transaction {
	txns := synth.Transactions()
	return append(txns, m.config.Transactions...)
}

// loadTransactions folds stored overrides into the base set.
func (m Model) loadTransactions() tea.Cmd {
	store := m.config.Store
	base := m.baseTransactions()
	return func() tea.Msg {
		txns, err := storage.ApplyOverrides(context.Background(), store, base)
		if err != nil {
			return errorMsg{err: err}
		}
		return dataLoadedMsg{transactions: txns}
	}
}

// saveHidden persists a hidden-flag override, preserving any existing
// category override, then reloads.
func (m Model) saveHidden(transactionID string, hidden bool) tea.Cmd {
	store := m.config.Store
	reload := m.loadTransactions()
	return func() tea.Msg {
		ctx := context.Background()
		ov, err := store.Get(ctx, transactionID)
		if err != nil {
			return errorMsg{err: err}
		}
		if ov == nil {
			ov = &storage.Override{TransactionID: transactionID}
		}
		ov.Hidden = hidden
		if err := store.Save(ctx, *ov); err != nil {
			return errorMsg{err: err}
		}
		return reload()
	}
}

// saveCategory persists a manual recategorization, then reloads.
func (m Model) saveCategory(transactionID, categoryID string) tea.Cmd {
	store := m.config.Store
	reload := m.loadTransactions()
	return func() tea.Msg {
		ctx := context.Background()
		ov, err := store.Get(ctx, transactionID)
		if err != nil {
			return errorMsg{err: err}
		}
		if ov == nil {
			ov = &storage.Override{TransactionID: transactionID}
		}
		ov.CategoryID = categoryID
		ov.Source = model.SourceManual
		if err := store.Save(ctx, *ov); err != nil {
			return errorMsg{err: err}
		}
		return reload()
	}
}
