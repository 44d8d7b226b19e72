// Package storage persists the only mutable state in the system: per
// transaction overrides (hidden flag, manual recategorization). The default
// store is in-memory, so edits vanish with the session; the sqlite store is
// opt-in for keeping them across restarts.
package storage

import (
	"context"

	"github.com/fairweather/tidewatch/internal/model"
)

// Override is the user-editable slice of a transaction.
type Override struct {
	TransactionID string
	CategoryID    string
	Source        model.CategorySource
	Hidden        bool
}

// OverrideStore reads and writes transaction overrides.
type OverrideStore interface {
	// Get returns the override for a transaction id, if any.
	Get(ctx context.Context, transactionID string) (*Override, error)
	// Save upserts an override.
	Save(ctx context.Context, ov Override) error
	// All returns every stored override keyed by transaction id.
	All(ctx context.Context) (map[string]Override, error)
	Close() error
}

// ApplyOverrides returns a copy of txns with stored overrides folded in.
// Transactions without an override pass through unchanged.
func ApplyOverrides(ctx context.Context, store OverrideStore, txns []model.Transaction) ([]model.Transaction, error) {
	overrides, err := store.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.Transaction, len(txns))
	copy(out, txns)
	for i := range out {
		ov, ok := overrides[out[i].ID]
		if !ok {
			continue
		}
		out[i].Hidden = ov.Hidden
		if ov.CategoryID != "" {
			out[i].CategoryID = ov.CategoryID
			out[i].Source = ov.Source
		}
	}
	return out, nil
}
