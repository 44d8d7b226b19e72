package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fairweather/tidewatch/internal/common"
	"github.com/fairweather/tidewatch/internal/model"
	"github.com/fairweather/tidewatch/internal/ofx"
	"github.com/fairweather/tidewatch/internal/storage"
)

// openStore picks the override store: sqlite when a path is given, the
// session-local memory store otherwise.
func openStore(dbPath string) (storage.OverrideStore, error) {
	if dbPath == "" {
		return storage.NewMemoryStore(), nil
	}
	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, common.NewUserError("failed to open override database", err)
	}
	return store, nil
}

// parseViewType validates a --view flag value.
func parseViewType(s string) (model.ViewType, error) {
	switch model.ViewType(s) {
	case model.ViewMonth, model.ViewQuarter, model.ViewYear:
		return model.ViewType(s), nil
	default:
		return "", fmt.Errorf("%w: view type %q (want month, quarter, or year)", common.ErrInvalidConfig, s)
	}
}

// loadOFX parses an OFX/QFX statement file into transactions.
func loadOFX(ctx context.Context, path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	txns, err := ofx.NewParser().ParseFile(ctx, f)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("failed to parse %s", path), err)
	}
	return txns, nil
}
