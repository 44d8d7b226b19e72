// Package tui renders the interactive financial dashboard: summary cards,
// the revenue chart, the transactions list, and the period comparison
// report, all driven by the seeded synthetic data catalog.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fairweather/tidewatch/internal/storage"
	"github.com/fairweather/tidewatch/internal/synth"
)

// Run launches the dashboard and blocks until the user quits or ctx is
// canceled.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Catalog == nil {
		cfg.Catalog = synth.NewCatalog()
	}
	if cfg.Store == nil {
		cfg.Store = storage.NewMemoryStore()
	}

	p := tea.NewProgram(
		newModel(cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard exited with error: %w", err)
	}
	return nil
}
