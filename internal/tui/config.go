package tui

import (
	"github.com/fairweather/tidewatch/internal/model"
	"github.com/fairweather/tidewatch/internal/storage"
	"github.com/fairweather/tidewatch/internal/synth"
	"github.com/fairweather/tidewatch/internal/tui/themes"
)

// Config holds dashboard configuration.
type Config struct {
	Theme        themes.Theme
	Store        storage.OverrideStore
	Catalog      *synth.Catalog
	Transactions []model.Transaction
	View         model.ViewType
	Width        int
	Height       int
}

// Option is a functional option for configuring the dashboard.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:  themes.Default,
		View:   model.ViewMonth,
		Width:  100,
		Height: 32,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithStore sets the override store.
func WithStore(store storage.OverrideStore) Option {
	return func(c *Config) {
		c.Store = store
	}
}

// WithCatalog sets the period catalog.
func WithCatalog(catalog *synth.Catalog) Option {
	return func(c *Config) {
		c.Catalog = catalog
	}
}

// WithView sets the starting view type.
func WithView(view model.ViewType) Option {
	return func(c *Config) {
		c.View = view
	}
}

// WithTransactions sets the base transaction set. Imported statements are
// appended to the seeded demo set before the dashboard starts.
func WithTransactions(txns []model.Transaction) Option {
	return func(c *Config) {
		c.Transactions = txns
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
