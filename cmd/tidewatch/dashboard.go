package main

import (
	"fmt"
	"log/slog"

	"github.com/fairweather/tidewatch/internal/model"
	"github.com/fairweather/tidewatch/internal/tui"
	"github.com/fairweather/tidewatch/internal/tui/themes"
	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Launch the interactive dashboard",
		Long: `Launch the full-screen dashboard with summary cards, the revenue
chart, the transactions list, and period comparison reports.`,
		RunE: runDashboard,
	}

	cmd.Flags().String("view", "month", "starting view type (month, quarter, year)")
	cmd.Flags().String("theme", "default", "color theme (default, catppuccin-mocha)")
	cmd.Flags().String("db", "", "persist transaction edits to this sqlite database")
	cmd.Flags().String("ofx", "", "OFX/QFX statement to show alongside the demo data")

	return cmd
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	viewFlag, _ := cmd.Flags().GetString("view")
	view, err := parseViewType(viewFlag)
	if err != nil {
		return err
	}

	themeName, _ := cmd.Flags().GetString("theme")
	dbPath, _ := cmd.Flags().GetString("db")
	ofxPath, _ := cmd.Flags().GetString("ofx")

	store, err := openStore(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("Failed to close override store", "error", err)
		}
	}()

	var imported []model.Transaction
	if ofxPath != "" {
		imported, err = loadOFX(cmd.Context(), ofxPath)
		if err != nil {
			return err
		}
		slog.Info("Loaded statement", "file", ofxPath, "transactions", len(imported))
	}

	opts := []tui.Option{
		tui.WithView(view),
		tui.WithTheme(themes.GetTheme(themeName)),
		tui.WithStore(store),
		tui.WithTransactions(imported),
	}

	if err := tui.Run(cmd.Context(), opts...); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
