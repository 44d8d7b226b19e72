package main

import (
	"fmt"

	"github.com/fairweather/tidewatch/internal/common"
	"github.com/fairweather/tidewatch/internal/metrics"
	"github.com/fairweather/tidewatch/internal/model"
	"github.com/fairweather/tidewatch/internal/nav"
	"github.com/fairweather/tidewatch/internal/synth"
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a period summary report",
		Long: `Render a non-interactive summary for one period: revenue, costs,
profit, and the comparison against the previous period. The current
period compares period-to-date windows instead of full totals.`,
		RunE: runReport,
	}

	cmd.Flags().String("period", "", "period id (e.g. 2024-06, 2024-q2, 2024); defaults to the current month")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	periodID, _ := cmd.Flags().GetString("period")

	catalog := synth.NewCatalog()
	state := nav.NewState(catalog, model.ViewMonth)
	if periodID != "" {
		if _, ok := catalog.PeriodByID(periodID); !ok {
			return fmt.Errorf("period %q: %w", periodID, common.ErrNotFound)
		}
		state = state.SelectPeriod(periodID)
	}

	current := state.Current()
	cmp := metrics.ComparePeriods(current, state.Previous())

	fmt.Printf("%s\n\n", current.Label)
	fmt.Printf("  Revenue  %14s  %s\n", model.FormatDollars(current.Revenue), cmp.Revenue.Value)
	fmt.Printf("  Costs    %14s  %s\n", model.FormatDollars(current.Costs), cmp.Costs.Value)
	fmt.Printf("  Profit   %14s  %s\n", model.FormatDollars(current.Profit()), cmp.Profit.Value)

	if current.UncategorizedCount > 0 {
		fmt.Printf("\n  %d uncategorized transactions\n", current.UncategorizedCount)
	}
	if cmp.Label != "" {
		fmt.Printf("\n  %s\n", cmp.Label)
	}
	return nil
}
