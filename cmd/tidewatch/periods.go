package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fairweather/tidewatch/internal/synth"
	"github.com/fairweather/tidewatch/internal/tui/viewmodel"
	"github.com/spf13/cobra"
)

func periodsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "periods",
		Short: "List the period catalog with deltas",
		RunE:  runPeriods,
	}

	cmd.Flags().String("view", "month", "view type (month, quarter, year)")

	return cmd
}

func runPeriods(cmd *cobra.Command, _ []string) error {
	viewFlag, _ := cmd.Flags().GetString("view")
	view, err := parseViewType(viewFlag)
	if err != nil {
		return err
	}

	catalog := synth.NewCatalog()
	rows := viewmodel.BuildReportRows(catalog.PeriodsFor(view))
	currentIdx := catalog.CurrentIndex(view)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPERIOD\tREVENUE\tCOSTS\tPROFIT\tΔ REV")
	for i, row := range rows {
		marker := ""
		if i == currentIdx {
			marker = " *"
		}
		fmt.Fprintf(w, "%s\t%s%s\t%s\t%s\t%s\t%s\n",
			row.ID, row.Label, marker, row.Revenue, row.Costs, row.Profit, row.RevChange.Value)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	if currentIdx >= 0 && currentIdx < len(rows) && rows[currentIdx].CompareLabel != "" {
		fmt.Printf("\n* current period, %s of %s\n",
			rows[currentIdx].CompareLabel, synth.Today.Format("Jan 2, 2006"))
	}
	return nil
}
