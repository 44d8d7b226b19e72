package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fairweather/tidewatch/internal/model"
	"github.com/fairweather/tidewatch/internal/synth"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.ofx>",
		Short: "Parse an OFX/QFX statement and preview its transactions",
		Long: `Parse a bank statement and print the transactions it contains.
Use "tidewatch dashboard --ofx <file>" to browse them alongside the
demo data.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	txns, err := loadOFX(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(txns) == 0 {
		fmt.Println("no transactions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tMERCHANT\tCATEGORY\tAMOUNT")
	for _, t := range txns {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			t.Date.Format("2006-01-02"),
			t.Merchant,
			synth.CategoryByID(t.CategoryID).Name,
			model.FormatDollars(t.Amount))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	fmt.Printf("\n%d transactions parsed from %s\n", len(txns), args[0])
	return nil
}
