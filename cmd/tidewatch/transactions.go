package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/fairweather/tidewatch/internal/model"
	"github.com/fairweather/tidewatch/internal/storage"
	"github.com/fairweather/tidewatch/internal/synth"
	"github.com/fairweather/tidewatch/internal/tui/viewmodel"
	"github.com/spf13/cobra"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"txns"},
		Short:   "Print the transaction table",
		RunE:    runTransactions,
	}

	cmd.Flags().Bool("hidden", false, "include hidden transactions")
	cmd.Flags().String("category", "", "only show transactions in this category id")
	cmd.Flags().String("db", "", "read transaction edits from this sqlite database")

	return cmd
}

func runTransactions(cmd *cobra.Command, _ []string) error {
	showHidden, _ := cmd.Flags().GetBool("hidden")
	categoryID, _ := cmd.Flags().GetString("category")
	dbPath, _ := cmd.Flags().GetString("db")

	rows, err := collectRows(cmd.Context(), dbPath)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tMERCHANT\tCATEGORY\tAMOUNT\tACCOUNT")
	shown := 0
	for _, row := range rows {
		if row.Hidden && !showHidden {
			continue
		}
		if categoryID != "" && row.Category.ID != categoryID {
			continue
		}
		category := row.Category.Name
		if row.Manual {
			category += " *"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s ••%s\n",
			row.DateLabel, row.Merchant, category, row.Amount, row.AccountKind, row.Account.Mask)
		shown++
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	fmt.Printf("\n%d transactions\n", shown)
	return nil
}

// collectRows builds display rows from the seeded set with any stored
// overrides applied.
func collectRows(ctx context.Context, dbPath string) ([]viewmodel.TransactionRow, error) {
	store, err := openStore(dbPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("Failed to close override store", "error", err)
		}
	}()

	var txns []model.Transaction
	txns, err = storage.ApplyOverrides(ctx, store, synth.Transactions())
	if err != nil {
		return nil, fmt.Errorf("failed to apply overrides: %w", err)
	}

	return viewmodel.BuildTransactionRows(txns, synth.CategoryByID, synth.AccountByID), nil
}
