package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/fairweather/tidewatch/internal/common"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions to CSV",
		RunE:  runExport,
	}

	cmd.Flags().String("output", "transactions.csv", "output file path")
	cmd.Flags().Bool("hidden", false, "include hidden transactions")
	cmd.Flags().String("db", "", "read transaction edits from this sqlite database")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	output, _ := cmd.Flags().GetString("output")
	includeHidden, _ := cmd.Flags().GetBool("hidden")
	dbPath, _ := cmd.Flags().GetString("db")

	rows, err := collectRows(cmd.Context(), dbPath)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	header := []string{"date", "merchant", "description", "amount", "category", "account", "hidden"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	bar := progressbar.Default(int64(len(rows)), "exporting")
	written := 0
	for _, row := range rows {
		_ = bar.Add(1)
		if row.Hidden && !includeHidden {
			continue
		}
		record := []string{
			row.Date.Format("2006-01-02"),
			row.Merchant,
			row.Description,
			row.Amount,
			row.Category.Name,
			row.Account.Name,
			strconv.FormatBool(row.Hidden),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
		written++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	common.LogInfo("export complete", common.Fields{"path": output, "count": written})
	fmt.Printf("\nwrote %d transactions to %s\n", written, output)
	return nil
}
