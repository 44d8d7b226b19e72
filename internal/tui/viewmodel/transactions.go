package viewmodel

import (
	"sort"
	"time"

	"github.com/fairweather/tidewatch/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// TransactionRow is one rendered row of the transactions view, with every
// lookup already resolved.
type TransactionRow struct {
	ID          string
	Date        time.Time
	DateLabel   string
	Merchant    string
	Description string
	Amount      string
	Negative    bool
	Category    model.Category
	Account     model.Account
	AccountKind string
	Hidden      bool
	Manual      bool
}

// CategoryLookup resolves a category id, falling back for unknown ids.
type CategoryLookup func(id string) model.Category

// AccountLookup resolves an account id, falling back for unknown ids.
type AccountLookup func(id string) model.Account

// BuildTransactionRows resolves lookups and formats amounts for display.
// Deleted transactions are dropped; hidden ones are kept (the view dims
// them and can filter them with a toggle). Rows sort newest first.
func BuildTransactionRows(txns []model.Transaction, catByID CategoryLookup, acctByID AccountLookup) []TransactionRow {
	rows := make([]TransactionRow, 0, len(txns))
	for _, t := range txns {
		if t.Deleted {
			continue
		}
		acct := acctByID(t.AccountID)
		rows = append(rows, TransactionRow{
			ID:          t.ID,
			Date:        t.Date,
			DateLabel:   t.Date.Format("Jan 2"),
			Merchant:    t.Merchant,
			Description: t.Description,
			Amount:      model.FormatDollars(t.Amount),
			Negative:    t.Amount < 0,
			Category:    catByID(t.CategoryID),
			Account:     acct,
			AccountKind: titleCaser.String(acct.Kind),
			Hidden:      t.Hidden,
			Manual:      t.Source == model.SourceManual,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date)
	})
	return rows
}
