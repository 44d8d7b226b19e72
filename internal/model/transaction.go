package model

import "time"

// CategorySource records how a transaction got its category.
type CategorySource string

const (
	// SourceAutomatic means the category came from the seeded catalog.
	SourceAutomatic CategorySource = "automatic"
	// SourceManual means the user recategorized the transaction.
	SourceManual CategorySource = "manual"
	// SourceImport means the category was inferred from an imported file.
	SourceImport CategorySource = "import"
)

// Transaction is a single financial transaction shown in the transactions
// view. The seeded set is static; user edits (hidden flag, manual category)
// live in the override store, not here.
type Transaction struct {
	Date        time.Time
	ID          string
	Merchant    string
	Description string
	AccountID   string
	CategoryID  string
	Source      CategorySource
	Amount      float64
	Hidden      bool
	Deleted     bool
}
