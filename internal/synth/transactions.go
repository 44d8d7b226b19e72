package synth

import (
	"fmt"

	"github.com/fairweather/tidewatch/internal/model"
	"github.com/google/uuid"
)

// transactionCount is the size of the seeded demo set.
const transactionCount = 48

type merchantProfile struct {
	name        string
	description string
	categoryID  string
	accountID   string
	amountLo    float64
	amountHi    float64
}

var merchants = []merchantProfile{
	{"Gusto", "Payroll run", "payroll", "acct-checking", 8200, 14500},
	{"AWS", "Cloud hosting", "software", "acct-credit", 900, 2400},
	{"WeWork", "Office lease", "rent", "acct-checking", 3800, 4200},
	{"Google Ads", "Ad spend", "marketing", "acct-credit", 600, 2100},
	{"Delta Air Lines", "Client visit airfare", "travel", "acct-credit", 280, 1400},
	{"Stripe", "Customer payments", "revenue", "acct-checking", 3200, 9800},
	{"DoorDash", "Team lunch", "meals", "acct-credit", 45, 260},
	{"Hiscox", "Liability premium", "insurance", "acct-checking", 310, 540},
	{"Chase", "Wire fee", "bank-fees", "acct-checking", 15, 45},
	{"Figma", "Design seats", "software", "acct-credit", 144, 360},
	{"Apple", "Laptop purchase", "equipment", "acct-credit", 1100, 3200},
	{"IRS", "Quarterly estimate", "taxes", "acct-checking", 2400, 6800},
}

// Transactions builds the seeded demo transaction list: reproducible ids,
// dates spread across the weeks leading up to the simulated today, and a
// few entries left uncategorized to exercise the lookup fallback.
func Transactions() []model.Transaction {
	txns := make([]model.Transaction, 0, transactionCount)
	for i := 0; i < transactionCount; i++ {
		mp := merchants[i%len(merchants)]
		seed := 9000 + i*17

		txn := model.Transaction{
			ID:          uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("tidewatch-txn-%d", i))).String(),
			Date:        Today.AddDate(0, 0, -IntBetween(seed, 0, 45)),
			Merchant:    mp.name,
			Description: mp.description,
			AccountID:   mp.accountID,
			CategoryID:  mp.categoryID,
			Source:      model.SourceAutomatic,
			Amount:      Between(seed+3, mp.amountLo, mp.amountHi),
		}
		if mp.categoryID != "revenue" {
			txn.Amount = -txn.Amount
		}
		// Every ninth transaction arrives uncategorized.
		if i%9 == 8 {
			txn.CategoryID = ""
			txn.Source = ""
		}
		txns = append(txns, txn)
	}
	return txns
}
