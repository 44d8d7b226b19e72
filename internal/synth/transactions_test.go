package synth

import (
	"testing"

	"github.com/fairweather/tidewatch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionsAreDeterministic(t *testing.T) {
	a := Transactions()
	b := Transactions()

	require.Equal(t, len(a), len(b))
	assert.Equal(t, a, b, "two builds must be identical, ids included")
}

func TestTransactionsShape(t *testing.T) {
	txns := Transactions()
	require.NotEmpty(t, txns)

	for i, txn := range txns {
		assert.NotEmpty(t, txn.ID, "transaction %d", i)
		assert.NotEmpty(t, txn.Merchant, "transaction %d", i)
		assert.False(t, txn.Date.After(Today), "transaction %d must not be in the future", i)
		assert.False(t, txn.Hidden)
		assert.False(t, txn.Deleted)
	}
}

func TestTransactionsIncludeUncategorized(t *testing.T) {
	var uncategorized int
	for _, txn := range Transactions() {
		if txn.CategoryID == "" {
			uncategorized++
		}
	}
	assert.Greater(t, uncategorized, 0, "some transactions should exercise the fallback")
}

func TestTransactionSignConvention(t *testing.T) {
	for _, txn := range Transactions() {
		if txn.CategoryID == "revenue" {
			assert.Greater(t, txn.Amount, 0.0, "revenue is positive: %s", txn.Merchant)
		}
		if txn.CategoryID == "payroll" {
			assert.Less(t, txn.Amount, 0.0, "spend is negative: %s", txn.Merchant)
		}
	}
}

func TestCategoryByIDFallsBack(t *testing.T) {
	assert.Equal(t, "Software", CategoryByID("software").Name)

	got := CategoryByID("nope")
	assert.Equal(t, Uncategorized, got)

	got = CategoryByID("")
	assert.Equal(t, Uncategorized, got)
}

func TestAccountByIDFallsBack(t *testing.T) {
	assert.Equal(t, "Operating Checking", AccountByID("acct-checking").Name)

	got := AccountByID("acct-mystery")
	assert.Equal(t, model.Account{ID: "acct-mystery", Name: "Unknown Account", Kind: "unknown"}, got)
}
