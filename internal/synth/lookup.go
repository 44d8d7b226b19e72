package synth

import "github.com/fairweather/tidewatch/internal/model"

// Uncategorized is the fallback returned for any unknown category id.
var Uncategorized = model.Category{ID: "uncategorized", Name: "Uncategorized", Icon: "❔"}

var categories = []model.Category{
	{ID: "revenue", Name: "Revenue", Icon: "💵"},
	{ID: "payroll", Name: "Payroll", Icon: "👥"},
	{ID: "software", Name: "Software", Icon: "💻"},
	{ID: "rent", Name: "Rent & Facilities", Icon: "🏢"},
	{ID: "marketing", Name: "Marketing", Icon: "📣"},
	{ID: "travel", Name: "Travel", Icon: "✈️"},
	{ID: "meals", Name: "Meals & Entertainment", Icon: "🍽️"},
	{ID: "insurance", Name: "Insurance", Icon: "🛡️"},
	{ID: "bank-fees", Name: "Bank Fees", Icon: "🏦"},
	{ID: "taxes", Name: "Taxes", Icon: "📋"},
	{ID: "equipment", Name: "Equipment", Icon: "🖨️"},
	Uncategorized,
}

var accounts = []model.Account{
	{ID: "acct-checking", Name: "Operating Checking", Mask: "4821", Kind: "checking"},
	{ID: "acct-savings", Name: "Reserve Savings", Mask: "0193", Kind: "savings"},
	{ID: "acct-credit", Name: "Corporate Card", Mask: "7744", Kind: "credit"},
}

// Categories returns the static category lookup list.
func Categories() []model.Category {
	return categories
}

// CategoryByID returns the category for id, or the Uncategorized fallback.
func CategoryByID(id string) model.Category {
	for _, c := range categories {
		if c.ID == id {
			return c
		}
	}
	return Uncategorized
}

// Accounts returns the static account lookup list.
func Accounts() []model.Account {
	return accounts
}

// AccountByID returns the account for id; an unknown id yields a placeholder
// rather than an error.
func AccountByID(id string) model.Account {
	for _, a := range accounts {
		if a.ID == id {
			return a
		}
	}
	return model.Account{ID: id, Name: "Unknown Account", Kind: "unknown"}
}
