package tui

import "github.com/fairweather/tidewatch/internal/model"

// dataLoadedMsg delivers the transaction set with overrides applied.
type dataLoadedMsg struct {
	transactions []model.Transaction
}

// errorMsg carries a failure from a command back to the model.
type errorMsg struct {
	err error
}
