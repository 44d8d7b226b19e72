// Package nav implements the period navigation state machine: a view-type
// selector plus a clamped index into that view's period array.
package nav

import "github.com/fairweather/tidewatch/internal/model"

// Catalog is the data source the state machine navigates over.
type Catalog interface {
	PeriodsFor(view model.ViewType) []model.FinancialPeriod
	CurrentIndex(view model.ViewType) int
	PeriodByID(id string) (model.FinancialPeriod, bool)
}

// State tracks the selected view type and period index. It is a plain value
// mutated by the UI event loop; there is no concurrent access.
type State struct {
	catalog Catalog
	View    model.ViewType
	Index   int
}

// NewState starts at the current period of the given view type.
func NewState(catalog Catalog, view model.ViewType) State {
	s := State{catalog: catalog, View: view}
	s.Index = s.clamp(catalog.CurrentIndex(view))
	return s
}

// Periods returns the period array for the active view type.
func (s State) Periods() []model.FinancialPeriod {
	return s.catalog.PeriodsFor(s.View)
}

// Current returns the selected period. An out-of-range index falls back to
// the first period rather than failing.
func (s State) Current() model.FinancialPeriod {
	periods := s.Periods()
	if s.Index < 0 || s.Index >= len(periods) {
		return periods[0]
	}
	return periods[s.Index]
}

// Previous returns the period before the selected one, or nil at index 0.
func (s State) Previous() *model.FinancialPeriod {
	if s.Index <= 0 {
		return nil
	}
	p := s.Periods()[s.Index-1]
	return &p
}

// Next advances one period, clamping silently at the end of the array.
func (s State) Next() State {
	s.Index = s.clamp(s.Index + 1)
	return s
}

// Prev steps back one period, clamping silently at index 0.
func (s State) Prev() State {
	s.Index = s.clamp(s.Index - 1)
	return s
}

// AtStart reports whether Prev would be a no-op.
func (s State) AtStart() bool {
	return s.Index == 0
}

// AtEnd reports whether Next would be a no-op.
func (s State) AtEnd() bool {
	return s.Index == len(s.Periods())-1
}

// SelectView switches the view type and resets the index to that view's
// current period.
func (s State) SelectView(view model.ViewType) State {
	s.View = view
	s.Index = s.clamp(s.catalog.CurrentIndex(view))
	return s
}

// SelectPeriod jumps directly to the period with the given id. An unknown
// id leaves the state unchanged.
func (s State) SelectPeriod(id string) State {
	p, ok := s.catalog.PeriodByID(id)
	if !ok {
		return s
	}
	s.View = p.View
	for i, candidate := range s.catalog.PeriodsFor(p.View) {
		if candidate.ID == id {
			s.Index = i
			break
		}
	}
	return s
}

func (s State) clamp(i int) int {
	max := len(s.Periods()) - 1
	if i > max {
		i = max
	}
	if i < 0 {
		i = 0
	}
	return i
}
