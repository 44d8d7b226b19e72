package nav

import (
	"testing"

	"github.com/fairweather/tidewatch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog is a minimal fixture: three months, two years, with the
// "current" period in the middle of each array.
type fakeCatalog struct{}

var fakeMonths = []model.FinancialPeriod{
	{ID: "2024-04", Label: "April 2024", View: model.ViewMonth},
	{ID: "2024-05", Label: "May 2024", View: model.ViewMonth},
	{ID: "2024-06", Label: "June 2024", View: model.ViewMonth},
}

var fakeYears = []model.FinancialPeriod{
	{ID: "2023", Label: "2023", View: model.ViewYear},
	{ID: "2024", Label: "2024", View: model.ViewYear},
}

func (fakeCatalog) PeriodsFor(view model.ViewType) []model.FinancialPeriod {
	if view == model.ViewYear {
		return fakeYears
	}
	return fakeMonths
}

func (fakeCatalog) CurrentIndex(view model.ViewType) int {
	if view == model.ViewYear {
		return 1
	}
	return 2
}

func (fakeCatalog) PeriodByID(id string) (model.FinancialPeriod, bool) {
	for _, ps := range [][]model.FinancialPeriod{fakeMonths, fakeYears} {
		for _, p := range ps {
			if p.ID == id {
				return p, true
			}
		}
	}
	return model.FinancialPeriod{}, false
}

func TestNewStateStartsAtCurrentPeriod(t *testing.T) {
	s := NewState(fakeCatalog{}, model.ViewMonth)

	assert.Equal(t, model.ViewMonth, s.View)
	assert.Equal(t, 2, s.Index)
	assert.Equal(t, "2024-06", s.Current().ID)
}

func TestNextClampsAtEnd(t *testing.T) {
	s := NewState(fakeCatalog{}, model.ViewMonth)
	require.True(t, s.AtEnd())

	s = s.Next()

	assert.Equal(t, 2, s.Index, "next at the last index is a no-op")
}

func TestPrevClampsAtStart(t *testing.T) {
	s := NewState(fakeCatalog{}, model.ViewMonth)
	s = s.Prev().Prev()
	require.True(t, s.AtStart())

	s = s.Prev()

	assert.Equal(t, 0, s.Index, "prev at index 0 is a no-op")
}

func TestSelectViewResetsToCurrentIndex(t *testing.T) {
	s := NewState(fakeCatalog{}, model.ViewMonth)
	s = s.Prev().Prev()
	require.Equal(t, 0, s.Index)

	s = s.SelectView(model.ViewYear)

	assert.Equal(t, model.ViewYear, s.View)
	assert.Equal(t, 1, s.Index, "switching views resets to the current period")

	s = s.SelectView(model.ViewMonth)
	assert.Equal(t, 2, s.Index)
}

func TestSelectPeriodJumpsById(t *testing.T) {
	s := NewState(fakeCatalog{}, model.ViewMonth)

	s = s.SelectPeriod("2024-04")

	assert.Equal(t, 0, s.Index)
	assert.Equal(t, "2024-04", s.Current().ID)
}

func TestSelectPeriodAcrossViews(t *testing.T) {
	s := NewState(fakeCatalog{}, model.ViewMonth)

	s = s.SelectPeriod("2023")

	assert.Equal(t, model.ViewYear, s.View)
	assert.Equal(t, 0, s.Index)
}

func TestSelectPeriodUnknownIdIsNoop(t *testing.T) {
	s := NewState(fakeCatalog{}, model.ViewMonth)

	got := s.SelectPeriod("1999-01")

	assert.Equal(t, s, got)
}

func TestPrevious(t *testing.T) {
	s := NewState(fakeCatalog{}, model.ViewMonth)

	prev := s.Previous()
	require.NotNil(t, prev)
	assert.Equal(t, "2024-05", prev.ID)

	s = s.Prev().Prev()
	assert.Nil(t, s.Previous(), "no previous period at index 0")
}

func TestCurrentFallsBackOnBadIndex(t *testing.T) {
	s := NewState(fakeCatalog{}, model.ViewMonth)
	s.Index = 99

	assert.Equal(t, "2024-04", s.Current().ID, "out-of-range index falls back to first")
}
