package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fairweather/tidewatch/internal/model"
	"github.com/fairweather/tidewatch/internal/nav"
	"github.com/fairweather/tidewatch/internal/tui/themes"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var viewCaser = cases.Title(language.English)

// PeriodHeader renders the view-type tabs plus the period selector with its
// prev/next arrows.
type PeriodHeader struct {
	Theme themes.Theme
}

// Render draws the header for the current navigation state. Arrows dim at
// the array boundaries where next/prev clamp.
func (h PeriodHeader) Render(state nav.State) string {
	var tabs []string
	for _, vt := range model.AllViewTypes {
		label := viewCaser.String(string(vt))
		if vt == state.View {
			tabs = append(tabs, h.Theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, h.Theme.TabInactive.Render(label))
		}
	}

	prev := h.arrow("◀", state.AtStart())
	next := h.arrow("▶", state.AtEnd())
	current := state.Current()

	label := h.Theme.Title.Render(current.Label)
	if current.UncategorizedCount > 0 {
		label += " " + h.Theme.StatusWarning.Render(
			fmt.Sprintf("(%d uncategorized)", current.UncategorizedCount))
	}

	picker := fmt.Sprintf("%s %s %s", prev, label, next)

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		strings.Join(tabs, ""),
		"   ",
		picker,
	)
}

func (h PeriodHeader) arrow(glyph string, clamped bool) string {
	if clamped {
		return h.Theme.Faint.Render(glyph)
	}
	return h.Theme.Normal.Render(glyph)
}
