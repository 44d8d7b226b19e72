// Package themes defines the visual styles the dashboard renders with.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Faint         lipgloss.Style
	Selected      lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	Card          lipgloss.Style
	CardTitle     lipgloss.Style
	BadgeUp       lipgloss.Style
	BadgeDown     lipgloss.Style
	BadgeNeutral  lipgloss.Style
	BarPast       lipgloss.Style
	BarToday      lipgloss.Style
	BarFuture     lipgloss.Style
	HiddenRow     lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Error         lipgloss.Color
	Border        lipgloss.Color
	Muted         lipgloss.Color
	Foreground    lipgloss.Color
}

// Default is the default theme.
var Default = buildTheme(palette{
	primary:    "#7c3aed",
	secondary:  "#a78bfa",
	success:    "#10b981",
	warning:    "#f59e0b",
	err:        "#ef4444",
	border:     "#404040",
	muted:      "#737373",
	foreground: "#fafafa",
	background: "#1a1a1a",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = buildTheme(palette{
	primary:    "#cba6f7",
	secondary:  "#f5c2e7",
	success:    "#a6e3a1",
	warning:    "#f9e2af",
	err:        "#f38ba8",
	border:     "#45475a",
	muted:      "#6c7086",
	foreground: "#cdd6f4",
	background: "#1e1e2e",
})

type palette struct {
	primary    string
	secondary  string
	success    string
	warning    string
	err        string
	border     string
	muted      string
	foreground string
	background string
}

func buildTheme(p palette) Theme {
	fg := lipgloss.Color(p.foreground)
	muted := lipgloss.Color(p.muted)
	border := lipgloss.Color(p.border)

	return Theme{
		Primary:    lipgloss.Color(p.primary),
		Secondary:  lipgloss.Color(p.secondary),
		Success:    lipgloss.Color(p.success),
		Warning:    lipgloss.Color(p.warning),
		Error:      lipgloss.Color(p.err),
		Border:     border,
		Muted:      muted,
		Foreground: fg,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Subtitle: lipgloss.NewStyle().
			Foreground(muted),
		Normal: lipgloss.NewStyle().
			Foreground(fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Faint: lipgloss.NewStyle().
			Foreground(muted),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(p.primary)).
			Foreground(lipgloss.Color(p.background)).
			Bold(true),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.primary)).
			Underline(true).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 2),
		CardTitle: lipgloss.NewStyle().
			Foreground(muted).
			Bold(true),
		BadgeUp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.success)).
			Bold(true),
		BadgeDown: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.err)).
			Bold(true),
		BadgeNeutral: lipgloss.NewStyle().
			Foreground(muted),
		BarPast: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.primary)),
		BarToday: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.secondary)).
			Bold(true),
		BarFuture: lipgloss.NewStyle().
			Foreground(border),
		HiddenRow: lipgloss.NewStyle().
			Foreground(muted).
			Strikethrough(true),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.err)).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.warning)).
			Bold(true),
	}
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
