package tui

import "github.com/charmbracelet/lipgloss"

// Styles bundles the lipgloss styles the shell renders with. Replace any
// field before the first View call to retheme.
type Styles struct {
	MonthHeader lipgloss.Style
	WeekdayRow  lipgloss.Style
	Day         lipgloss.Style
	OutDate     lipgloss.Style
	Today       lipgloss.Style
	Footer      lipgloss.Style
}

// DefaultStyles returns the stock theme: bold month headers, dimmed
// out-dates, and an inverted highlight for today.
func DefaultStyles() Styles {
	return Styles{
		MonthHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		WeekdayRow:  lipgloss.NewStyle().Faint(true),
		Day:         lipgloss.NewStyle(),
		OutDate:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("8")),
		Today:       lipgloss.NewStyle().Reverse(true).Bold(true),
		Footer:      lipgloss.NewStyle().Faint(true),
	}
}
