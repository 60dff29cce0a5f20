package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/academy/internal/progression"
)

// Color palette. Dark slate base with indigo as the brand color.
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Flame orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Card is the bordered box every dashboard panel sits in.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(0, 2)

// Menu states
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Locked = lipgloss.NewStyle().
		Foreground(Border)
)

// Color converts a "#RRGGBB" token from the progression tables into a
// terminal color. Empty or malformed tokens fall back to TextDim.
func Color(token string) color.Color {
	if !validHex(token) {
		return TextDim
	}
	return lipgloss.Color(token)
}

func validHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// ReadinessStyle returns the banner style for a readiness theme: primary
// text on a bold border in the secondary color.
func ReadinessStyle(t progression.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Color(t.Primary)).
		Bold(true).
		Border(lipgloss.ThickBorder()).
		BorderForeground(Color(t.Secondary)).
		Padding(0, 2)
}

// Gradient renders s split across the two gradient stops: the first half
// in the first color, the rest in the second.
func Gradient(s string, t progression.Theme) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}
	mid := (len(runes) + 1) / 2
	left := lipgloss.NewStyle().Foreground(Color(t.Gradient[0])).Bold(true)
	right := lipgloss.NewStyle().Foreground(Color(t.Gradient[1])).Bold(true)
	return left.Render(string(runes[:mid])) + right.Render(string(runes[mid:]))
}

// PulseStyle is ReadinessStyle with the border lit in the pulse color. The
// dashboard alternates between the two on each tick.
func PulseStyle(t progression.Theme) lipgloss.Style {
	return ReadinessStyle(t).BorderForeground(Color(t.Pulse))
}
