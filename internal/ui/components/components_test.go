package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatXP(t *testing.T) {
	tests := []struct {
		xp   int
		want string
	}{
		{0, "0 XP"},
		{999, "999 XP"},
		{1500, "1,500 XP"},
		{35000, "35,000 XP"},
		{1234567, "1,234,567 XP"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatXP(tt.xp))
	}
	assert.Equal(t, "12,000", FormatCount(12000))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "day", Plural(1, "day", "days"))
	assert.Equal(t, "days", Plural(0, "day", "days"))
	assert.Equal(t, "days", Plural(2, "day", "days"))
}

func TestFilled(t *testing.T) {
	tests := []struct {
		percent, width, want int
	}{
		{0, 20, 0},
		{50, 20, 10},
		{99, 20, 19},
		{100, 20, 20},
		{150, 20, 20},
		{-5, 20, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Filled(tt.percent, tt.width), "Filled(%d, %d)", tt.percent, tt.width)
	}
}

func TestProgressBarView(t *testing.T) {
	out := NewProgressBar("Rank", 42, true, 40).View()
	assert.Contains(t, out, "Rank")
	assert.Contains(t, out, "42%")

	out = NewProgressBar("", 250, true, 40).View()
	assert.Contains(t, out, "100%")
}

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "locked", Disabled: true},
		{Label: "a"},
		{Label: "locked too", Disabled: true},
		{Label: "b"},
	})
	require.Equal(t, 1, m.Selected)

	m, _ = m.Update(press('j'))
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(press('j'))
	assert.Equal(t, 3, m.Selected, "stays on last enabled item")

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(press('k'))
	assert.Equal(t, 1, m.Selected, "never lands on a disabled item")
}

func TestMenuSelectRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "go", Action: func() tea.Cmd {
		ran = true
		return nil
	}}})

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.True(t, ran)
}

func TestMenuView(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Shadow", Detail: "+100 XP"},
		{Label: "Live", Detail: "needs Green Belt", Disabled: true},
	})
	lines := strings.Split(strings.TrimRight(m.View(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "▸ Shadow")
	assert.Contains(t, lines[0], "+100 XP")
	assert.Contains(t, lines[1], "needs Green Belt")
}
