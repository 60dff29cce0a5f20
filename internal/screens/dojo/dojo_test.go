package dojo

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	training "github.com/abhisek/academy/internal/dojo"
	"github.com/abhisek/academy/internal/progression"
	"github.com/abhisek/academy/internal/screen"
)

func newScreen(sessions int) *DojoScreen {
	e := progression.Default()
	r := e.Evaluate(progression.Snapshot{SessionsCompleted: sessions})
	return New(e, training.DefaultModes(), r)
}

func TestNewLocksByBelt(t *testing.T) {
	s := newScreen(7) // Orange Belt, level 2

	var locked []string
	for _, st := range s.Board() {
		if st.Locked {
			locked = append(locked, st.Mode.ID)
		}
	}
	assert.Equal(t, []string{"live"}, locked)

	view := s.View(100, 30)
	assert.Contains(t, view, "Orange Belt")
	assert.Contains(t, view, "Green Belt") // requirement shown on the locked mode
}

func TestEnterChoosesMode(t *testing.T) {
	s := newScreen(0)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m, ok := s.Chosen()
	require.True(t, ok)
	assert.Equal(t, "shadow", m.ID)
	assert.Contains(t, s.View(100, 30), "Ready: Shadow Practice")
}

func TestLockedModesAreSkipped(t *testing.T) {
	s := newScreen(0) // only shadow unlocked

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m, ok := s.Chosen()
	require.True(t, ok)
	assert.Equal(t, "shadow", m.ID)
}

func TestReportMsgUnlocksModes(t *testing.T) {
	s := newScreen(0)
	e := progression.Default()

	s.Update(screen.ReportMsg{Report: e.Evaluate(progression.Snapshot{SessionsCompleted: 15})})
	for _, st := range s.Board() {
		assert.False(t, st.Locked, "%s should be unlocked at Green Belt", st.Mode.ID)
	}
	assert.Contains(t, s.View(100, 30), "Green Belt")
}

func TestStatsRow(t *testing.T) {
	e := progression.Default()
	s := New(e, training.DefaultModes(), e.Evaluate(progression.Snapshot{SessionsCompleted: 16, StreakDays: 4}))
	assert.Equal(t, training.Stats{Sessions: 16, StreakDays: 4, Confidence: 98, XP: 1600}, s.Stats())

	view := s.View(120, 30)
	assert.Contains(t, view, "98% confidence")
	assert.Contains(t, view, "1,600 XP earned")

	s.Update(screen.ReportMsg{Report: e.Evaluate(progression.Snapshot{SessionsCompleted: 17})})
	assert.Equal(t, 100, s.Stats().Confidence)
	assert.Contains(t, s.View(120, 30), "100% confidence")
}

func TestKeyHints(t *testing.T) {
	hints := newScreen(0).KeyHints()
	require.NotEmpty(t, hints)
	assert.Equal(t, "esc", hints[len(hints)-1].Key)
}
