package app

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/academy/internal/progression"
	"github.com/abhisek/academy/internal/router"
	"github.com/abhisek/academy/internal/screen"
	"github.com/abhisek/academy/internal/screens/dashboard"
	"github.com/abhisek/academy/internal/session"
)

func newTestSession(t *testing.T, snap progression.Snapshot) *session.Context {
	t.Helper()
	c, err := session.Start(context.Background(), session.Deps{Source: session.StaticSource(snap)}, "ada")
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestWelcomeHandsOverToDashboard(t *testing.T) {
	sess := newTestSession(t, progression.Snapshot{})
	m := newAppModel(context.Background(), Options{Session: sess})
	assert.Equal(t, "", m.router.Active().Title())

	_, cmd := m.Update(tea.KeyPressMsg{Code: ' '})
	require.NotNil(t, cmd)
	m2, _ := m.Update(cmd())
	app := m2.(AppModel)
	_, ok := app.router.Active().(*dashboard.DashboardScreen)
	assert.True(t, ok)
	assert.Equal(t, 1, app.router.Depth())
}

func TestReportUpdatesHeaderStats(t *testing.T) {
	snap := progression.Snapshot{TotalXP: 2400, StreakDays: 9, ReadinessScore: 72, SessionsCompleted: 16}
	sess := newTestSession(t, snap)
	m := newAppModel(context.Background(), Options{Session: sess, SkipWelcome: true})
	assert.Nil(t, m.stats)

	msg := screen.FetchReport(context.Background(), sess)()
	m2, _ := m.Update(msg)
	app := m2.(AppModel)
	require.NotNil(t, app.stats)
	assert.Equal(t, 2400, app.stats.TotalXP)
	assert.Equal(t, 9, app.stats.StreakDays)

	m3, _ := app.Update(screen.ReportMsg{Err: errors.New("gone")})
	assert.Equal(t, 2400, m3.(AppModel).stats.TotalXP, "failed report keeps the last stats")
}

func TestEscPopsOnlyAboveRoot(t *testing.T) {
	sess := newTestSession(t, progression.Snapshot{})
	m := newAppModel(context.Background(), Options{Session: sess, SkipWelcome: true})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)

	m.router.Push(dashboard.New(context.Background(), sess, sess.Engine(), nil))
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestViewSizes(t *testing.T) {
	sess := newTestSession(t, progression.Snapshot{})
	m := newAppModel(context.Background(), Options{Session: sess, SkipWelcome: true})
	m.View()

	for _, size := range []tea.WindowSizeMsg{{Width: 40, Height: 10}, {Width: 100, Height: 30}} {
		m2, _ := m.Update(size)
		m2.(AppModel).View()
	}
}

func TestRunRequiresSession(t *testing.T) {
	assert.Error(t, Run(context.Background(), Options{}))
}
