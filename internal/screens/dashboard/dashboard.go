// Package dashboard is the learner's home screen: rank, streak flame,
// readiness banner and belt on one page.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/academy/internal/dojo"
	"github.com/abhisek/academy/internal/progression"
	"github.com/abhisek/academy/internal/router"
	"github.com/abhisek/academy/internal/screen"
	dojoscreen "github.com/abhisek/academy/internal/screens/dojo"
	"github.com/abhisek/academy/internal/ui/components"
	"github.com/abhisek/academy/internal/ui/layout"
	"github.com/abhisek/academy/internal/ui/theme"
)

const pulseInterval = 700 * time.Millisecond

// pulseMsg is one tick of the readiness banner pulse. Ticks from an older
// generation are dropped so re-arming never runs two chains at once.
type pulseMsg struct {
	gen int
}

// Keys are the dashboard bindings.
type Keys struct {
	Refresh key.Binding
	Dojo    key.Binding
	Quit    key.Binding
}

// DefaultKeys binds r, d and q.
var DefaultKeys = Keys{
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Dojo:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dojo")),
	Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

// DashboardScreen renders the latest report. It holds no derived state of
// its own: every refresh asks the reporter for a new report.
type DashboardScreen struct {
	ctx      context.Context
	reporter screen.Reporter
	engine   *progression.Engine
	modes    []dojo.Mode
	keys     Keys

	report *progression.Report
	err    error
	pulse  bool
	gen    int
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a dashboard that pulls reports from r.
func New(ctx context.Context, r screen.Reporter, engine *progression.Engine, modes []dojo.Mode) *DashboardScreen {
	return &DashboardScreen{
		ctx:      ctx,
		reporter: r,
		engine:   engine,
		modes:    modes,
		keys:     DefaultKeys,
	}
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFor(s.keys.Refresh, s.keys.Dojo, s.keys.Quit)
}

func (s *DashboardScreen) Init() tea.Cmd {
	return tea.Batch(screen.FetchReport(s.ctx, s.reporter), pulseTick(s.gen))
}

func pulseTick(gen int) tea.Cmd {
	return tea.Tick(pulseInterval, func(time.Time) tea.Msg {
		return pulseMsg{gen: gen}
	})
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.ReportMsg:
		if msg.Err != nil {
			s.err = msg.Err
			return s, nil
		}
		s.err = nil
		r := msg.Report
		s.report = &r
		return s, nil

	case pulseMsg:
		if msg.gen != s.gen {
			return s, nil
		}
		s.pulse = !s.pulse
		return s, pulseTick(s.gen)

	case screen.ActivatedMsg:
		// Ticks sent while another screen was on top were lost.
		s.gen++
		return s, pulseTick(s.gen)

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, s.keys.Refresh):
			return s, screen.FetchReport(s.ctx, s.reporter)
		case key.Matches(msg, s.keys.Dojo):
			if s.report == nil {
				return s, nil
			}
			next := dojoscreen.New(s.engine, s.modes, *s.report)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		case key.Matches(msg, s.keys.Quit):
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	if s.err != nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s\n\npress r to retry", s.err))
	}
	if s.report == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading progress...")
	}

	cw := min(width-4, 72)
	r := s.report

	sections := []string{
		s.renderReadiness(r, cw),
		renderRank(r, cw),
		s.renderStreak(r, cw),
		renderBelt(r, cw),
	}
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func (s *DashboardScreen) renderReadiness(r *progression.Report, cw int) string {
	style := theme.ReadinessStyle(r.Theme)
	if s.pulse && r.Readiness >= progression.Ascent {
		style = theme.PulseStyle(r.Theme)
	}

	title := theme.Gradient(strings.ToUpper(r.Readiness.DisplayName()), r.Theme)
	score := theme.Subtitle.Render(fmt.Sprintf("readiness %d/%d", r.Snapshot.ReadinessScore, progression.MaxReadinessScore))
	lines := []string{title + "  " + score, theme.Body.Render(r.Theme.Message)}
	if r.CertificationReady {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("✔ Certification Ready"))
	}
	return style.Width(cw).Render(strings.Join(lines, "\n"))
}

func renderRank(r *progression.Report, cw int) string {
	rankStyle := lipgloss.NewStyle().Foreground(theme.Color(r.Rank.Color)).Bold(true)
	head := fmt.Sprintf("%s %s", r.Rank.Badge, rankStyle.Render(r.Rank.Title)) +
		theme.Subtitle.Render(fmt.Sprintf("  level %d · %s", r.Rank.Level, components.FormatXP(r.Snapshot.TotalXP)))

	var detail string
	if r.NextRank == nil {
		detail = theme.Hint.Render("Top rank reached")
	} else {
		bar := components.NewProgressBar("", r.Progress.Percentage, true, cw-6)
		bar.Fill = theme.Color(r.NextRank.Color)
		detail = bar.View() + "\n" + theme.Hint.Render(fmt.Sprintf("%s / %s toward %s",
			components.FormatCount(r.Progress.Current),
			components.FormatXP(r.Progress.Required),
			r.NextRank.Title))
	}
	return theme.Card.Width(cw).Render(head + "\n" + detail)
}

func (s *DashboardScreen) renderStreak(r *progression.Report, cw int) string {
	flameStyle := lipgloss.NewStyle().Foreground(theme.Color(r.Flame.Color)).Bold(true)
	flames := theme.Locked.Render("🔥")
	if r.Flame.Level > 0 {
		flames = strings.Repeat("🔥", r.Flame.Level)
	}
	days := r.Snapshot.StreakDays
	head := flames + "  " + flameStyle.Render(fmt.Sprintf("%d %s", days, components.Plural(days, "day", "days"))) +
		theme.Subtitle.Render(fmt.Sprintf("  flame %d", r.Flame.Level))

	earned := make(map[int]bool, len(r.Earned))
	for _, m := range r.Earned {
		earned[m.Days] = true
	}
	var shelf []string
	for _, m := range s.engine.Tables().Milestones {
		if earned[m.Days] {
			shelf = append(shelf, m.Badge)
		} else {
			shelf = append(shelf, theme.Locked.Render(fmt.Sprintf("%dd", m.Days)))
		}
	}
	lines := []string{head, strings.Join(shelf, "  ")}
	if r.NextMilestone != nil {
		left := r.NextMilestone.Days - days
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("Next: %s %s in %d %s",
			r.NextMilestone.Badge, r.NextMilestone.Label, left, components.Plural(left, "day", "days"))))
	}
	return theme.Card.Width(cw).Render(strings.Join(lines, "\n"))
}

func renderBelt(r *progression.Report, cw int) string {
	beltStyle := lipgloss.NewStyle().Foreground(theme.Color(r.Belt.Color)).Bold(true)
	done := r.Snapshot.SessionsCompleted
	head := "🥋 " + beltStyle.Render(r.Belt.Name) +
		theme.Subtitle.Render(fmt.Sprintf("  %d %s", done, components.Plural(done, "session", "sessions")))

	var detail string
	if r.NextBelt == nil {
		detail = theme.Hint.Render("Highest belt earned")
	} else {
		detail = theme.Hint.Render(fmt.Sprintf("%d more %s to %s",
			r.SessionsToNextBelt, components.Plural(r.SessionsToNextBelt, "session", "sessions"), r.NextBelt.Name))
	}
	return theme.Card.Width(cw).Render(head + "\n" + detail)
}
