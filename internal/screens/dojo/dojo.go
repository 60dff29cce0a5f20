// Package dojo is the training mode picker. Modes above the learner's belt
// are listed but locked.
package dojo

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	training "github.com/abhisek/academy/internal/dojo"
	"github.com/abhisek/academy/internal/progression"
	"github.com/abhisek/academy/internal/screen"
	"github.com/abhisek/academy/internal/ui/components"
	"github.com/abhisek/academy/internal/ui/layout"
	"github.com/abhisek/academy/internal/ui/theme"
)

// DojoScreen lists training modes for the current belt.
type DojoScreen struct {
	engine *progression.Engine
	modes  []training.Mode
	belt   progression.BeltRank
	stats  training.Stats
	board  []training.ModeStatus
	menu   components.Menu
	chosen *training.Mode
}

var _ screen.Screen = (*DojoScreen)(nil)
var _ screen.KeyHintProvider = (*DojoScreen)(nil)

// New builds the mode board from the report's session count.
func New(engine *progression.Engine, modes []training.Mode, r progression.Report) *DojoScreen {
	s := &DojoScreen{engine: engine, modes: modes}
	s.load(r)
	return s
}

func (s *DojoScreen) load(r progression.Report) {
	s.belt = r.Belt
	s.stats = training.StatsFor(r.Snapshot)
	s.board = training.Board(s.engine, s.modes, r.Snapshot.SessionsCompleted)

	items := make([]components.MenuItem, 0, len(s.board))
	for _, st := range s.board {
		item := components.MenuItem{
			Label:    fmt.Sprintf("%s %s", st.Mode.Icon, st.Mode.Name),
			Disabled: st.Locked,
		}
		if st.Locked {
			item.Detail = "🔒 " + st.Requires
		} else {
			item.Detail = "+" + components.FormatXP(st.Mode.XP)
			mode := st.Mode
			item.Action = func() tea.Cmd {
				s.chosen = &mode
				return nil
			}
		}
		items = append(items, item)
	}

	selected := -1
	if s.chosen != nil {
		for i, st := range s.board {
			if st.Mode.ID == s.chosen.ID && !st.Locked {
				selected = i
			}
		}
	}
	s.menu = components.NewMenu(items)
	if selected >= 0 {
		s.menu.Selected = selected
	}
}

func (s *DojoScreen) Init() tea.Cmd {
	return nil
}

func (s *DojoScreen) Title() string {
	return "Dojo"
}

func (s *DojoScreen) KeyHints() []layout.KeyHint {
	return append(layout.HintsFor(s.menu.Keys.Up, s.menu.Keys.Down, s.menu.Keys.Select),
		layout.KeyHint{Key: "esc", Description: "back"})
}

// Board returns the resolved modes currently shown.
func (s *DojoScreen) Board() []training.ModeStatus {
	return s.board
}

// Stats returns the summary row currently shown.
func (s *DojoScreen) Stats() training.Stats {
	return s.stats
}

// Chosen returns the mode picked with enter, if any.
func (s *DojoScreen) Chosen() (training.Mode, bool) {
	if s.chosen == nil {
		return training.Mode{}, false
	}
	return *s.chosen, true
}

func (s *DojoScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.ReportMsg:
		if msg.Err == nil {
			s.load(msg.Report)
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *DojoScreen) View(width, height int) string {
	cw := min(width-4, 72)

	beltStyle := lipgloss.NewStyle().Foreground(theme.Color(s.belt.Color)).Bold(true)
	head := theme.Title.Render("Training Modes") + "  " + beltStyle.Render(s.belt.Name)

	var b strings.Builder
	b.WriteString(head + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%s %s · %d-day streak · %d%% confidence · %s earned",
		components.FormatCount(s.stats.Sessions), components.Plural(s.stats.Sessions, "session", "sessions"),
		s.stats.StreakDays, s.stats.Confidence, components.FormatXP(s.stats.XP))))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	if sel := s.menu.Selected; sel >= 0 && sel < len(s.board) && !s.board[sel].Locked {
		b.WriteString("\n" + theme.Hint.Render(s.board[sel].Mode.Description))
	}
	if s.chosen != nil {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render(fmt.Sprintf("Ready: %s (+%s)", s.chosen.Name, components.FormatXP(s.chosen.XP))))
	}

	content := theme.Card.Width(cw).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}
