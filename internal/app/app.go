package app

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/academy/internal/dojo"
	"github.com/abhisek/academy/internal/router"
	"github.com/abhisek/academy/internal/screen"
	"github.com/abhisek/academy/internal/screens/dashboard"
	"github.com/abhisek/academy/internal/screens/welcome"
	"github.com/abhisek/academy/internal/session"
	"github.com/abhisek/academy/internal/ui/layout"
)

// Options configure the interactive dashboard.
type Options struct {
	Session *session.Context
	Modes   []dojo.Mode // defaults to dojo.DefaultModes()
	Logger  *zap.Logger

	// SkipWelcome opens straight on the dashboard.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	log    *zap.Logger
	stats  *layout.HeaderStats
	width  int
	height int
}

func newAppModel(ctx context.Context, opts Options) AppModel {
	modes := opts.Modes
	if modes == nil {
		modes = dojo.DefaultModes()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	sess := opts.Session
	home := func() screen.Screen {
		return dashboard.New(ctx, sess, sess.Engine(), modes)
	}

	var first screen.Screen
	if opts.SkipWelcome {
		first = home()
	} else {
		first = welcome.New(home)
	}
	return AppModel{
		router: router.New(first),
		log:    log,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case screen.ReportMsg:
		if msg.Err != nil {
			m.log.Warn("report failed", zap.Error(msg.Err))
		} else {
			m.stats = &layout.HeaderStats{
				TotalXP:    msg.Report.Snapshot.TotalXP,
				StreakDays: msg.Report.Snapshot.StreakDays,
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := active.Title()

	// The splash owns the whole screen.
	if title == "" {
		v.SetContent(active.View(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(title, m.stats, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "ctrl+c", Description: "quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "esc", Description: "back"},
			{Key: "ctrl+c", Description: "quit"},
		}
	}
	return []layout.KeyHint{{Key: "ctrl+c", Description: "quit"}}
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	if opts.Session == nil {
		return errors.New("app: nil session")
	}
	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
