package screen

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/academy/internal/progression"
	"github.com/abhisek/academy/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// ActivatedMsg is sent to a screen when it becomes the top of the stack
// again after the screen above it was popped.
type ActivatedMsg struct{}

// ReportMsg carries a freshly evaluated progression report. Err is set when
// the learner's counters could not be read.
type ReportMsg struct {
	Report progression.Report
	Err    error
}

// Reporter produces reports on demand. *session.Context satisfies it.
type Reporter interface {
	Report(ctx context.Context) (progression.Report, error)
}

// FetchReport returns a command that asks r for a report.
func FetchReport(ctx context.Context, r Reporter) tea.Cmd {
	return func() tea.Msg {
		rep, err := r.Report(ctx)
		return ReportMsg{Report: rep, Err: err}
	}
}
