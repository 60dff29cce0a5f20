package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/academy/internal/progression"
)

// counterFlags binds the four progression counters to command flags.
type counterFlags struct {
	xp, streak, score, sessions int
}

var counterFlagNames = []string{"xp", "streak", "score", "sessions"}

func (f *counterFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.xp, "xp", 0, "Total XP")
	fs.IntVar(&f.streak, "streak", 0, "Consecutive active days")
	fs.IntVar(&f.score, "score", 0, "Readiness score (0-100)")
	fs.IntVar(&f.sessions, "sessions", 0, "Completed practice sessions")
}

// changed reports whether any counter flag was set.
func (f *counterFlags) changed(cmd *cobra.Command) bool {
	for _, name := range counterFlagNames {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// apply overrides the fields of base whose flags were set.
func (f *counterFlags) apply(cmd *cobra.Command, base progression.Snapshot) progression.Snapshot {
	fs := cmd.Flags()
	if fs.Changed("xp") {
		base.TotalXP = f.xp
	}
	if fs.Changed("streak") {
		base.StreakDays = f.streak
	}
	if fs.Changed("score") {
		base.ReadinessScore = f.score
	}
	if fs.Changed("sessions") {
		base.SessionsCompleted = f.sessions
	}
	return base
}
