package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/academy/internal/dojo"
	"github.com/abhisek/academy/internal/progression"
	"github.com/abhisek/academy/internal/ui/components"
)

func newDojoCmd(c *cli) *cobra.Command {
	var sessions int

	cmd := &cobra.Command{
		Use:   "dojo",
		Short: "Show training modes unlocked by belt",
		Long:  "Lists training modes for the selected learner, or for --sessions completed sessions.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.engine()
			if err != nil {
				return err
			}

			snap := progression.Snapshot{SessionsCompleted: sessions}
			if cmd.Flags().Changed("sessions") {
				if err := snap.Validate(); err != nil {
					return fmt.Errorf("--sessions: %w", err)
				}
			} else {
				st, err := c.openStore()
				if err != nil {
					return err
				}
				defer st.Close()

				l, err := c.resolveLearner(cmd.Context(), st.LearnerRepo())
				if err != nil {
					return err
				}
				snap = l.Snapshot()
			}

			out := cmd.OutOrStdout()
			stats := dojo.StatsFor(snap)
			belt := e.BeltFromSessions(stats.Sessions)
			fmt.Fprintf(out, "%s, %s %s\n", belt.Name,
				components.FormatCount(stats.Sessions), components.Plural(stats.Sessions, "session", "sessions"))
			fmt.Fprintf(out, "Streak %d %s · Confidence %d%% · %s earned\n\n",
				stats.StreakDays, components.Plural(stats.StreakDays, "day", "days"),
				stats.Confidence, components.FormatXP(stats.XP))
			for _, st := range dojo.Board(e, dojo.DefaultModes(), stats.Sessions) {
				if st.Locked {
					fmt.Fprintf(out, "  🔒 %s %-20s requires %s\n", st.Mode.Icon, st.Mode.Name, st.Requires)
					continue
				}
				fmt.Fprintf(out, "  ✓  %s %-20s +%s\n", st.Mode.Icon, st.Mode.Name, components.FormatXP(st.Mode.XP))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&sessions, "sessions", 0, "Completed practice sessions")
	return cmd
}
