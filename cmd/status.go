package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/academy/internal/progression"
	"github.com/abhisek/academy/internal/session"
	"github.com/abhisek/academy/internal/ui/components"
)

// adHocLearner names the session for counters given on the command line.
const adHocLearner = "ad-hoc"

func newStatusCmd(c *cli) *cobra.Command {
	var (
		counters counterFlags
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show rank, flame, readiness and belt",
		Long: "Evaluates the selected learner's counters. Passing any of --xp, --streak, " +
			"--score or --sessions evaluates those values instead, without touching the database.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			e, err := c.engine()
			if err != nil {
				return err
			}

			var (
				src  session.SnapshotSource
				id   = adHocLearner
				name = adHocLearner
			)
			if counters.changed(cmd) {
				snap := counters.apply(cmd, progression.Snapshot{})
				if err := snap.Validate(); err != nil {
					c.log.Warn("out-of-range counters clamped", zap.Error(err))
				}
				src = session.StaticSource(snap)
			} else {
				st, err := c.openStore()
				if err != nil {
					return err
				}
				defer st.Close()

				repo := st.LearnerRepo()
				l, err := c.resolveLearner(ctx, repo)
				if err != nil {
					return err
				}
				src = session.RepoSource{Repo: repo}
				id, name = l.ID, l.Name
			}

			sess, err := session.Start(ctx, session.Deps{Engine: e, Source: src, Logger: c.log}, id)
			if err != nil {
				return err
			}
			defer sess.Close()

			r, err := sess.Report(ctx)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(r)
			}
			printReport(cmd.OutOrStdout(), name, r)
			return nil
		},
	}

	counters.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}

func printReport(w io.Writer, name string, r progression.Report) {
	row := func(label, format string, a ...any) {
		if label != "" {
			label += ":"
		}
		fmt.Fprintf(w, "%-11s %s\n", label, fmt.Sprintf(format, a...))
	}
	s := r.Snapshot

	row("Learner", "%s", name)

	row("Rank", "%s %s (level %d), %s", r.Rank.Badge, r.Rank.Title, r.Rank.Level, components.FormatXP(s.TotalXP))
	if r.NextRank != nil {
		row("", "%s / %s to %s (%d%%)",
			components.FormatCount(r.Progress.Current), components.FormatXP(r.Progress.Required),
			r.NextRank.Title, r.Progress.Percentage)
	} else {
		row("", "top rank reached")
	}

	row("Flame", "level %d, %d %s", r.Flame.Level, s.StreakDays, components.Plural(s.StreakDays, "day", "days"))

	var ms []string
	if r.Milestone != nil {
		ms = append(ms, fmt.Sprintf("%s %s", r.Milestone.Badge, r.Milestone.Label))
	} else {
		ms = append(ms, "none yet")
	}
	if r.NextMilestone != nil {
		left := r.NextMilestone.Days - s.StreakDays
		ms = append(ms, fmt.Sprintf("next %s %s in %d %s",
			r.NextMilestone.Badge, r.NextMilestone.Label, left, components.Plural(left, "day", "days")))
	}
	row("Milestone", "%s", strings.Join(ms, ", "))

	readiness := fmt.Sprintf("%s (%d/%d)", r.Readiness.DisplayName(), s.ReadinessScore, progression.MaxReadinessScore)
	if r.CertificationReady {
		readiness += ", certification ready"
	}
	row("Readiness", "%s", readiness)
	row("", "%s", r.Theme.Message)

	belt := fmt.Sprintf("%s, %d %s", r.Belt.Name, s.SessionsCompleted, components.Plural(s.SessionsCompleted, "session", "sessions"))
	if r.NextBelt != nil {
		belt += fmt.Sprintf(" (%d more to %s)", r.SessionsToNextBelt, r.NextBelt.Name)
	}
	row("Belt", "%s", belt)
}
