package cmd

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/academy/internal/ui/components"
)

func newLearnerCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "learner",
		Short: "Manage learner records",
	}
	cmd.AddCommand(
		newLearnerAddCmd(c),
		newLearnerListCmd(c),
		newLearnerSetCmd(c),
		newLearnerRemoveCmd(c),
	)
	return cmd
}

func newLearnerAddCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Create a learner with zeroed counters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			l, err := st.LearnerRepo().Create(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			c.log.Info("learner created", zap.String("id", l.ID), zap.String("name", l.Name))
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", l.Name, l.ID)
			return nil
		},
	}
}

func newLearnerListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List learners with their rank and belt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.engine()
			if err != nil {
				return err
			}
			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			learners, err := st.LearnerRepo().List(cmd.Context())
			if err != nil {
				return err
			}
			if len(learners) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No learners yet. Add one with: academy learner add NAME")
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("NAME", "XP", "STREAK", "SCORE", "SESSIONS", "RANK", "BELT")
			for _, l := range learners {
				r := e.Evaluate(l.Snapshot())
				t.Row(
					l.Name,
					components.FormatCount(l.TotalXP),
					strconv.Itoa(l.StreakDays),
					strconv.Itoa(l.ReadinessScore),
					strconv.Itoa(l.SessionsCompleted),
					r.Rank.Title,
					r.Belt.Name,
				)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
}

func newLearnerSetCmd(c *cli) *cobra.Command {
	var counters counterFlags

	cmd := &cobra.Command{
		Use:   "set NAME",
		Short: "Replace a learner's counters",
		Long:  "Sets the given counters and keeps the rest. Values are validated: negative counters and scores above 100 are rejected.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !counters.changed(cmd) {
				return fmt.Errorf("nothing to set: pass at least one of --xp, --streak, --score or --sessions")
			}
			ctx := cmd.Context()

			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			repo := st.LearnerRepo()
			l, err := repo.Resolve(ctx, args[0])
			if err != nil {
				return fmt.Errorf("learner %q: %w", args[0], err)
			}
			snap := counters.apply(cmd, l.Snapshot())
			if err := repo.UpdateCounters(ctx, l.ID, snap); err != nil {
				return err
			}
			c.log.Info("learner counters updated", zap.String("id", l.ID), zap.Any("snapshot", snap))
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", l.Name)
			return nil
		},
	}
	counters.register(cmd)
	return cmd
}

func newLearnerRemoveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "remove NAME",
		Aliases: []string{"rm"},
		Short:   "Delete a learner",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			repo := st.LearnerRepo()
			l, err := repo.Resolve(ctx, args[0])
			if err != nil {
				return fmt.Errorf("learner %q: %w", args[0], err)
			}
			if err := repo.Delete(ctx, l.ID); err != nil {
				return err
			}
			c.log.Info("learner removed", zap.String("id", l.ID))
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", l.Name)
			return nil
		},
	}
}
