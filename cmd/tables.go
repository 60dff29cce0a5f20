package cmd

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/academy/internal/progression"
	"github.com/abhisek/academy/internal/tablefile"
	"github.com/abhisek/academy/internal/ui/components"
)

func newTablesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Inspect and validate progression tables",
	}
	cmd.AddCommand(newTablesShowCmd(c), newTablesValidateCmd())
	return cmd
}

func newTablesShowCmd(c *cli) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the active tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.engine()
			if err != nil {
				return err
			}
			t := e.Tables()

			if asYAML {
				b, err := tablefile.Marshal(t)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			printTables(cmd, t)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print as a tables file")
	return cmd
}

func newTablesValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a tables file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := tablefile.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d ranks, %d flame levels, %d belts, %d milestones)\n",
				args[0], len(t.Ranks), len(t.Flames), len(t.Belts), len(t.Milestones))
			return nil
		},
	}
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func printTables(cmd *cobra.Command, t progression.Tables) {
	out := cmd.OutOrStdout()

	ranks := newTable("LEVEL", "RANK", "BADGE", "MIN XP")
	for _, r := range t.Ranks {
		ranks.Row(strconv.Itoa(r.Level), r.Title, r.Badge, components.FormatCount(r.MinXP))
	}

	flames := newTable("LEVEL", "STREAK DAYS", "COLOR")
	for _, f := range t.Flames {
		flames.Row(strconv.Itoa(f.Level), strconv.Itoa(f.Threshold), f.Color)
	}

	belts := newTable("LEVEL", "BELT", "SESSIONS")
	for _, b := range t.Belts {
		belts.Row(strconv.Itoa(b.Level), b.Name, strconv.Itoa(b.SessionsRequired))
	}

	milestones := newTable("DAYS", "BADGE", "LABEL")
	for _, m := range t.Milestones {
		milestones.Row(strconv.Itoa(m.Days), m.Badge, m.Label)
	}

	fmt.Fprintf(out, "Ranks\n%s\n\nFlames\n%s\n\nBelts\n%s\n\nMilestones\n%s\n",
		ranks.String(), flames.String(), belts.String(), milestones.String())
}
