package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/academy/internal/app"
	"github.com/abhisek/academy/internal/session"
)

// runApp opens the store, starts a session for the selected learner, and
// launches the TUI.
func (c *cli) runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	e, err := c.engine()
	if err != nil {
		return err
	}
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

	sess, err := session.Start(ctx, session.Deps{
		Engine: e,
		Source: session.RepoSource{Repo: repo},
		Logger: c.log,
	}, l.ID)
	if err != nil {
		return err
	}
	defer sess.Close()

	return app.Run(ctx, app.Options{Session: sess, Logger: c.log})
}
