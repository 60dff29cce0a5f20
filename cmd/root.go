package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/academy/internal/config"
	"github.com/abhisek/academy/internal/progression"
	"github.com/abhisek/academy/internal/store"
	"github.com/abhisek/academy/internal/tablefile"
)

// errNoLearner is returned when a command needs a learner and none was given.
var errNoLearner = errors.New("no learner selected: pass --learner or set ACADEMY_LEARNER")

// cli carries flag values and the per-run logger shared by every command.
type cli struct {
	cfg config.Config
	log *zap.Logger

	dbPath  string
	tables  string
	learner string
	verbose bool
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	c := &cli{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "academy",
		Short: "Progression dashboard for interview practice",
		Long: "Academy tracks a learner's rank, streak flame, readiness and belt, " +
			"derived from four counters: total XP, streak days, readiness score and sessions completed.",
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runApp(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.dbPath, "db", "", "Path to SQLite database file (overrides ACADEMY_DB env var)")
	pf.StringVar(&c.tables, "tables", "", "YAML file with progression tables (overrides ACADEMY_TABLES env var)")
	pf.StringVarP(&c.learner, "learner", "l", "", "Learner name or ID (overrides ACADEMY_LEARNER env var)")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newStatusCmd(c),
		newLearnerCmd(c),
		newDojoCmd(c),
		newTablesCmd(c),
		newVersionCmd(),
	)
	return root
}

// setup reads the environment and builds the logger. The dashboard owns the
// terminal, so the root command keeps the nop logger.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	c.cfg = cfg

	if cmd == cmd.Root() {
		return nil
	}

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	if c.verbose {
		lvl = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	c.log = logger.Named(cmd.Name())
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ACADEMY_DB, then the default XDG path.
func (c *cli) resolveDBPath() (string, error) {
	p := c.dbPath
	if p == "" {
		p = c.cfg.DB
	}
	if p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func (c *cli) openStore() (*store.Store, error) {
	path, err := c.resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	c.log.Debug("store opened", zap.String("path", path))
	return st, nil
}

// engine builds the progression engine from --tables, ACADEMY_TABLES, or
// the built-in tables.
func (c *cli) engine() (*progression.Engine, error) {
	path := c.tables
	if path == "" {
		path = c.cfg.Tables
	}
	if path == "" {
		return progression.Default(), nil
	}

	t, err := tablefile.Load(path)
	if err != nil {
		return nil, err
	}
	e, err := progression.New(t)
	if err != nil {
		return nil, fmt.Errorf("build engine from %s: %w", path, err)
	}
	c.log.Debug("tables loaded", zap.String("path", path))
	return e, nil
}

// learnerRef returns --learner, falling back to ACADEMY_LEARNER.
func (c *cli) learnerRef() (string, error) {
	if c.learner != "" {
		return c.learner, nil
	}
	if c.cfg.Learner != "" {
		return c.cfg.Learner, nil
	}
	return "", errNoLearner
}

func (c *cli) resolveLearner(ctx context.Context, repo store.LearnerRepo) (*store.Learner, error) {
	ref, err := c.learnerRef()
	if err != nil {
		return nil, err
	}
	l, err := repo.Resolve(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("learner %q: %w", ref, err)
	}
	return l, nil
}
