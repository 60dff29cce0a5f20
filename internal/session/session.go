// Package session holds the per-login context that replaces process-wide
// progression state. A Context is created at login, asked for reports while
// the learner is active, and closed at logout.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/academy/internal/progression"
)

// ErrClosed is returned by Report after Close.
var ErrClosed = errors.New("session closed")

// Deps are the collaborators a Context needs. Engine and Logger are optional.
type Deps struct {
	Engine *progression.Engine
	Source SnapshotSource
	Logger *zap.Logger

	// Now overrides the clock in tests.
	Now func() time.Time
}

// Context is the root object for one learner session. It caches nothing:
// every Report reads fresh counters and re-derives every classification.
type Context struct {
	id        string
	learnerID string
	engine    *progression.Engine
	source    SnapshotSource
	log       *zap.Logger
	now       func() time.Time
	startedAt time.Time

	mu     sync.RWMutex
	closed bool
}

// Start opens a session for learnerID. It reads one snapshot so that an
// unknown learner fails here rather than on the first report.
func Start(ctx context.Context, deps Deps, learnerID string) (*Context, error) {
	if deps.Source == nil {
		return nil, errors.New("session: nil snapshot source")
	}
	if deps.Engine == nil {
		deps.Engine = progression.Default()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	if _, err := deps.Source.Snapshot(ctx, learnerID); err != nil {
		return nil, fmt.Errorf("start session for %q: %w", learnerID, err)
	}

	c := &Context{
		id:        uuid.NewString(),
		learnerID: learnerID,
		engine:    deps.Engine,
		source:    deps.Source,
		now:       deps.Now,
		startedAt: deps.Now(),
	}
	c.log = deps.Logger.With(zap.String("session", c.id), zap.String("learner", learnerID))
	c.log.Info("session started")
	return c, nil
}

// ID returns the session's unique identifier.
func (c *Context) ID() string { return c.id }

// LearnerID returns the learner this session belongs to.
func (c *Context) LearnerID() string { return c.learnerID }

// Engine returns the engine used for evaluation.
func (c *Context) Engine() *progression.Engine { return c.engine }

// StartedAt returns when the session was opened.
func (c *Context) StartedAt() time.Time { return c.startedAt }

// Elapsed returns the time since Start.
func (c *Context) Elapsed() time.Duration { return c.now().Sub(c.startedAt) }

// Closed reports whether Close has been called.
func (c *Context) Closed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// Report fetches the learner's current counters and evaluates them.
func (c *Context) Report(ctx context.Context) (progression.Report, error) {
	if c.Closed() {
		return progression.Report{}, ErrClosed
	}
	snap, err := c.source.Snapshot(ctx, c.learnerID)
	if err != nil {
		return progression.Report{}, fmt.Errorf("snapshot: %w", err)
	}
	r := c.engine.Evaluate(snap)
	c.log.Debug("report",
		zap.Int("xp", r.Snapshot.TotalXP),
		zap.String("rank", r.Rank.Title),
		zap.Int("flame", r.Flame.Level),
		zap.Stringer("readiness", r.Readiness),
		zap.String("belt", r.Belt.Name),
	)
	return r, nil
}

// Close ends the session. It is safe to call more than once.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.log.Info("session closed", zap.Duration("elapsed", c.now().Sub(c.startedAt)))
	return nil
}
