package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/academy/internal/progression"
)

// ErrNotFound is returned when a learner does not exist.
var ErrNotFound = errors.New("learner not found")

// ErrDuplicateName is returned when creating a learner whose name is taken.
var ErrDuplicateName = errors.New("learner name already exists")

// Learner is the host-side record the progression counters are read from.
// The counters are owned upstream and replaced wholesale on sync.
type Learner struct {
	ID                string
	Name              string
	TotalXP           int
	StreakDays        int
	ReadinessScore    int
	SessionsCompleted int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Snapshot returns the learner's counters as an engine input.
func (l Learner) Snapshot() progression.Snapshot {
	return progression.Snapshot{
		TotalXP:           l.TotalXP,
		StreakDays:        l.StreakDays,
		ReadinessScore:    l.ReadinessScore,
		SessionsCompleted: l.SessionsCompleted,
	}
}

// LearnerRepo manages learner records.
type LearnerRepo interface {
	// Create inserts a learner with zeroed counters and returns it.
	Create(ctx context.Context, name string) (*Learner, error)

	// Get returns the learner with the given ID.
	Get(ctx context.Context, id string) (*Learner, error)

	// GetByName returns the learner with the given name.
	GetByName(ctx context.Context, name string) (*Learner, error)

	// Resolve accepts either an ID or a name.
	Resolve(ctx context.Context, ref string) (*Learner, error)

	// List returns all learners ordered by name.
	List(ctx context.Context) ([]Learner, error)

	// UpdateCounters replaces the four progression counters.
	UpdateCounters(ctx context.Context, id string, snap progression.Snapshot) error

	// Delete removes a learner.
	Delete(ctx context.Context, id string) error
}
