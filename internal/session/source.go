package session

import (
	"context"

	"github.com/abhisek/academy/internal/progression"
	"github.com/abhisek/academy/internal/store"
)

// SnapshotSource supplies a learner's current counters.
type SnapshotSource interface {
	Snapshot(ctx context.Context, learnerID string) (progression.Snapshot, error)
}

// RepoSource reads counters from the learner store.
type RepoSource struct {
	Repo store.LearnerRepo
}

func (s RepoSource) Snapshot(ctx context.Context, learnerID string) (progression.Snapshot, error) {
	l, err := s.Repo.Get(ctx, learnerID)
	if err != nil {
		return progression.Snapshot{}, err
	}
	return l.Snapshot(), nil
}

// StaticSource serves the same snapshot for any learner. Used for ad-hoc
// evaluation from command-line flags.
type StaticSource progression.Snapshot

func (s StaticSource) Snapshot(context.Context, string) (progression.Snapshot, error) {
	return progression.Snapshot(s), nil
}
