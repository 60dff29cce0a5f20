package progression

import (
	"errors"
	"fmt"
)

// MaxReadinessScore is the upper bound of the readiness scale.
const MaxReadinessScore = 100

// ErrInvalidInput is returned by Snapshot.Validate for out-of-range counters.
var ErrInvalidInput = errors.New("invalid progression input")

// Snapshot is the raw activity state of one learner, supplied by the host on
// every render. The engine never stores or mutates it.
type Snapshot struct {
	TotalXP           int `json:"total_xp"`
	StreakDays        int `json:"streak_days"`
	ReadinessScore    int `json:"readiness_score"`
	SessionsCompleted int `json:"sessions_completed"`
}

// Normalize clamps every counter into its documented domain: counters to
// >= 0 and the readiness score to [0, MaxReadinessScore].
func (s Snapshot) Normalize() Snapshot {
	return Snapshot{
		TotalXP:           clampMin(s.TotalXP),
		StreakDays:        clampMin(s.StreakDays),
		ReadinessScore:    clampScore(s.ReadinessScore),
		SessionsCompleted: clampMin(s.SessionsCompleted),
	}
}

// Validate reports the first out-of-range counter wrapped in ErrInvalidInput.
// Engine queries never call it; they clamp instead.
func (s Snapshot) Validate() error {
	switch {
	case s.TotalXP < 0:
		return fmt.Errorf("%w: total XP %d is negative", ErrInvalidInput, s.TotalXP)
	case s.StreakDays < 0:
		return fmt.Errorf("%w: streak days %d is negative", ErrInvalidInput, s.StreakDays)
	case s.ReadinessScore < 0 || s.ReadinessScore > MaxReadinessScore:
		return fmt.Errorf("%w: readiness score %d outside [0,%d]", ErrInvalidInput, s.ReadinessScore, MaxReadinessScore)
	case s.SessionsCompleted < 0:
		return fmt.Errorf("%w: sessions completed %d is negative", ErrInvalidInput, s.SessionsCompleted)
	}
	return nil
}

func clampMin(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxReadinessScore {
		return MaxReadinessScore
	}
	return v
}
