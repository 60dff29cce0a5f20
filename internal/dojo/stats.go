package dojo

import (
	"math"

	"github.com/abhisek/academy/internal/progression"
)

const (
	baseConfidence    = 50
	confidencePerStep = 3
	maxConfidence     = 100
)

// ConfidenceScore is the learner's average interview confidence in percent:
// 50 plus 3 per completed session, capped at 100. Negative counts read as 0.
func ConfidenceScore(sessions int) int {
	sessions = max(sessions, 0)
	if sessions >= (maxConfidence-baseConfidence+confidencePerStep-1)/confidencePerStep {
		return maxConfidence
	}
	return baseConfidence + sessions*confidencePerStep
}

// PracticeXP is the XP credited for completed practice sessions. It
// saturates instead of overflowing.
func PracticeXP(sessions int) int {
	sessions = max(sessions, 0)
	if sessions > math.MaxInt/XPInterviewPractice {
		return math.MaxInt
	}
	return sessions * XPInterviewPractice
}

// Stats is the dojo's summary row.
type Stats struct {
	Sessions   int `json:"sessions"`
	StreakDays int `json:"streak_days"`
	Confidence int `json:"confidence"`
	XP         int `json:"xp"`
}

// StatsFor derives the summary row from a snapshot.
func StatsFor(snap progression.Snapshot) Stats {
	snap = snap.Normalize()
	return Stats{
		Sessions:   snap.SessionsCompleted,
		StreakDays: snap.StreakDays,
		Confidence: ConfidenceScore(snap.SessionsCompleted),
		XP:         PracticeXP(snap.SessionsCompleted),
	}
}
