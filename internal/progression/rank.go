package progression

import "math"

// Progress describes how far a learner is between their rank and the next one.
type Progress struct {
	Current    int `json:"current"`
	Required   int `json:"required"`
	Percentage int `json:"percentage"`
}

// RankFromXP returns the highest rank whose MinXP does not exceed totalXP.
// Negative XP is treated as 0.
func (e *Engine) RankFromXP(totalXP int) Rank {
	r, _ := e.l.ranks.Lookup(totalXP)
	return r
}

// NextRank returns the rank after r, or false if r is the top rank.
func (e *Engine) NextRank(r Rank) (Rank, bool) {
	return e.l.ranks.Next(r.Level)
}

// MaxRank returns the top rank.
func (e *Engine) MaxRank() Rank {
	return e.l.ranks.Last()
}

// ProgressToNextRank reports XP earned within the current rank against the
// span to the next one. At the top rank it reports {0, 0, 100}.
func (e *Engine) ProgressToNextRank(totalXP int) Progress {
	totalXP = clampMin(totalXP)
	r, i := e.l.ranks.Lookup(totalXP)
	next, ok := e.l.ranks.Next(i)
	if !ok {
		return Progress{Percentage: 100}
	}

	p := Progress{
		Current:  totalXP - r.MinXP,
		Required: next.MinXP - r.MinXP,
	}
	p.Percentage = percent(p.Current, p.Required)
	return p
}

// percent returns round(100*current/required) clamped to [0,100].
// A zero span counts as complete; 100 is reserved for current >= required.
func percent(current, required int) int {
	if required <= 0 {
		return 100
	}
	pct := int(math.Round(100 * float64(current) / float64(required)))
	switch {
	case pct < 0:
		return 0
	case pct >= 100 && current < required:
		return 99
	case pct > 100:
		return 100
	}
	return pct
}
