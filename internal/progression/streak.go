package progression

// FlameLevelFromStreak returns the flame tier for a streak length.
// Negative streaks are treated as 0.
func (e *Engine) FlameLevelFromStreak(streakDays int) FlameLevel {
	f, _ := e.l.flames.Lookup(streakDays)
	return f
}

// CurrentMilestone returns the greatest milestone reached by streakDays,
// or false if the streak is below the first milestone.
func (e *Engine) CurrentMilestone(streakDays int) (Milestone, bool) {
	m, _, ok := e.l.milestones.Find(streakDays)
	return m, ok
}

// NextMilestone returns the first milestone not yet reached, or false when
// every milestone is already earned.
func (e *Engine) NextMilestone(streakDays int) (Milestone, bool) {
	_, i, _ := e.l.milestones.Find(streakDays)
	return e.l.milestones.Next(i)
}

// EarnedMilestones returns every milestone reached by streakDays, lowest first.
func (e *Engine) EarnedMilestones(streakDays int) []Milestone {
	_, i, ok := e.l.milestones.Find(streakDays)
	if !ok {
		return nil
	}
	out := make([]Milestone, 0, i+1)
	for j := 0; j <= i; j++ {
		out = append(out, e.l.milestones.At(j))
	}
	return out
}
