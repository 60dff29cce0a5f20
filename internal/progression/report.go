package progression

// Report is every classification derived from one snapshot, composed for
// the presentation layer. Optional next-tier fields are nil at the top.
type Report struct {
	Snapshot Snapshot `json:"snapshot"`

	Rank     Rank     `json:"rank"`
	NextRank *Rank    `json:"next_rank,omitempty"`
	Progress Progress `json:"progress"`

	Flame         FlameLevel  `json:"flame"`
	Milestone     *Milestone  `json:"milestone,omitempty"`
	NextMilestone *Milestone  `json:"next_milestone,omitempty"`
	Earned        []Milestone `json:"earned_milestones,omitempty"`

	Readiness          ReadinessState `json:"readiness"`
	Theme              Theme          `json:"theme"`
	CertificationReady bool           `json:"certification_ready"`

	Belt               BeltRank  `json:"belt"`
	NextBelt           *BeltRank `json:"next_belt,omitempty"`
	SessionsToNextBelt int       `json:"sessions_to_next_belt"`
}

// Evaluate normalizes the snapshot and derives every classification from it.
func (e *Engine) Evaluate(s Snapshot) Report {
	s = s.Normalize()

	r := Report{
		Snapshot: s,
		Rank:     e.RankFromXP(s.TotalXP),
		Progress: e.ProgressToNextRank(s.TotalXP),
		Flame:    e.FlameLevelFromStreak(s.StreakDays),
		Earned:   e.EarnedMilestones(s.StreakDays),

		Readiness:          StateFromScore(s.ReadinessScore),
		CertificationReady: IsCertificationReady(s.ReadinessScore),

		Belt:               e.BeltFromSessions(s.SessionsCompleted),
		SessionsToNextBelt: e.SessionsToNextBelt(s.SessionsCompleted),
	}
	r.Theme = ThemeFor(r.Readiness)

	if next, ok := e.NextRank(r.Rank); ok {
		r.NextRank = &next
	}
	if m, ok := e.CurrentMilestone(s.StreakDays); ok {
		r.Milestone = &m
	}
	if m, ok := e.NextMilestone(s.StreakDays); ok {
		r.NextMilestone = &m
	}
	if next, ok := e.NextBelt(r.Belt); ok {
		r.NextBelt = &next
	}
	return r
}
