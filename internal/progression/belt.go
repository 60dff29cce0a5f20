package progression

// BeltFromSessions returns the belt earned by a count of completed sessions.
func (e *Engine) BeltFromSessions(sessionsCompleted int) BeltRank {
	b, _ := e.l.belts.Lookup(sessionsCompleted)
	return b
}

// NextBelt returns the belt after b, or false for the top belt.
func (e *Engine) NextBelt(b BeltRank) (BeltRank, bool) {
	return e.l.belts.Next(b.Level)
}

// BeltAt returns the belt for a level, or false if the level is not in the table.
func (e *Engine) BeltAt(level int) (BeltRank, bool) {
	if level < 0 || level >= e.l.belts.Len() {
		return BeltRank{}, false
	}
	return e.l.belts.At(level), true
}

// SessionsToNextBelt returns the sessions still needed for the next belt,
// or 0 at the top belt.
func (e *Engine) SessionsToNextBelt(sessionsCompleted int) int {
	sessionsCompleted = clampMin(sessionsCompleted)
	_, i := e.l.belts.Lookup(sessionsCompleted)
	next, ok := e.l.belts.Next(i)
	if !ok {
		return 0
	}
	return next.SessionsRequired - sessionsCompleted
}
