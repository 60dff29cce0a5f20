package dojo

import "github.com/abhisek/academy/internal/progression"

// XP rewards shown next to academy activities. Granting is done upstream.
const (
	XPLessonComplete    = 10
	XPReadingComplete   = 15
	XPQuizPassed        = 25
	XPLabComplete       = 50
	XPProjectComplete   = 100
	XPInterviewPractice = 100
)

// Mode is an interview practice mode unlocked by belt level.
type Mode struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	RequiredBelt int    `json:"required_belt"`
	XP           int    `json:"xp"`
}

// DefaultModes returns the training modes in unlock order.
func DefaultModes() []Mode {
	return []Mode{
		{
			ID:           "shadow",
			Name:         "Shadow Practice",
			Description:  "Follow along with a senior developer interview",
			Icon:         "👤",
			RequiredBelt: 0,
			XP:           XPInterviewPractice,
		},
		{
			ID:           "technical",
			Name:         "Technical Kata",
			Description:  "Answer rapid-fire technical questions",
			Icon:         "⚡",
			RequiredBelt: 1,
			XP:           XPInterviewPractice + 50,
		},
		{
			ID:           "behavioral",
			Name:         "Behavioral Sparring",
			Description:  "Practice STAR method responses",
			Icon:         "🎯",
			RequiredBelt: 2,
			XP:           XPInterviewPractice + 75,
		},
		{
			ID:           "live",
			Name:         "Live Kumite",
			Description:  "AI-powered mock interview simulation",
			Icon:         "⚔️",
			RequiredBelt: 3,
			XP:           XPInterviewPractice + 100,
		},
	}
}

// Unlocked reports whether belt b meets the mode's requirement.
func Unlocked(m Mode, b progression.BeltRank) bool {
	return b.Level >= m.RequiredBelt
}

// ModeStatus is a mode as seen by one learner.
type ModeStatus struct {
	Mode     Mode   `json:"mode"`
	Locked   bool   `json:"locked"`
	Requires string `json:"requires,omitempty"` // belt name when locked
}

// Board resolves every mode against the belt earned by sessionsCompleted.
func Board(e *progression.Engine, modes []Mode, sessionsCompleted int) []ModeStatus {
	belt := e.BeltFromSessions(sessionsCompleted)
	out := make([]ModeStatus, 0, len(modes))
	for _, m := range modes {
		st := ModeStatus{Mode: m, Locked: !Unlocked(m, belt)}
		if st.Locked {
			if req, ok := e.BeltAt(m.RequiredBelt); ok {
				st.Requires = req.Name
			}
		}
		out = append(out, st)
	}
	return out
}

// Find returns the mode with the given ID.
func Find(modes []Mode, id string) (Mode, bool) {
	for _, m := range modes {
		if m.ID == id {
			return m, true
		}
	}
	return Mode{}, false
}
