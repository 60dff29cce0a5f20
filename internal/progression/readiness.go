package progression

import "fmt"

// ReadinessState is the four-band classification of a readiness score.
// Values are ordered: Ember < Neutral < Ascent < Apex.
type ReadinessState int

const (
	Ember ReadinessState = iota
	Neutral
	Ascent
	Apex
)

// Lower bounds of each band. A score equal to a bound belongs to the higher band.
const (
	NeutralMinScore = 40
	AscentMinScore  = 70
	ApexMinScore    = 90
)

// CertificationReadyScore is the readiness score at which a learner is
// considered ready to sit the certification.
const CertificationReadyScore = 80

// AllReadinessStates returns every state from lowest to highest.
func AllReadinessStates() []ReadinessState {
	return []ReadinessState{Ember, Neutral, Ascent, Apex}
}

func (s ReadinessState) String() string {
	switch s {
	case Ember:
		return "ember"
	case Neutral:
		return "neutral"
	case Ascent:
		return "ascent"
	case Apex:
		return "apex"
	default:
		return fmt.Sprintf("ReadinessState(%d)", int(s))
	}
}

// DisplayName returns a human-readable label for the state.
func (s ReadinessState) DisplayName() string {
	switch s {
	case Ember:
		return "Ember"
	case Neutral:
		return "Neutral"
	case Ascent:
		return "Ascent"
	case Apex:
		return "Apex"
	default:
		return s.String()
	}
}

// MarshalText encodes the state by name.
func (s ReadinessState) MarshalText() ([]byte, error) {
	if s < Ember || s > Apex {
		return nil, fmt.Errorf("unknown readiness state %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name.
func (s *ReadinessState) UnmarshalText(b []byte) error {
	v, err := ParseReadinessState(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseReadinessState maps a state name back to its value.
func ParseReadinessState(name string) (ReadinessState, error) {
	for _, s := range AllReadinessStates() {
		if s.String() == name {
			return s, nil
		}
	}
	return Ember, fmt.Errorf("unknown readiness state %q", name)
}

// StateFromScore classifies a readiness score. Out-of-range scores are
// clamped to [0, MaxReadinessScore] first.
func StateFromScore(score int) ReadinessState {
	score = clampScore(score)
	switch {
	case score >= ApexMinScore:
		return Apex
	case score >= AscentMinScore:
		return Ascent
	case score >= NeutralMinScore:
		return Neutral
	default:
		return Ember
	}
}

// IsCertificationReady reports whether the score clears the certification bar.
func IsCertificationReady(score int) bool {
	return clampScore(score) >= CertificationReadyScore
}

// Theme is the fixed visual bundle attached to a readiness state.
// Colors are hex tokens resolved by the UI.
type Theme struct {
	Primary   string    `json:"primary"`
	Secondary string    `json:"secondary"`
	Gradient  [2]string `json:"gradient"`
	Pulse     string    `json:"pulse"`
	Message   string    `json:"message"`
}

// ThemeFor returns the theme for a state. Unknown values get the Ember theme.
func ThemeFor(s ReadinessState) Theme {
	switch s {
	case Apex:
		return Theme{
			Primary:   "#FACC15",
			Secondary: "#A855F7",
			Gradient:  [2]string{"#FACC15", "#A855F7"},
			Pulse:     "#FDE68A",
			Message:   "Peak form. You are interview ready.",
		}
	case Ascent:
		return Theme{
			Primary:   "#22C55E",
			Secondary: "#14B8A6",
			Gradient:  [2]string{"#22C55E", "#14B8A6"},
			Pulse:     "#86EFAC",
			Message:   "Climbing fast. Keep the momentum.",
		}
	case Neutral:
		return Theme{
			Primary:   "#38BDF8",
			Secondary: "#64748B",
			Gradient:  [2]string{"#38BDF8", "#64748B"},
			Pulse:     "#BAE6FD",
			Message:   "Steady. A few focused sessions will lift you.",
		}
	case Ember:
		return Theme{
			Primary:   "#F97316",
			Secondary: "#B91C1C",
			Gradient:  [2]string{"#F97316", "#B91C1C"},
			Pulse:     "#FDBA74",
			Message:   "Warming up. Start with a short practice.",
		}
	default:
		return ThemeFor(Ember)
	}
}
