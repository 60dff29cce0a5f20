package progression

import (
	"fmt"

	"github.com/abhisek/academy/internal/ladder"
)

// Rank is one tier of the XP ladder.
type Rank struct {
	Level int    `json:"level" yaml:"level"`
	Title string `json:"title" yaml:"title"`
	Badge string `json:"badge" yaml:"badge"`
	MinXP int    `json:"min_xp" yaml:"min_xp"`
	Color string `json:"color" yaml:"color"`
}

// FlameLevel is one intensity tier of the streak flame.
type FlameLevel struct {
	Level     int    `json:"level" yaml:"level"`
	Color     string `json:"color" yaml:"color"`
	Threshold int    `json:"threshold" yaml:"threshold"`
}

// Milestone is a badge earned by reaching a streak length.
type Milestone struct {
	Days  int    `json:"days" yaml:"days"`
	Badge string `json:"badge" yaml:"badge"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// BeltRank is one tier of the interview dojo, keyed by completed sessions.
type BeltRank struct {
	Level            int    `json:"level" yaml:"level"`
	Name             string `json:"name" yaml:"name"`
	SessionsRequired int    `json:"sessions_required" yaml:"sessions_required"`
	Color            string `json:"color" yaml:"color"`
}

// Tables holds the four static configuration tables.
type Tables struct {
	Ranks      []Rank       `json:"ranks" yaml:"ranks"`
	Flames     []FlameLevel `json:"flames" yaml:"flames"`
	Belts      []BeltRank   `json:"belts" yaml:"belts"`
	Milestones []Milestone  `json:"milestones" yaml:"milestones"`
}

// DefaultTables returns the built-in academy tables.
func DefaultTables() Tables {
	return Tables{
		Ranks: []Rank{
			{Level: 0, Title: "Recruit", Badge: "🌱", MinXP: 0, Color: "#94A3B8"},
			{Level: 1, Title: "Apprentice", Badge: "📘", MinXP: 500, Color: "#38BDF8"},
			{Level: 2, Title: "Associate", Badge: "🧭", MinXP: 1500, Color: "#14B8A6"},
			{Level: 3, Title: "Consultant", Badge: "💼", MinXP: 3500, Color: "#22C55E"},
			{Level: 4, Title: "Specialist", Badge: "🎯", MinXP: 7000, Color: "#EAB308"},
			{Level: 5, Title: "Senior", Badge: "⭐", MinXP: 12000, Color: "#F97316"},
			{Level: 6, Title: "Architect", Badge: "🏛️", MinXP: 20000, Color: "#8B5CF6"},
			{Level: 7, Title: "Legend", Badge: "👑", MinXP: 35000, Color: "#FACC15"},
		},
		Flames: []FlameLevel{
			{Level: 0, Color: "#475569", Threshold: 0},
			{Level: 1, Color: "#FDBA74", Threshold: 1},
			{Level: 2, Color: "#FB923C", Threshold: 3},
			{Level: 3, Color: "#F97316", Threshold: 7},
			{Level: 4, Color: "#EA580C", Threshold: 14},
			{Level: 5, Color: "#DC2626", Threshold: 30},
			{Level: 6, Color: "#A855F7", Threshold: 60},
			{Level: 7, Color: "#38BDF8", Threshold: 100},
		},
		Belts: []BeltRank{
			{Level: 0, Name: "White Belt", SessionsRequired: 0, Color: "#F8FAFC"},
			{Level: 1, Name: "Yellow Belt", SessionsRequired: 3, Color: "#FACC15"},
			{Level: 2, Name: "Orange Belt", SessionsRequired: 7, Color: "#F97316"},
			{Level: 3, Name: "Green Belt", SessionsRequired: 15, Color: "#16A34A"},
			{Level: 4, Name: "Blue Belt", SessionsRequired: 25, Color: "#2563EB"},
			{Level: 5, Name: "Purple Belt", SessionsRequired: 40, Color: "#9333EA"},
			{Level: 6, Name: "Brown Belt", SessionsRequired: 60, Color: "#92400E"},
			{Level: 7, Name: "Black Belt", SessionsRequired: 100, Color: "#1E293B"},
		},
		Milestones: []Milestone{
			{Days: 3, Badge: "✨", Label: "Spark"},
			{Days: 7, Badge: "🔥", Label: "One week"},
			{Days: 14, Badge: "⚡", Label: "Two weeks"},
			{Days: 30, Badge: "🏆", Label: "One month"},
			{Days: 60, Badge: "💎", Label: "Two months"},
			{Days: 100, Badge: "👑", Label: "Centurion"},
		},
	}
}

// Validate checks every table: levels must match their position, thresholds
// must be strictly ascending, and the ranked tables need a zero floor.
func (t Tables) Validate() error {
	_, err := t.build()
	return err
}

type ladders struct {
	ranks      *ladder.Table[Rank]
	flames     *ladder.Table[FlameLevel]
	belts      *ladder.Table[BeltRank]
	milestones *ladder.Table[Milestone]
}

func (t Tables) build() (*ladders, error) {
	for i, r := range t.Ranks {
		if r.Level != i {
			return nil, fmt.Errorf("ranks: entry %d has level %d", i, r.Level)
		}
	}
	for i, f := range t.Flames {
		if f.Level != i {
			return nil, fmt.Errorf("flames: entry %d has level %d", i, f.Level)
		}
	}
	for i, b := range t.Belts {
		if b.Level != i {
			return nil, fmt.Errorf("belts: entry %d has level %d", i, b.Level)
		}
	}
	for i, m := range t.Milestones {
		if m.Days <= 0 {
			return nil, fmt.Errorf("milestones: entry %d has non-positive days %d", i, m.Days)
		}
	}

	var (
		l   ladders
		err error
	)
	if l.ranks, err = ladder.New(t.Ranks, func(r Rank) int { return r.MinXP }); err != nil {
		return nil, fmt.Errorf("ranks: %w", err)
	}
	if l.flames, err = ladder.New(t.Flames, func(f FlameLevel) int { return f.Threshold }); err != nil {
		return nil, fmt.Errorf("flames: %w", err)
	}
	if l.belts, err = ladder.New(t.Belts, func(b BeltRank) int { return b.SessionsRequired }); err != nil {
		return nil, fmt.Errorf("belts: %w", err)
	}
	if l.milestones, err = ladder.NewSparse(t.Milestones, func(m Milestone) int { return m.Days }); err != nil {
		return nil, fmt.Errorf("milestones: %w", err)
	}
	return &l, nil
}
