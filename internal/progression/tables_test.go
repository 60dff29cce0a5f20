package progression

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/academy/internal/ladder"
)

func TestDefaultTables_Valid(t *testing.T) {
	require.NoError(t, DefaultTables().Validate())
}

func TestDefaultTables_BeltThresholds(t *testing.T) {
	var got []int
	for _, b := range DefaultTables().Belts {
		got = append(got, b.SessionsRequired)
	}
	assert.Equal(t, []int{0, 3, 7, 15, 25, 40, 60, 100}, got)
}

func TestTablesValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tables)
		is     error
	}{
		{
			name:   "rank level mismatch",
			mutate: func(tb *Tables) { tb.Ranks[2].Level = 5 },
		},
		{
			name:   "ranks not ascending",
			mutate: func(tb *Tables) { tb.Ranks[3].MinXP = tb.Ranks[2].MinXP },
		},
		{
			name:   "ranks missing floor",
			mutate: func(tb *Tables) { tb.Ranks[0].MinXP = 10 },
			is:     ladder.ErrNoFloor,
		},
		{
			name:   "no ranks",
			mutate: func(tb *Tables) { tb.Ranks = nil },
			is:     ladder.ErrEmpty,
		},
		{
			name:   "flames missing floor",
			mutate: func(tb *Tables) { tb.Flames[0].Threshold = 1; tb.Flames[1].Threshold = 2 },
			is:     ladder.ErrNoFloor,
		},
		{
			name:   "belt level mismatch",
			mutate: func(tb *Tables) { tb.Belts[1].Level = 0 },
		},
		{
			name:   "milestones descending",
			mutate: func(tb *Tables) { tb.Milestones[1].Days = 2 },
		},
		{
			name:   "milestone zero days",
			mutate: func(tb *Tables) { tb.Milestones[0].Days = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := DefaultTables()
			tt.mutate(&tb)
			err := tb.Validate()
			require.Error(t, err)
			if tt.is != nil {
				assert.True(t, errors.Is(err, tt.is), "want %v, got %v", tt.is, err)
			}

			_, err = New(tb)
			assert.Error(t, err, "New must reject what Validate rejects")
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	tb := DefaultTables()
	tb.Belts = nil
	assert.Panics(t, func() { MustNew(tb) })
}

func TestEngineTables_RoundTrip(t *testing.T) {
	e := Default()
	assert.Equal(t, DefaultTables(), e.Tables())

	// Mutating the copy must not leak into the engine.
	got := e.Tables()
	got.Ranks[0].Title = "changed"
	assert.Equal(t, "Recruit", e.RankFromXP(0).Title)
}
