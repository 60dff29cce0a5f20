package ladder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tier struct {
	name string
	min  int
}

func tierKey(t tier) int { return t.min }

func testTiers() []tier {
	return []tier{{"bronze", 0}, {"silver", 10}, {"gold", 50}, {"platinum", 200}}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		entries []tier
		wantErr error
	}{
		{"empty", nil, ErrEmpty},
		{"no floor", []tier{{"a", 5}, {"b", 10}}, ErrNoFloor},
		{"valid single", []tier{{"a", 0}}, nil},
		{"valid", testTiers(), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries, tierKey)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNew_NotAscending(t *testing.T) {
	tests := []struct {
		name    string
		entries []tier
		index   int
	}{
		{"duplicate", []tier{{"a", 0}, {"b", 10}, {"c", 10}}, 2},
		{"descending", []tier{{"a", 0}, {"b", 10}, {"c", 5}}, 2},
		{"duplicate floor", []tier{{"a", 0}, {"b", 0}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries, tierKey)
			var oe *OrderError
			require.True(t, errors.As(err, &oe), "want *OrderError, got %v", err)
			assert.Equal(t, tt.index, oe.Index)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	entries := testTiers()
	tbl, err := New(entries, tierKey)
	require.NoError(t, err)

	entries[0].name = "mutated"
	got, _ := tbl.Lookup(0)
	assert.Equal(t, "bronze", got.name)
}

func TestLookup(t *testing.T) {
	tbl, err := New(testTiers(), tierKey)
	require.NoError(t, err)

	tests := []struct {
		v         int
		wantName  string
		wantIndex int
	}{
		{-5, "bronze", 0},
		{0, "bronze", 0},
		{9, "bronze", 0},
		{10, "silver", 1},
		{49, "silver", 1},
		{50, "gold", 2},
		{199, "gold", 2},
		{200, "platinum", 3},
		{1 << 40, "platinum", 3},
	}

	for _, tt := range tests {
		got, idx := tbl.Lookup(tt.v)
		if got.name != tt.wantName || idx != tt.wantIndex {
			t.Errorf("Lookup(%d) = (%q, %d), want (%q, %d)", tt.v, got.name, idx, tt.wantName, tt.wantIndex)
		}
	}
}

func TestLookup_ThresholdBelongsToItsEntry(t *testing.T) {
	tbl, err := New(testTiers(), tierKey)
	require.NoError(t, err)

	for i := 0; i < tbl.Len(); i++ {
		_, idx := tbl.Lookup(tbl.Key(i))
		if idx != i {
			t.Errorf("Lookup(key %d) index = %d, want %d", tbl.Key(i), idx, i)
		}
	}
}

func TestNext(t *testing.T) {
	tbl, err := New(testTiers(), tierKey)
	require.NoError(t, err)

	next, ok := tbl.Next(0)
	require.True(t, ok)
	assert.Equal(t, "silver", next.name)

	_, ok = tbl.Next(tbl.Len() - 1)
	assert.False(t, ok)

	first, ok := tbl.Next(-1)
	require.True(t, ok)
	assert.Equal(t, "bronze", first.name)

	_, ok = tbl.Next(-2)
	assert.False(t, ok)
}

func TestSparse(t *testing.T) {
	tbl, err := NewSparse([]tier{{"week", 7}, {"month", 30}}, tierKey)
	require.NoError(t, err)

	_, idx, ok := tbl.Find(6)
	assert.False(t, ok)
	assert.Equal(t, -1, idx)

	got, idx, ok := tbl.Find(7)
	require.True(t, ok)
	assert.Equal(t, "week", got.name)
	assert.Equal(t, 0, idx)

	next, ok := tbl.Next(-1)
	require.True(t, ok)
	assert.Equal(t, "week", next.name)
}

func TestSparse_Empty(t *testing.T) {
	tbl, err := NewSparse([]tier(nil), tierKey)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())

	_, _, ok := tbl.Find(100)
	assert.False(t, ok)
	_, ok = tbl.Next(-1)
	assert.False(t, ok)
}

func TestSparse_StillRequiresAscending(t *testing.T) {
	_, err := NewSparse([]tier{{"a", 7}, {"b", 7}}, tierKey)
	var oe *OrderError
	assert.ErrorAs(t, err, &oe)
}

func TestEntriesIsCopy(t *testing.T) {
	tbl, err := New(testTiers(), tierKey)
	require.NoError(t, err)

	es := tbl.Entries()
	es[1].name = "changed"
	assert.Equal(t, "silver", tbl.At(1).name)
	assert.Equal(t, "platinum", tbl.Last().name)
}
