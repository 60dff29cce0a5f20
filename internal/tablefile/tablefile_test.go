package tablefile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/academy/internal/progression"
)

const beltsOnly = `
version: v1.2.0
belts:
  - {level: 0, name: Novice, sessions_required: 0}
  - {level: 1, name: Adept, sessions_required: 5}
  - {level: 2, name: Master, sessions_required: 20}
`

func TestParse_PartialDocumentMergesDefaults(t *testing.T) {
	got, err := Parse([]byte(beltsOnly))
	require.NoError(t, err)

	def := progression.DefaultTables()
	assert.Equal(t, def.Ranks, got.Ranks)
	assert.Equal(t, def.Flames, got.Flames)
	assert.Equal(t, def.Milestones, got.Milestones)

	require.Len(t, got.Belts, 3)
	assert.Equal(t, "Adept", got.Belts[1].Name)

	e, err := progression.New(got)
	require.NoError(t, err)
	assert.Equal(t, "Master", e.BeltFromSessions(25).Name)
}

func TestParse_EmptyMilestonesDisablesThem(t *testing.T) {
	got, err := Parse([]byte("version: v1\nmilestones: []\n"))
	require.NoError(t, err)
	assert.Empty(t, got.Milestones)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		is   error
	}{
		{"not yaml", "version: [unclosed", nil},
		{"empty", "", nil},
		{"missing version", "belts: []\n", nil},
		{"unknown field", "version: v1\nbadges: []\n", nil},
		{"negative threshold", "version: v1\nflames:\n  - {level: 0, threshold: -1}\n", nil},
		{"wrong type", "version: v1\nranks:\n  - {level: 0, title: A, min_xp: lots}\n", nil},
		{"bad semver", "version: v1.x\n", nil},
		{"major two", "version: v2.0.0\n", ErrUnsupportedVersion},
		{"no floor", "version: v1\nbelts:\n  - {level: 0, name: A, sessions_required: 4}\n", nil},
		{"not ascending", "version: v1\nmilestones:\n  - {days: 7, badge: a}\n  - {days: 3, badge: b}\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			if tt.is != nil {
				assert.True(t, errors.Is(err, tt.is), "want %v, got %v", tt.is, err)
			}
		})
	}
}

func TestMarshal_ParsesBack(t *testing.T) {
	want := progression.DefaultTables()

	b, err := Marshal(want)
	require.NoError(t, err)
	assert.Contains(t, string(b), "version: "+CurrentVersion)

	got, err := Parse(b)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tables changed through Marshal/Parse (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(beltsOnly), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, got.Belts, 3)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		v       string
		wantErr bool
	}{
		{"v1", false},
		{"v1.0.0", false},
		{"v1.9.3-beta", false},
		{"1.0.0", true},
		{"v0.9.0", true},
		{"v2", true},
		{"", true},
	}
	for _, tt := range tests {
		err := checkVersion(tt.v)
		if (err != nil) != tt.wantErr {
			t.Errorf("checkVersion(%q) err = %v, wantErr %v", tt.v, err, tt.wantErr)
		}
	}
}
