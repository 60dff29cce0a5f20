package progression

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateFromScore(t *testing.T) {
	tests := []struct {
		score int
		want  ReadinessState
	}{
		{-20, Ember},
		{0, Ember},
		{39, Ember},
		{40, Neutral},
		{69, Neutral},
		{70, Ascent},
		{89, Ascent},
		{90, Apex},
		{100, Apex},
		{250, Apex},
	}

	for _, tt := range tests {
		if got := StateFromScore(tt.score); got != tt.want {
			t.Errorf("StateFromScore(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestStateFromScore_Monotonic(t *testing.T) {
	prev := StateFromScore(0)
	for s := 1; s <= MaxReadinessScore; s++ {
		got := StateFromScore(s)
		if got < prev {
			t.Fatalf("StateFromScore(%d) = %s, lower than %s", s, got, prev)
		}
		prev = got
	}
}

func TestReadinessState_Order(t *testing.T) {
	states := AllReadinessStates()
	require.Len(t, states, 4)
	for i := 1; i < len(states); i++ {
		assert.True(t, states[i-1] < states[i], "%s should order below %s", states[i-1], states[i])
	}
}

func TestReadinessState_String(t *testing.T) {
	tests := []struct {
		state ReadinessState
		want  string
	}{
		{Ember, "ember"},
		{Neutral, "neutral"},
		{Ascent, "ascent"},
		{Apex, "apex"},
		{ReadinessState(9), "ReadinessState(9)"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseReadinessState(t *testing.T) {
	for _, s := range AllReadinessStates() {
		got, err := ParseReadinessState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseReadinessState("blazing")
	assert.Error(t, err)
}

func TestReadinessState_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		State ReadinessState `json:"state"`
	}{Ascent})
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"ascent"}`, string(b))

	_, err = json.Marshal(ReadinessState(-1))
	assert.Error(t, err)
}

func TestThemeFor(t *testing.T) {
	seen := map[string]ReadinessState{}
	for _, s := range AllReadinessStates() {
		th := ThemeFor(s)
		assert.NotEmpty(t, th.Primary, "state %s", s)
		assert.NotEmpty(t, th.Secondary, "state %s", s)
		assert.NotEmpty(t, th.Pulse, "state %s", s)
		assert.NotEmpty(t, th.Message, "state %s", s)
		assert.Equal(t, th.Primary, th.Gradient[0], "gradient starts at primary for %s", s)

		if other, dup := seen[th.Message]; dup {
			t.Errorf("states %s and %s share message %q", s, other, th.Message)
		}
		seen[th.Message] = s
	}

	assert.Equal(t, ThemeFor(Ember), ThemeFor(ReadinessState(42)))
}

func TestIsCertificationReady(t *testing.T) {
	assert.False(t, IsCertificationReady(79))
	assert.True(t, IsCertificationReady(80))
	assert.True(t, IsCertificationReady(150))
	assert.False(t, IsCertificationReady(-1))
}
