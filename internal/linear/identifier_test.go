package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifier_Canonical(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"ENG-123", "eng-123", "Eng-123"} {
		got, err := ParseIdentifier(input, "")
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, "ENG-123", got)
	}
}

func TestParseIdentifier_LongTeamKey(t *testing.T) {
	t.Parallel()
	got, err := ParseIdentifier("platform-9", "")
	require.NoError(t, err)
	assert.Equal(t, "PLATFORM-9", got)
}

func TestParseIdentifier_BareNumberWithDefaultTeam(t *testing.T) {
	t.Parallel()
	got, err := ParseIdentifier("123", "eng")
	require.NoError(t, err)
	assert.Equal(t, "ENG-123", got)
}

func TestParseIdentifier_BareNumberWithoutDefaultTeam(t *testing.T) {
	t.Parallel()
	_, err := ParseIdentifier("123", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default team")
}

func TestParseIdentifier_URL(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"with slug", "https://linear.app/acme/issue/ENG-42/fix-the-thing", "ENG-42"},
		{"without slug", "https://linear.app/acme/issue/ENG-42", "ENG-42"},
		{"lowercase code", "https://linear.app/acme/issue/eng-42/slug", "ENG-42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIdentifier(tt.input, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIdentifier_Unparseable(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"", "not an id", "https://example.com/foo", "ENG_123"} {
		_, err := ParseIdentifier(input, "ENG")
		assert.Error(t, err, "input %q", input)
	}
}

func TestPriorityToNumber(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		want int
	}{
		{"none", 0},
		{"urgent", 1},
		{"URGENT", 1},
		{"Urgent", 1},
		{"high", 2},
		{"medium", 3},
		{"normal", 3},
		{"low", 4},
		{"critical", 3}, // unrecognized names fall back to medium
		{"", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PriorityToNumber(tt.name), "priority %q", tt.name)
	}
}
