package balance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/expdesign/balance"
)

// TestParseShuffleType covers canonical names, case folding and the default.
func TestParseShuffleType(t *testing.T) {
	tests := []struct {
		in   string
		want balance.ShuffleType
	}{
		{"all", balance.ShuffleAll},
		{"", balance.ShuffleAll},
		{"NONE", balance.ShuffleNone},
		{" set ", balance.ShuffleSet},
	}
	for _, tc := range tests {
		got, err := balance.ParseShuffleType(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}

	_, err := balance.ParseShuffleType("block")
	assert.ErrorIs(t, err, balance.ErrInvalidArgument)
}

// TestShuffleType_Text checks the text codec used by plan files.
func TestShuffleType_Text(t *testing.T) {
	var s balance.ShuffleType
	require.NoError(t, s.UnmarshalText([]byte("set")))
	assert.Equal(t, balance.ShuffleSet, s)

	b, err := balance.ShuffleNone.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "none", string(b))

	_, err = balance.ShuffleType(7).MarshalText()
	assert.ErrorIs(t, err, balance.ErrInvalidArgument)
	assert.Equal(t, "ShuffleType(7)", balance.ShuffleType(7).String())
	assert.Equal(t, balance.ShuffleAll, balance.ShuffleType(0), "zero value is the default policy")
}

// TestCounts tallies flat and per-session sequences.
func TestCounts(t *testing.T) {
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, balance.Counts([]string{"A", "B", "A"}))
	assert.Empty(t, balance.Counts[string](nil))

	got := balance.SessionCounts([][]int{{1, 1}, {2}})
	assert.Equal(t, []map[int]int{{1: 2}, {2: 1}}, got)
}
