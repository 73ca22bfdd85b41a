package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/expdesign/balance"
	"github.com/katalvlaran/expdesign/plan"
)

// TestLoad_Nested reads the nested fixture.
func TestLoad_Nested(t *testing.T) {
	p, err := plan.Load("testdata/stroop.yaml")
	require.NoError(t, err)

	assert.Equal(t, "stroop-pilot", p.Name)
	assert.Equal(t, balance.ShuffleSet, p.Shuffle)
	assert.Equal(t, 8, p.Trials)
	assert.Equal(t, 4, p.Sessions)
	require.NotNil(t, p.Seed)
	assert.EqualValues(t, 42, *p.Seed)
	assert.Nil(t, p.Start)
	assert.True(t, p.IsNested())
	require.Len(t, p.Nested, 2)
	assert.Equal(t, []string{"i1", "i2", "i3", "i4"}, p.Nested[1].Sub)
}

// TestLoad_Flat reads the flat fixture, including an explicit zero start.
func TestLoad_Flat(t *testing.T) {
	p, err := plan.Load("testdata/flat.yaml")
	require.NoError(t, err)

	assert.False(t, p.IsNested())
	assert.Equal(t, balance.ShuffleNone, p.Shuffle)
	require.NotNil(t, p.Start, "start: 0 must be kept as an explicit value")
	assert.Equal(t, 0, *p.Start)
	assert.Equal(t, []string{"A", "B", "C"}, p.Conditions)
}

// TestLoad_MissingFile surfaces the filesystem error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := plan.Load("testdata/nope.yaml")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, plan.ErrInvalidPlan)
}

// TestParse_DefaultShuffle: an absent shuffle key means "all".
func TestParse_DefaultShuffle(t *testing.T) {
	p, err := plan.Parse([]byte("name: x\ntrials: 3\nsessions: 1\nconditions: [A, B, C]\n"))
	require.NoError(t, err)
	assert.Equal(t, balance.ShuffleAll, p.Shuffle)
}

// TestParse_Invalid covers structural rejections.
func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"unknown key", "name: x\ntrials: 3\nsessions: 1\nconditions: [A]\ncolour: red\n"},
		{"unknown shuffle", "name: x\nshuffle: block\ntrials: 3\nsessions: 1\nconditions: [A]\n"},
		{"missing name", "trials: 3\nsessions: 1\nconditions: [A]\n"},
		{"zero trials", "name: x\ntrials: 0\nsessions: 1\nconditions: [A]\n"},
		{"negative sessions", "name: x\ntrials: 3\nsessions: -1\nconditions: [A]\n"},
		{"negative start", "name: x\ntrials: 3\nsessions: 1\nstart: -1\nconditions: [A]\n"},
		{"no conditions", "name: x\ntrials: 3\nsessions: 1\n"},
		{"duplicate condition", "name: x\ntrials: 3\nsessions: 1\nconditions: [A, A]\n"},
		{"blank condition", "name: x\ntrials: 3\nsessions: 1\nconditions: [A, '']\n"},
		{"both forms", "name: x\ntrials: 2\nsessions: 1\nconditions: [A]\nnested:\n  - label: B\n    sub: [b]\n"},
		{"nested without sub", "name: x\ntrials: 2\nsessions: 1\nnested:\n  - label: B\n"},
		{"nested duplicate label", "name: x\ntrials: 2\nsessions: 1\nnested:\n  - label: B\n    sub: [b]\n  - label: B\n    sub: [c]\n"},
		{"nested duplicate sub", "name: x\ntrials: 2\nsessions: 1\nnested:\n  - label: B\n    sub: [b, b]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := plan.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, plan.ErrInvalidPlan)
			assert.Nil(t, p)
		})
	}
}

// TestValidate_ShuffleOutOfRange catches values that bypass the YAML codec.
func TestValidate_ShuffleOutOfRange(t *testing.T) {
	p := &plan.Plan{Name: "x", Shuffle: balance.ShuffleType(5), Trials: 3, Sessions: 1, Conditions: []string{"A"}}
	assert.ErrorIs(t, p.Validate(), plan.ErrInvalidPlan)

	p.Shuffle = balance.ShuffleSet
	assert.NoError(t, p.Validate())
}
