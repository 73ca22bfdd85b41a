package plan_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/expdesign/balance"
	"github.com/katalvlaran/expdesign/plan"
)

func sampleSchedule() *plan.Schedule {
	return &plan.Schedule{
		ID:               "7c1f6f7e-0000-4000-8000-000000000000",
		Name:             "demo",
		Shuffle:          balance.ShuffleSet,
		TrialsPerSession: 2,
		SessionCount:     2,
		Sessions:         [][]string{{"a1", "b1"}, {"b2", "a2"}},
		Conditions:       [][]string{{"A", "B"}, {"B", "A"}},
		Warnings:         []string{"session: uneven"},
	}
}

// TestEncodeYAML checks the document shape and the textual shuffle policy.
func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, plan.EncodeYAML(&buf, sampleSchedule()))
	assert.Contains(t, buf.String(), "shuffle: set")

	var back map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, "demo", back["name"])
	assert.Equal(t, 2, back["trials_per_session"])
	assert.Len(t, back["sessions"], 2)
}

// TestEncodeJSON checks the field names consumers rely on.
func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, plan.EncodeJSON(&buf, sampleSchedule()))

	var back map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, "set", back["shuffle"])
	assert.Equal(t, float64(2), back["session_count"])
	assert.Contains(t, back, "conditions")
	assert.NotContains(t, back, "seed")
}

// TestEncodeTable renders nested cells and trailing warnings.
func TestEncodeTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, plan.Encode(&buf, sampleSchedule(), plan.FormatTable))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "demo ("))
	assert.Contains(t, out, "A/a1")
	assert.Contains(t, out, "B/b2")
	assert.Contains(t, out, "warning: session: uneven")
}

// TestEncodeSummary sorts codes inside each session.
func TestEncodeSummary(t *testing.T) {
	s := sampleSchedule()
	s.Sessions = [][]string{{"b", "a", "b"}}
	var buf bytes.Buffer
	require.NoError(t, plan.EncodeSummary(&buf, s))
	assert.Equal(t, "session 1: a=1 b=2\n", buf.String())
}

// TestParseFormat accepts the three names and rejects the rest.
func TestParseFormat(t *testing.T) {
	for _, name := range []string{"yaml", "JSON", " table "} {
		_, err := plan.ParseFormat(name)
		assert.NoError(t, err, name)
	}
	_, err := plan.ParseFormat("csv")
	assert.Error(t, err)
	assert.Error(t, plan.Encode(&bytes.Buffer{}, sampleSchedule(), plan.Format("csv")))
}
