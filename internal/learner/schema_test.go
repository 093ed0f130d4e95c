package learner

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument_RoundTrip(t *testing.T) {
	p := NewProfile("alice")
	p.StartSession("math", testNow)
	p.RecordAttempt("math", correctAttempt("q1"), testNow)
	p.ObserveMisconception("math", "sign errors", testNow)
	p.SetTopicGraph("math", map[string][]string{"math": {"arithmetic"}})

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	got, err := ParseDocument(raw)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.LearnerID)
	assert.Equal(t, 1, got.SessionCount)
	require.Contains(t, got.Topics, "math")
	assert.Len(t, got.Topics["math"].Attempts, 1)
	assert.Equal(t, []string{"arithmetic"}, got.TopicGraphs["math"].Prerequisites["math"])
}

func TestParseDocument_RejectsInvalidJSON(t *testing.T) {
	_, err := ParseDocument([]byte("{not json"))
	assert.Error(t, err)
}

func TestParseDocument_RequiresLearnerID(t *testing.T) {
	_, err := ParseDocument([]byte(`{"session_count": 3}`))
	assert.Error(t, err)
}

func TestParseDocument_RejectsOutOfRangeMastery(t *testing.T) {
	doc := `{"learner_id": "alice", "topics": {"math": {"mastery_level": 1.5}}}`
	_, err := ParseDocument([]byte(doc))
	assert.Error(t, err)
}

func TestParseDocument_RejectsFullMastery(t *testing.T) {
	// Mastery is a half-open [0, 1) range; 1.0 is never produced and never
	// accepted.
	doc := `{"learner_id": "alice", "topics": {"math": {"mastery_level": 1.0}}}`
	_, err := ParseDocument([]byte(doc))
	assert.Error(t, err)

	doc = `{"learner_id": "alice", "topics": {"math": {"mastery_level": 0.99}}}`
	_, err = ParseDocument([]byte(doc))
	assert.NoError(t, err)
}

func TestParseDocument_RejectsBadTrajectory(t *testing.T) {
	doc := `{"learner_id": "alice", "topics": {"math": {"trajectory": "sideways"}}}`
	_, err := ParseDocument([]byte(doc))
	assert.Error(t, err)
}

func TestParseDocument_MinimalDocument(t *testing.T) {
	got, err := ParseDocument([]byte(`{"learner_id": "bob"}`))
	require.NoError(t, err)
	assert.Equal(t, "bob", got.LearnerID)
	assert.NotNil(t, got.Topics)
}
