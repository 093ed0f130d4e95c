package mcp_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/abhisek/tutord/internal/learner"
	mcpserver "github.com/abhisek/tutord/internal/mcp"
	"github.com/abhisek/tutord/internal/store"
	"github.com/abhisek/tutord/internal/tutor"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})))
	os.Exit(m.Run())
}

// memProfiles is an in-memory ProfileRepo for tests.
type memProfiles struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func (r *memProfiles) Load(_ context.Context, learnerID string) (*learner.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, ok := r.docs[learnerID]
	if !ok {
		return learner.NewProfile(learnerID), nil
	}
	var p learner.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *memProfiles) Save(_ context.Context, p *learner.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[p.LearnerID] = raw
	return nil
}

func (r *memProfiles) Learners(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for id := range r.docs {
		ids = append(ids, id)
	}
	return ids, nil
}

// memEvents is an in-memory EventRepo for tests.
type memEvents struct {
	mu       sync.Mutex
	attempts []store.AttemptEventData
}

func (r *memEvents) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, data)
	return nil
}

func (r *memEvents) AppendSession(_ context.Context, _ store.SessionEventData) error { return nil }
func (r *memEvents) AppendBreak(_ context.Context, _ store.BreakEventData) error     { return nil }

func (r *memEvents) TopicStats(_ context.Context, learnerID, topic string) (store.TopicStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var stats store.TopicStats
	for _, a := range r.attempts {
		if a.LearnerID == learnerID && a.Topic == topic {
			stats.Attempts++
			if a.Correct {
				stats.Correct++
			}
		}
	}
	if stats.Attempts > 0 {
		stats.Accuracy = float64(stats.Correct) / float64(stats.Attempts)
	}
	return stats, nil
}

func newTestServer(t *testing.T) *mcpserver.Server {
	t.Helper()
	svc := tutor.New(
		&memProfiles{docs: make(map[string][]byte)},
		&memEvents{},
		learner.DefaultTuning(),
	)
	return mcpserver.NewServer(svc, "test")
}

func connectInMemory(t *testing.T, ctx context.Context, srv *mcpserver.Server) *sdkmcp.ClientSession {
	t.Helper()
	t1, t2 := sdkmcp.NewInMemoryTransports()
	serverSession, err := srv.MCPServer.Connect(ctx, t1, nil)
	if err != nil {
		t.Fatalf("server.Connect: %v", err)
	}
	t.Cleanup(func() { serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, t2, nil)
	if err != nil {
		t.Fatalf("client.Connect: %v", err)
	}
	return session
}

func callTool(t *testing.T, ctx context.Context, session *sdkmcp.ClientSession, name string, args map[string]any) map[string]any {
	t.Helper()
	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	if res.IsError {
		for _, c := range res.Content {
			if tc, ok := c.(*sdkmcp.TextContent); ok {
				t.Fatalf("CallTool(%s) returned error: %s", name, tc.Text)
			}
		}
		t.Fatalf("CallTool(%s) returned error", name)
	}
	result := make(map[string]any)
	for _, c := range res.Content {
		if tc, ok := c.(*sdkmcp.TextContent); ok {
			if err := json.Unmarshal([]byte(tc.Text), &result); err != nil {
				t.Fatalf("unmarshal tool result: %v (text: %s)", err, tc.Text)
			}
			return result
		}
	}
	t.Fatalf("no text content in tool result")
	return nil
}

func TestServer_ToolDiscovery(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	session := connectInMemory(t, ctx, srv)
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}

	want := map[string]bool{
		"start_session":         false,
		"record_attempt":        false,
		"get_assessment":        false,
		"check_break":           false,
		"record_break":          false,
		"record_misconception":  false,
		"resolve_misconception": false,
		"store_topic_graph":     false,
		"add_topics":            false,
		"delete_topic":          false,
		"get_learner_profile":   false,
		"update_topic_mastery":  false,
		"end_session":           false,
	}
	for _, tool := range tools.Tools {
		if _, ok := want[tool.Name]; ok {
			want[tool.Name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("tool %q not found in ListTools", name)
		}
	}
}

func TestServer_TutoringLoop(t *testing.T) {
	srv := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	session := connectInMemory(t, ctx, srv)
	defer session.Close()

	start := callTool(t, ctx, session, "start_session", map[string]any{
		"learner_id": "alice",
		"topic":      "Markov Process",
	})
	if start["topic"] != "markov_process" {
		t.Errorf("topic = %v, want markov_process", start["topic"])
	}
	if start["needs_topic_graph"] != true {
		t.Errorf("needs_topic_graph = %v, want true", start["needs_topic_graph"])
	}

	callTool(t, ctx, session, "store_topic_graph", map[string]any{
		"learner_id": "alice",
		"topic":      "markov_process",
		"prerequisites": map[string]any{
			"markov_process": []any{"probability"},
		},
	})

	rec := callTool(t, ctx, session, "record_attempt", map[string]any{
		"learner_id":     "alice",
		"topic":          "markov_process",
		"question_id":    "q1",
		"learner_answer": "0.3",
		"correct_answer": "0.5",
		"is_correct":     false,
		"error_type":     "computational",
	})
	if rec["productive_failure"] != true {
		t.Errorf("productive_failure = %v, want true", rec["productive_failure"])
	}

	assess := callTool(t, ctx, session, "get_assessment", map[string]any{
		"learner_id": "alice",
		"topic":      "markov_process",
	})
	recommendation, ok := assess["recommendation"].(map[string]any)
	if !ok {
		t.Fatalf("recommendation missing from assessment: %v", assess)
	}
	if recommendation["action"] == "" {
		t.Error("recommendation action should be set")
	}

	brk := callTool(t, ctx, session, "record_break", map[string]any{
		"learner_id": "alice",
		"topic":      "markov_process",
	})
	if brk["post_break_warmup"] != true {
		t.Errorf("post_break_warmup = %v, want true", brk["post_break_warmup"])
	}

	end := callTool(t, ctx, session, "end_session", map[string]any{
		"learner_id": "alice",
	})
	if end["status"] != "session_ended" {
		t.Errorf("status = %v, want session_ended", end["status"])
	}
	summary, ok := end["summary"].(map[string]any)
	if !ok {
		t.Fatalf("summary missing: %v", end)
	}
	if summary["attempts"] != float64(1) {
		t.Errorf("summary attempts = %v, want 1", summary["attempts"])
	}
	if summary["breaks_taken"] != float64(1) {
		t.Errorf("summary breaks = %v, want 1", summary["breaks_taken"])
	}
}

func TestServer_MisconceptionTools(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	session := connectInMemory(t, ctx, srv)
	defer session.Close()

	first := callTool(t, ctx, session, "record_misconception", map[string]any{
		"learner_id":  "alice",
		"topic":       "calculus",
		"description": "thinks the derivative of a product is the product of derivatives",
	})
	if first["new"] != true {
		t.Errorf("new = %v, want true on first observation", first["new"])
	}

	again := callTool(t, ctx, session, "record_misconception", map[string]any{
		"learner_id":  "alice",
		"topic":       "calculus",
		"description": "Thinks the derivative of a product is the product of derivatives",
	})
	if again["times_observed"] != float64(2) {
		t.Errorf("times_observed = %v, want 2", again["times_observed"])
	}

	resolved := callTool(t, ctx, session, "resolve_misconception", map[string]any{
		"learner_id":  "alice",
		"topic":       "calculus",
		"description": "thinks the derivative of a product is the product of derivatives",
	})
	if resolved["times_observed"] != float64(2) {
		t.Errorf("resolved times_observed = %v, want 2", resolved["times_observed"])
	}
}

func TestServer_TopicManagement(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	session := connectInMemory(t, ctx, srv)
	defer session.Close()

	added := callTool(t, ctx, session, "add_topics", map[string]any{
		"learner_id": "alice",
		"topics":     []any{"Algebra", "Geometry"},
	})
	if got, ok := added["added"].([]any); !ok || len(got) != 2 {
		t.Errorf("added = %v, want two topics", added["added"])
	}

	deleted := callTool(t, ctx, session, "delete_topic", map[string]any{
		"learner_id": "alice",
		"topic":      "algebra",
	})
	if deleted["deleted"] != true {
		t.Errorf("deleted = %v, want true", deleted["deleted"])
	}
	remaining, ok := deleted["remaining_topics"].([]any)
	if !ok || len(remaining) != 1 || remaining[0] != "geometry" {
		t.Errorf("remaining = %v, want [geometry]", deleted["remaining_topics"])
	}

	mastery := callTool(t, ctx, session, "update_topic_mastery", map[string]any{
		"learner_id":    "alice",
		"topic":         "geometry",
		"mastery_level": 0.7,
	})
	if mastery["mastery_level"] != 0.7 {
		t.Errorf("mastery_level = %v, want 0.7", mastery["mastery_level"])
	}
}
