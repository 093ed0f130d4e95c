// Package mcp exposes the tutoring service as MCP tools over stdio. Each
// tool is a thin adapter around one Service operation; results are relayed
// verbatim.
package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/abhisek/tutord/internal/engine"
	"github.com/abhisek/tutord/internal/learner"
	"github.com/abhisek/tutord/internal/logging"
	"github.com/abhisek/tutord/internal/tutor"
)

// Server wraps the MCP SDK server around the tutoring service.
type Server struct {
	MCPServer *sdkmcp.Server

	svc *tutor.Service
	log *slog.Logger
}

// NewServer creates an MCP server exposing the tutoring tools.
func NewServer(svc *tutor.Service, version string) *Server {
	s := &Server{
		svc: svc,
		log: logging.New("mcp"),
	}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "tutord", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

// Run serves MCP over the given transport until the context is canceled.
func (s *Server) Run(ctx context.Context, transport sdkmcp.Transport) error {
	return s.MCPServer.Run(ctx, transport)
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "start_session",
		Description: "Start or resume a tutoring session on a topic. Returns current mastery, trajectory, and whether a prerequisite graph is still needed.",
	}, s.handleStartSession)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "record_attempt",
		Description: "Record a learner's graded attempt at a question. Recomputes mastery and trajectory and updates break tracking.",
	}, s.handleRecordAttempt)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "get_assessment",
		Description: "Run the decision engine for a topic and return the recommended next action, including break detection.",
	}, s.handleGetAssessment)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "check_break",
		Description: "Check whether the learner should take a break right now.",
	}, s.handleCheckBreak)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "record_break",
		Description: "Record that the learner took a break. The next question will be a gentler warmup.",
	}, s.handleRecordBreak)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "record_misconception",
		Description: "Log a misconception, or increment its observation count if already known.",
	}, s.handleRecordMisconception)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "resolve_misconception",
		Description: "Mark a misconception as resolved after the learner demonstrates understanding.",
	}, s.handleResolveMisconception)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "store_topic_graph",
		Description: "Save a prerequisite graph for a topic. Maps each subtopic to the subtopics it depends on.",
	}, s.handleStoreTopicGraph)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "add_topics",
		Description: "Add topics to the learner's list without starting a session. Reports which ones need a prerequisite graph.",
	}, s.handleAddTopics)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "delete_topic",
		Description: "Delete a topic and all its data, including its prerequisite graph.",
	}, s.handleDeleteTopic)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "get_learner_profile",
		Description: "Return the full learner profile with lifetime per-topic stats.",
	}, s.handleGetProfile)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "update_topic_mastery",
		Description: "Manually override the mastery level for a topic. Clamped to [0, 0.99].",
	}, s.handleUpdateMastery)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "end_session",
		Description: "End the current tutoring session and return its summary.",
	}, s.handleEndSession)
}

// --- Tool input/output types ---

type startSessionInput struct {
	LearnerID string `json:"learner_id" jsonschema:"learner identifier"`
	Topic     string `json:"topic" jsonschema:"topic name, normalized internally"`
}

type recordAttemptInput struct {
	LearnerID     string `json:"learner_id" jsonschema:"learner identifier"`
	Topic         string `json:"topic" jsonschema:"topic name"`
	QuestionID    string `json:"question_id" jsonschema:"stable identifier of the question"`
	LearnerAnswer string `json:"learner_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	ErrorType     string `json:"error_type,omitempty" jsonschema:"computational, structural, or conceptual"`
	ErrorStep     string `json:"error_step,omitempty" jsonschema:"where in the solution the error occurred"`
	BloomLevel    string `json:"bloom_level,omitempty" jsonschema:"remember, understand, apply, analyze, evaluate, or create"`
}

type topicInput struct {
	LearnerID string `json:"learner_id" jsonschema:"learner identifier"`
	Topic     string `json:"topic" jsonschema:"topic name"`
}

type misconceptionInput struct {
	LearnerID   string `json:"learner_id" jsonschema:"learner identifier"`
	Topic       string `json:"topic" jsonschema:"topic name"`
	Description string `json:"description" jsonschema:"description of the misconception"`
}

type storeGraphInput struct {
	LearnerID     string              `json:"learner_id" jsonschema:"learner identifier"`
	Topic         string              `json:"topic" jsonschema:"topic name"`
	Prerequisites map[string][]string `json:"prerequisites" jsonschema:"map of subtopic to its prerequisite subtopics"`
}

type storeGraphOutput struct {
	Stored            bool   `json:"stored"`
	Topic             string `json:"topic"`
	PrerequisiteCount int    `json:"prerequisite_count"`
}

type addTopicsInput struct {
	LearnerID string   `json:"learner_id" jsonschema:"learner identifier"`
	Topics    []string `json:"topics" jsonschema:"topic names to add"`
}

type deleteTopicOutput struct {
	Deleted         bool     `json:"deleted"`
	Topic           string   `json:"topic"`
	RemainingTopics []string `json:"remaining_topics"`
}

type learnerInput struct {
	LearnerID string `json:"learner_id" jsonschema:"learner identifier"`
}

type updateMasteryInput struct {
	LearnerID    string  `json:"learner_id" jsonschema:"learner identifier"`
	Topic        string  `json:"topic" jsonschema:"topic name"`
	MasteryLevel float64 `json:"mastery_level" jsonschema:"new mastery level in [0, 0.99]"`
}

type updateMasteryOutput struct {
	Updated      bool    `json:"updated"`
	Topic        string  `json:"topic"`
	MasteryLevel float64 `json:"mastery_level"`
}

type recordBreakOutput struct {
	Recorded        bool   `json:"recorded"`
	BreaksTaken     int    `json:"breaks_taken"`
	PostBreakWarmup bool   `json:"post_break_warmup"`
	Message         string `json:"message"`
}

type endSessionOutput struct {
	Status  string                 `json:"status"`
	Summary *learner.SessionReport `json:"summary,omitempty"`
}

// --- Handlers ---

func (s *Server) handleStartSession(ctx context.Context, _ *sdkmcp.CallToolRequest, in startSessionInput) (*sdkmcp.CallToolResult, learner.SessionStart, error) {
	out, err := s.svc.StartSession(ctx, in.LearnerID, in.Topic)
	if err != nil {
		return nil, learner.SessionStart{}, err
	}
	return nil, out, nil
}

func (s *Server) handleRecordAttempt(ctx context.Context, _ *sdkmcp.CallToolRequest, in recordAttemptInput) (*sdkmcp.CallToolResult, learner.AttemptOutcome, error) {
	out, err := s.svc.RecordAttempt(ctx, in.LearnerID, in.Topic, tutor.AttemptInput{
		QuestionID:    in.QuestionID,
		LearnerAnswer: in.LearnerAnswer,
		CorrectAnswer: in.CorrectAnswer,
		Correct:       in.IsCorrect,
		ErrorCategory: in.ErrorType,
		ErrorStep:     in.ErrorStep,
		BloomLevel:    in.BloomLevel,
	})
	if err != nil {
		return nil, learner.AttemptOutcome{}, err
	}
	return nil, out, nil
}

func (s *Server) handleGetAssessment(ctx context.Context, _ *sdkmcp.CallToolRequest, in topicInput) (*sdkmcp.CallToolResult, learner.Assessment, error) {
	out, err := s.svc.GetAssessment(ctx, in.LearnerID, in.Topic)
	if err != nil {
		return nil, learner.Assessment{}, err
	}
	return nil, out, nil
}

func (s *Server) handleCheckBreak(ctx context.Context, _ *sdkmcp.CallToolRequest, in topicInput) (*sdkmcp.CallToolResult, engine.BreakCheck, error) {
	out, err := s.svc.CheckBreak(ctx, in.LearnerID, in.Topic)
	if err != nil {
		return nil, engine.BreakCheck{}, err
	}
	return nil, out, nil
}

func (s *Server) handleRecordBreak(ctx context.Context, _ *sdkmcp.CallToolRequest, in topicInput) (*sdkmcp.CallToolResult, recordBreakOutput, error) {
	taken, err := s.svc.RecordBreak(ctx, in.LearnerID, in.Topic)
	if err != nil {
		return nil, recordBreakOutput{}, err
	}
	return nil, recordBreakOutput{
		Recorded:        true,
		BreaksTaken:     taken,
		PostBreakWarmup: true,
		Message:         "Break recorded. When you're ready, the next question will be a warmup to ease back in.",
	}, nil
}

func (s *Server) handleRecordMisconception(ctx context.Context, _ *sdkmcp.CallToolRequest, in misconceptionInput) (*sdkmcp.CallToolResult, learner.MisconceptionRecord, error) {
	out, err := s.svc.RecordMisconception(ctx, in.LearnerID, in.Topic, in.Description)
	if err != nil {
		return nil, learner.MisconceptionRecord{}, err
	}
	return nil, out, nil
}

func (s *Server) handleResolveMisconception(ctx context.Context, _ *sdkmcp.CallToolRequest, in misconceptionInput) (*sdkmcp.CallToolResult, learner.MisconceptionRecord, error) {
	out, err := s.svc.ResolveMisconception(ctx, in.LearnerID, in.Topic, in.Description)
	if err != nil {
		return nil, learner.MisconceptionRecord{}, err
	}
	return nil, out, nil
}

func (s *Server) handleStoreTopicGraph(ctx context.Context, _ *sdkmcp.CallToolRequest, in storeGraphInput) (*sdkmcp.CallToolResult, storeGraphOutput, error) {
	key, err := s.svc.StoreTopicGraph(ctx, in.LearnerID, in.Topic, in.Prerequisites)
	if err != nil {
		return nil, storeGraphOutput{}, err
	}
	return nil, storeGraphOutput{
		Stored:            true,
		Topic:             key,
		PrerequisiteCount: len(in.Prerequisites),
	}, nil
}

func (s *Server) handleAddTopics(ctx context.Context, _ *sdkmcp.CallToolRequest, in addTopicsInput) (*sdkmcp.CallToolResult, learner.TopicAddition, error) {
	out, err := s.svc.AddTopics(ctx, in.LearnerID, in.Topics)
	if err != nil {
		return nil, learner.TopicAddition{}, err
	}
	return nil, out, nil
}

func (s *Server) handleDeleteTopic(ctx context.Context, _ *sdkmcp.CallToolRequest, in topicInput) (*sdkmcp.CallToolResult, deleteTopicOutput, error) {
	remaining, err := s.svc.DeleteTopic(ctx, in.LearnerID, in.Topic)
	if err != nil {
		return nil, deleteTopicOutput{}, err
	}
	return nil, deleteTopicOutput{
		Deleted:         true,
		Topic:           learner.NormalizeTopic(in.Topic),
		RemainingTopics: remaining,
	}, nil
}

func (s *Server) handleGetProfile(ctx context.Context, _ *sdkmcp.CallToolRequest, in learnerInput) (*sdkmcp.CallToolResult, tutor.ProfileView, error) {
	out, err := s.svc.GetProfile(ctx, in.LearnerID)
	if err != nil {
		return nil, tutor.ProfileView{}, err
	}
	return nil, out, nil
}

func (s *Server) handleUpdateMastery(ctx context.Context, _ *sdkmcp.CallToolRequest, in updateMasteryInput) (*sdkmcp.CallToolResult, updateMasteryOutput, error) {
	level, err := s.svc.UpdateTopicMastery(ctx, in.LearnerID, in.Topic, in.MasteryLevel)
	if err != nil {
		return nil, updateMasteryOutput{}, err
	}
	return nil, updateMasteryOutput{
		Updated:      true,
		Topic:        learner.NormalizeTopic(in.Topic),
		MasteryLevel: level,
	}, nil
}

func (s *Server) handleEndSession(ctx context.Context, _ *sdkmcp.CallToolRequest, in learnerInput) (*sdkmcp.CallToolResult, endSessionOutput, error) {
	report, ok, err := s.svc.EndSession(ctx, in.LearnerID)
	if err != nil {
		return nil, endSessionOutput{}, err
	}
	out := endSessionOutput{Status: "session_ended"}
	if ok {
		out.Summary = &report
	}
	return nil, out, nil
}
