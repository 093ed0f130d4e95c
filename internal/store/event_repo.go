package store

import (
	"context"
	"fmt"

	"github.com/abhisek/tutord/ent"
	"github.com/abhisek/tutord/ent/attemptevent"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetTopic(data.Topic).
		SetQuestionID(data.QuestionID).
		SetCorrect(data.Correct).
		SetCategory(data.Category).
		SetBloomLevel(data.BloomLevel).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetTopic(data.Topic).
		SetAction(data.Action).
		SetSessionID(data.SessionID).
		SetSessionNumber(data.SessionNumber).
		SetAttempts(data.Attempts).
		SetCorrectAnswers(data.CorrectAnswers).
		SetMasteryDelta(data.MasteryDelta).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendBreak(ctx context.Context, data BreakEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.BreakEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetTopic(data.Topic).
		SetAction(data.Action).
		SetUrgency(data.Urgency).
		SetReason(data.Reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save break event: %w", err)
	}
	return nil
}

func (r *eventRepo) TopicStats(ctx context.Context, learnerID, topic string) (TopicStats, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.LearnerID(learnerID),
			attemptevent.Topic(topic),
		).
		All(ctx)
	if err != nil {
		return TopicStats{}, fmt.Errorf("query topic stats: %w", err)
	}

	stats := TopicStats{Attempts: len(events)}
	for _, e := range events {
		if e.Correct {
			stats.Correct++
		}
	}
	if stats.Attempts > 0 {
		stats.Accuracy = float64(stats.Correct) / float64(stats.Attempts)
	}
	return stats, nil
}
