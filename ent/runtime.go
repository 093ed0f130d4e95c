// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/tutord/ent/attemptevent"
	"github.com/abhisek/tutord/ent/breakevent"
	"github.com/abhisek/tutord/ent/learnerdoc"
	"github.com/abhisek/tutord/ent/schema"
	"github.com/abhisek/tutord/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescLearnerID is the schema descriptor for learner_id field.
	attempteventDescLearnerID := attempteventFields[0].Descriptor()
	// attemptevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	attemptevent.LearnerIDValidator = attempteventDescLearnerID.Validators[0].(func(string) error)
	// attempteventDescTopic is the schema descriptor for topic field.
	attempteventDescTopic := attempteventFields[1].Descriptor()
	// attemptevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	attemptevent.TopicValidator = attempteventDescTopic.Validators[0].(func(string) error)
	// attempteventDescQuestionID is the schema descriptor for question_id field.
	attempteventDescQuestionID := attempteventFields[2].Descriptor()
	// attemptevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	attemptevent.QuestionIDValidator = attempteventDescQuestionID.Validators[0].(func(string) error)
	// attempteventDescCategory is the schema descriptor for category field.
	attempteventDescCategory := attempteventFields[4].Descriptor()
	// attemptevent.DefaultCategory holds the default value on creation for the category field.
	attemptevent.DefaultCategory = attempteventDescCategory.Default.(string)
	// attempteventDescBloomLevel is the schema descriptor for bloom_level field.
	attempteventDescBloomLevel := attempteventFields[5].Descriptor()
	// attemptevent.DefaultBloomLevel holds the default value on creation for the bloom_level field.
	attemptevent.DefaultBloomLevel = attempteventDescBloomLevel.Default.(string)
	breakeventMixin := schema.BreakEvent{}.Mixin()
	breakeventMixinFields0 := breakeventMixin[0].Fields()
	_ = breakeventMixinFields0
	breakeventFields := schema.BreakEvent{}.Fields()
	_ = breakeventFields
	// breakeventDescTimestamp is the schema descriptor for timestamp field.
	breakeventDescTimestamp := breakeventMixinFields0[1].Descriptor()
	// breakevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	breakevent.DefaultTimestamp = breakeventDescTimestamp.Default.(func() time.Time)
	// breakeventDescLearnerID is the schema descriptor for learner_id field.
	breakeventDescLearnerID := breakeventFields[0].Descriptor()
	// breakevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	breakevent.LearnerIDValidator = breakeventDescLearnerID.Validators[0].(func(string) error)
	// breakeventDescTopic is the schema descriptor for topic field.
	breakeventDescTopic := breakeventFields[1].Descriptor()
	// breakevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	breakevent.TopicValidator = breakeventDescTopic.Validators[0].(func(string) error)
	// breakeventDescAction is the schema descriptor for action field.
	breakeventDescAction := breakeventFields[2].Descriptor()
	// breakevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	breakevent.ActionValidator = breakeventDescAction.Validators[0].(func(string) error)
	// breakeventDescUrgency is the schema descriptor for urgency field.
	breakeventDescUrgency := breakeventFields[3].Descriptor()
	// breakevent.DefaultUrgency holds the default value on creation for the urgency field.
	breakevent.DefaultUrgency = breakeventDescUrgency.Default.(string)
	// breakeventDescReason is the schema descriptor for reason field.
	breakeventDescReason := breakeventFields[4].Descriptor()
	// breakevent.DefaultReason holds the default value on creation for the reason field.
	breakevent.DefaultReason = breakeventDescReason.Default.(string)
	learnerdocFields := schema.LearnerDoc{}.Fields()
	_ = learnerdocFields
	// learnerdocDescLearnerID is the schema descriptor for learner_id field.
	learnerdocDescLearnerID := learnerdocFields[0].Descriptor()
	// learnerdoc.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	learnerdoc.LearnerIDValidator = learnerdocDescLearnerID.Validators[0].(func(string) error)
	// learnerdocDescUpdatedAt is the schema descriptor for updated_at field.
	learnerdocDescUpdatedAt := learnerdocFields[2].Descriptor()
	// learnerdoc.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learnerdoc.DefaultUpdatedAt = learnerdocDescUpdatedAt.Default.(func() time.Time)
	// learnerdoc.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learnerdoc.UpdateDefaultUpdatedAt = learnerdocDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescLearnerID is the schema descriptor for learner_id field.
	sessioneventDescLearnerID := sessioneventFields[0].Descriptor()
	// sessionevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	sessionevent.LearnerIDValidator = sessioneventDescLearnerID.Validators[0].(func(string) error)
	// sessioneventDescTopic is the schema descriptor for topic field.
	sessioneventDescTopic := sessioneventFields[1].Descriptor()
	// sessionevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	sessionevent.TopicValidator = sessioneventDescTopic.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultSessionID holds the default value on creation for the session_id field.
	sessionevent.DefaultSessionID = sessioneventDescSessionID.Default.(string)
	// sessioneventDescAttempts is the schema descriptor for attempts field.
	sessioneventDescAttempts := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultAttempts holds the default value on creation for the attempts field.
	sessionevent.DefaultAttempts = sessioneventDescAttempts.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescMasteryDelta is the schema descriptor for mastery_delta field.
	sessioneventDescMasteryDelta := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultMasteryDelta holds the default value on creation for the mastery_delta field.
	sessionevent.DefaultMasteryDelta = sessioneventDescMasteryDelta.Default.(float64)
}
