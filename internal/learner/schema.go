package learner

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// profileSchema constrains imported learner documents. It checks shape and
// ranges, not exhaustive field presence: older exports may omit optional
// fields and still load.
const profileSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["learner_id"],
  "properties": {
    "learner_id": {"type": "string", "minLength": 1},
    "session_count": {"type": "integer", "minimum": 0},
    "topics": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "properties": {
          "mastery_level": {"type": "number", "minimum": 0, "exclusiveMaximum": 1},
          "trajectory": {"enum": ["improving", "flat", "declining", "unknown"]},
          "productive_failures": {"type": "integer", "minimum": 0},
          "attempt_history": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["question_id", "is_correct"],
              "properties": {
                "question_id": {"type": "string"},
                "is_correct": {"type": "boolean"},
                "error_category": {"type": "string"},
                "timestamp": {"type": "string"}
              }
            }
          },
          "break_state": {
            "type": "object",
            "properties": {
              "breaks_taken": {"type": "integer", "minimum": 0},
              "break_cooldown_minutes": {"type": "integer", "minimum": 0},
              "consecutive_errors": {"type": "integer", "minimum": 0},
              "error_severity_trend": {
                "type": "array",
                "items": {"type": "integer", "minimum": 0, "maximum": 3}
              }
            }
          }
        }
      }
    },
    "topic_graphs": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "properties": {
          "prerequisites": {
            "type": "object",
            "additionalProperties": {
              "type": "array",
              "items": {"type": "string"}
            }
          }
        }
      }
    },
    "session_history": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["session_number", "topic", "start_time"],
        "properties": {
          "session_number": {"type": "integer", "minimum": 1},
          "topic": {"type": "string"},
          "start_time": {"type": "string"}
        }
      }
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(profileSchema), &parsed); err != nil {
			compileErr = fmt.Errorf("parse profile schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://learner-profile.json", parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://learner-profile.json")
	})
	return compiledSchema, compileErr
}

// ParseDocument validates raw JSON against the profile schema and decodes
// it. Used on import, where the document comes from outside the store.
func ParseDocument(raw []byte) (*Profile, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiled()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("document does not match profile schema: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if p.Topics == nil {
		p.Topics = make(map[string]*TopicState)
	}
	return &p, nil
}
