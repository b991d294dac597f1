package submit

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// resultSchema describes the webhook payload. The collection side is a dumb
// endpoint; this guard catches catalog/store drift before it ships bad rows.
const resultSchema = `{
  "type": "object",
  "required": ["answers", "startTime", "currentSection", "currentQuestionIndex", "completed", "userAgent", "quizVersion", "exportTime"],
  "properties": {
    "answers": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["questionId", "answer", "timestamp"],
        "properties": {
          "questionId": {"type": "string", "minLength": 1},
          "answer": {
            "oneOf": [
              {"type": "string"},
              {"type": "array", "items": {"type": "string"}}
            ]
          },
          "timestamp": {"type": "string"}
        }
      }
    },
    "startTime": {"type": "string"},
    "endTime": {"type": "string"},
    "currentSection": {"type": "string"},
    "currentQuestionIndex": {"type": "integer", "minimum": 0},
    "completed": {"type": "boolean"},
    "telegramUser": {
      "type": "object",
      "required": ["id", "first_name"],
      "properties": {
        "id": {"type": "integer"},
        "first_name": {"type": "string"},
        "last_name": {"type": "string"},
        "username": {"type": "string"},
        "language_code": {"type": "string"},
        "user_link": {"type": "string"}
      }
    },
    "userAgent": {"type": "string"},
    "quizVersion": {"type": "string"},
    "exportTime": {"type": "string"}
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func payloadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(resultSchema), &def); err != nil {
			schemaErr = fmt.Errorf("parse result schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://quiz_result.json"
		if err := c.AddResource(url, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(url)
	})
	return compiledSchema, schemaErr
}

// ValidatePayload checks a serialized snapshot against the result schema.
func ValidatePayload(body []byte) error {
	schema, err := payloadSchema()
	if err != nil {
		return err
	}
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
