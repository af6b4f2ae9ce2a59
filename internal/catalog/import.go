package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidFormat is returned when imported catalog data is malformed.
// A malformed catalog is rejected whole; it is never partially applied.
var ErrInvalidFormat = errors.New("invalid catalog format")

// catalogDefinition is the JSON schema for an imported catalog file.
var catalogDefinition = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":   map[string]any{"type": "string", "minLength": 1},
			"name": map[string]any{"type": "string", "minLength": 1},
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":       map[string]any{"type": "integer"},
						"category": map[string]any{"type": "string"},
						"question": map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{
							"type":     "array",
							"minItems": 2,
							"items":    map[string]any{"type": "string"},
						},
						"correctAnswer": map[string]any{"type": "string", "minLength": 1},
					},
					"required":             []any{"id", "question", "options", "correctAnswer"},
					"additionalProperties": true,
				},
			},
		},
		"required":             []any{"id", "name", "questions"},
		"additionalProperties": true,
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledCatalogSchema compiles the catalog schema once and caches it.
func compiledCatalogSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw bytes.
		defBytes, err := json.Marshal(catalogDefinition)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://catalog.json", defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://catalog.json")
	})
	return compiledSchema, compileErr
}

// Parse validates and decodes a catalog from raw JSON. Any structural or
// semantic problem returns an error wrapping ErrInvalidFormat.
func Parse(data []byte) ([]Quiz, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrInvalidFormat, err)
	}

	schema, err := compiledCatalogSchema()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	var quizzes []Quiz
	if err := json.Unmarshal(data, &quizzes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if err := validate(quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

// Load reads and parses a catalog file.
func Load(path string) ([]Quiz, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// validate applies the semantic checks the schema cannot express:
// unique quiz and question ids, and the correct answer being an option.
func validate(quizzes []Quiz) error {
	quizIDs := make(map[string]bool)
	questionIDs := make(map[int]bool)

	for _, quiz := range quizzes {
		if quizIDs[quiz.ID] {
			return fmt.Errorf("%w: duplicate quiz id %q", ErrInvalidFormat, quiz.ID)
		}
		quizIDs[quiz.ID] = true

		for _, q := range quiz.Questions {
			if questionIDs[q.ID] {
				return fmt.Errorf("%w: duplicate question id %d", ErrInvalidFormat, q.ID)
			}
			questionIDs[q.ID] = true

			member := false
			for _, opt := range q.Options {
				if opt == q.CorrectAnswer {
					member = true
					break
				}
			}
			if !member {
				return fmt.Errorf("%w: question %d: correct answer is not one of the options", ErrInvalidFormat, q.ID)
			}
		}
	}
	return nil
}
