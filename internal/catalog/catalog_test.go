package catalog

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	quizzes := Default()
	if len(quizzes) == 0 {
		t.Fatal("default catalog is empty")
	}

	// The built-in catalog must survive a round trip through the importer.
	data, err := json.Marshal(quizzes)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("default catalog rejected by importer: %v", err)
	}
	if len(parsed) != len(quizzes) {
		t.Errorf("round trip lost quizzes: %d != %d", len(parsed), len(quizzes))
	}
}

func TestFind(t *testing.T) {
	quizzes := Default()

	if got := Find(quizzes, quizzes[0].ID); got == nil || got.ID != quizzes[0].ID {
		t.Errorf("Find(%q) = %v", quizzes[0].ID, got)
	}
	if got := Find(quizzes, "no-such-quiz"); got != nil {
		t.Errorf("Find(no-such-quiz) = %v, want nil", got)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{not json`},
		{"not an array", `{"id": "a"}`},
		{"empty array", `[]`},
		{"missing name", `[{"id": "a", "questions": [
			{"id": 1, "question": "q", "options": ["x", "y"], "correctAnswer": "x"}]}]`},
		{"too few options", `[{"id": "a", "name": "A", "questions": [
			{"id": 1, "question": "q", "options": ["x"], "correctAnswer": "x"}]}]`},
		{"answer not an option", `[{"id": "a", "name": "A", "questions": [
			{"id": 1, "question": "q", "options": ["x", "y"], "correctAnswer": "z"}]}]`},
		{"duplicate quiz id", `[
			{"id": "a", "name": "A", "questions": [
				{"id": 1, "question": "q", "options": ["x", "y"], "correctAnswer": "x"}]},
			{"id": "a", "name": "B", "questions": [
				{"id": 2, "question": "q", "options": ["x", "y"], "correctAnswer": "x"}]}]`},
		{"duplicate question id", `[{"id": "a", "name": "A", "questions": [
			{"id": 1, "question": "q", "options": ["x", "y"], "correctAnswer": "x"},
			{"id": 1, "question": "r", "options": ["x", "y"], "correctAnswer": "y"}]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("err = %v, want ErrInvalidFormat", err)
			}
		})
	}
}

func TestParseAcceptsValid(t *testing.T) {
	data := `[{"id": "a", "name": "A", "questions": [
		{"id": 1, "category": "c", "question": "q", "options": ["x", "y"], "correctAnswer": "x"}]}]`

	quizzes, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(quizzes) != 1 || quizzes[0].Name != "A" {
		t.Errorf("unexpected parse result: %+v", quizzes)
	}
	if quizzes[0].Questions[0].CorrectAnswer != "x" {
		t.Errorf("correct answer = %q, want x", quizzes[0].Questions[0].CorrectAnswer)
	}
}
