package format_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/quizforge/quizforge/internal/format"
	"github.com/quizforge/quizforge/internal/quiz"
)

func TestParseJSONDocument(t *testing.T) {
	in := `{
  "title": "Safety Protocols Quiz",
  "description": "Essential workplace safety knowledge",
  "questions": [
    {"question": "Where is the nearest exit?", "options": ["Front", "Back"], "correct": 1, "image": "floorplan.png", "difficulty": "Easy"},
    {"question": "Missing correct key", "options": ["a", "b"]},
    {"options": ["a", "b"], "correct": 0},
    {"question": "Missing options", "correct": 0}
  ]
}`
	f, err := mustCodec(t, "json").Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f.Title != "Safety Protocols Quiz" || f.Description != "Essential workplace safety knowledge" {
		t.Fatalf("metadata = %q / %q", f.Title, f.Description)
	}
	if f.Parsed() != 1 || f.Skipped != 3 {
		t.Fatalf("parsed=%d skipped=%d, want 1/3", f.Parsed(), f.Skipped)
	}
	q := f.Questions[0]
	if q.Correct != 1 || q.Image != "floorplan.png" || q.Difficulty != quiz.DifficultyEasy {
		t.Fatalf("question = %+v", q)
	}
}

func TestParseJSONBareArray(t *testing.T) {
	in := `[
  {"question": "Q1", "options": ["x", "y"], "correct": 0},
  {"question": "Q2", "options": ["x", "y", "z"], "correct": 2, "explanation": "because"}
]`
	f, err := mustCodec(t, "json").Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f.Title != "" || f.Description != "" {
		t.Fatalf("bare array should carry no metadata, got %q / %q", f.Title, f.Description)
	}
	if f.Parsed() != 2 || f.Skipped != 0 {
		t.Fatalf("parsed=%d skipped=%d, want 2/0", f.Parsed(), f.Skipped)
	}
	if f.Questions[1].Explanation != "because" {
		t.Fatalf("explanation = %q", f.Questions[1].Explanation)
	}
}

// The correct field is already a zero-based index. The parser keeps it
// verbatim, range and all; Quiz.Add is where an out-of-range value dies.
func TestParseJSONKeepsIndexVerbatim(t *testing.T) {
	in := `[{"question": "Q", "options": ["x", "y"], "correct": 9}]`
	f, err := mustCodec(t, "json").Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f.Parsed() != 1 || f.Questions[0].Correct != 9 {
		t.Fatalf("fragment = %+v", f)
	}

	qz := quiz.New()
	added, rejected := qz.Append(f.Questions)
	if added != 0 || rejected != 1 {
		t.Fatalf("Append added=%d rejected=%d, want 0/1", added, rejected)
	}
}

func TestParseJSONMalformed(t *testing.T) {
	if _, err := mustCodec(t, "json").Decode(strings.NewReader(`{"questions": [`)); err == nil {
		t.Fatal("malformed json parsed without error")
	}
}

func TestExportJSONEmptyQuiz(t *testing.T) {
	c := mustCodec(t, "json")
	var buf bytes.Buffer
	if err := c.Encode(&buf, quiz.New(), format.DefaultPresentation()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), `"questions": []`) {
		t.Fatalf("empty quiz should export an empty array, got:\n%s", buf.String())
	}

	f, err := c.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f.Parsed() != 0 || f.Skipped != 0 {
		t.Fatalf("parsed=%d skipped=%d, want 0/0", f.Parsed(), f.Skipped)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	qz := quiz.New()
	qz.Title = "CNC Manufacturing Fundamentals"
	qz.Description = "Test your knowledge of CNC machining basics"
	if err := qz.Add(quiz.Question{
		Text:        "What does CNC stand for?",
		Options:     []string{"Computer Numerical Control", "Central Network Computer"},
		Correct:     0,
		Explanation: "CNC stands for Computer Numerical Control.",
		Image:       "cnc_machine.png",
		Difficulty:  quiz.DifficultyMedium,
	}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	c := mustCodec(t, "json")
	var buf bytes.Buffer
	if err := c.Encode(&buf, qz, format.DefaultPresentation()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	f, err := c.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f.Title != qz.Title || f.Description != qz.Description {
		t.Fatalf("metadata = %q / %q", f.Title, f.Description)
	}
	if !reflect.DeepEqual(f.Questions, qz.Questions) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", f.Questions, qz.Questions)
	}
}
