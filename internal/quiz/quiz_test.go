package quiz_test

import (
	"strings"
	"testing"

	"github.com/quizforge/quizforge/internal/quiz"
)

func validQuestion() quiz.Question {
	return quiz.Question{
		Text:    "What is the capital of France?",
		Options: []string{"London", "Paris", "Berlin", "Madrid"},
		Correct: 1,
	}
}

func TestAddValidates(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*quiz.Question)
		wantOK bool
	}{
		{"valid", func(q *quiz.Question) {}, true},
		{"empty text", func(q *quiz.Question) { q.Text = "   " }, false},
		{"one option", func(q *quiz.Question) { q.Options = q.Options[:1]; q.Correct = 0 }, false},
		{"two options", func(q *quiz.Question) { q.Options = q.Options[:2] }, true},
		{"correct negative", func(q *quiz.Question) { q.Correct = -1 }, false},
		{"correct at len", func(q *quiz.Question) { q.Correct = 4 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			qz := quiz.New()
			q := validQuestion()
			tc.mutate(&q)
			err := qz.Add(q)
			if tc.wantOK && err != nil {
				t.Fatalf("Add: unexpected error: %v", err)
			}
			if !tc.wantOK {
				if err == nil {
					t.Fatalf("Add: expected rejection")
				}
				if qz.Count() != 0 {
					t.Fatalf("rejected question was stored; count=%d", qz.Count())
				}
			}
		})
	}
}

func TestAppendCountsRejections(t *testing.T) {
	qz := quiz.New()
	bad := validQuestion()
	bad.Correct = 9
	added, rejected := qz.Append([]quiz.Question{validQuestion(), bad, validQuestion()})
	if added != 2 || rejected != 1 {
		t.Fatalf("Append = (%d added, %d rejected), want (2, 1)", added, rejected)
	}
	if qz.Count() != 2 {
		t.Fatalf("count = %d, want 2", qz.Count())
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	qz := quiz.New()
	for _, text := range []string{"first", "second", "third"} {
		q := validQuestion()
		q.Text = text
		if err := qz.Add(q); err != nil {
			t.Fatalf("Add(%q): %v", text, err)
		}
	}
	if err := qz.Remove(1); err != nil {
		t.Fatalf("Remove(1): %v", err)
	}
	if qz.Count() != 2 {
		t.Fatalf("count = %d, want 2", qz.Count())
	}
	if qz.Questions[0].Text != "first" || qz.Questions[1].Text != "third" {
		t.Fatalf("remaining order wrong: %q, %q", qz.Questions[0].Text, qz.Questions[1].Text)
	}
	if err := qz.Remove(5); err == nil {
		t.Fatalf("Remove(5): expected out-of-range error")
	}
	qz.Clear()
	if qz.Count() != 0 {
		t.Fatalf("count after Clear = %d, want 0", qz.Count())
	}
}

func TestValidateReportsPosition(t *testing.T) {
	qz := &quiz.Quiz{Questions: []quiz.Question{
		validQuestion(),
		{Text: "broken", Options: []string{"only"}, Correct: 0},
	}}
	err := qz.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "question 2") {
		t.Fatalf("error should name the failing question: %v", err)
	}
}

func TestSampleReturnsIndependentCopy(t *testing.T) {
	names := quiz.SampleNames()
	if len(names) == 0 {
		t.Fatalf("no built-in quizzes")
	}
	for _, name := range names {
		qz, ok := quiz.Sample(name)
		if !ok {
			t.Fatalf("Sample(%q) missing", name)
		}
		if err := qz.Validate(); err != nil {
			t.Fatalf("built-in %q invalid: %v", name, err)
		}
	}

	first, _ := quiz.Sample(names[0])
	first.Questions[0].Text = "mutated"
	first.Questions[0].Options[0] = "mutated"
	again, _ := quiz.Sample(names[0])
	if again.Questions[0].Text == "mutated" || again.Questions[0].Options[0] == "mutated" {
		t.Fatalf("Sample returned shared storage; catalog was mutated")
	}

	if _, ok := quiz.Sample("no such quiz"); ok {
		t.Fatalf("Sample of unknown name should report missing")
	}
}

func TestSampleFragmentLookup(t *testing.T) {
	qz, ok := quiz.Sample("safety")
	if !ok {
		t.Fatalf("fragment lookup failed")
	}
	if qz.Title != "Safety Protocols Quiz" {
		t.Fatalf("Sample(\"safety\") = %q", qz.Title)
	}
	// several titles contain "p": ambiguous fragments stay unresolved
	if _, ok := quiz.Sample("p"); ok {
		t.Fatalf("ambiguous fragment should report missing")
	}
}
