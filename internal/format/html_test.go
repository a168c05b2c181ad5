package format_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/quizforge/quizforge/internal/format"
	"github.com/quizforge/quizforge/internal/quiz"
)

func htmlFixture(t *testing.T) *quiz.Quiz {
	t.Helper()
	qz := quiz.New()
	qz.Title = "CNC Manufacturing Fundamentals"
	qz.Description = "Test your knowledge of CNC machining basics"
	for _, q := range []quiz.Question{
		{
			Text:        "What does CNC stand for?",
			Options:     []string{"Computer Numerical Control", "Central Network Computer", "Computerized Machine Control", "Central Numeric Calculator"},
			Correct:     0,
			Explanation: "CNC stands for Computer Numerical Control.",
			Difficulty:  quiz.DifficultyEasy,
		},
		{
			Text:       "Which tool holder is shown?",
			Options:    []string{"CAT40", "BT30", "HSK63"},
			Correct:    2,
			Image:      "tool_holder.png",
			Difficulty: quiz.DifficultyHard,
		},
	} {
		if err := qz.Add(q); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	return qz
}

func TestExportHTML(t *testing.T) {
	pres := format.DefaultPresentation()
	pres.Author = "Jane Doe"
	pres.Company = "Acme Manufacturing"
	pres.TimerMinutes = 30
	pres.EnableCertificate = true

	var buf bytes.Buffer
	if err := mustCodec(t, "html").Encode(&buf, htmlFixture(t), pres); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<title>CNC Manufacturing Fundamentals</title>",
		`<meta name="author" content="Jane Doe">`,
		`<meta name="generator" content="QuizForge">`,
		"const QUIZ_CONFIG",
		`quizTitle: "CNC Manufacturing Fundamentals"`,
		`author: "Jane Doe"`,
		`copyright: "© Acme Manufacturing. All rights reserved"`,
		"timerMinutes:",
		"let quizQuestions =",
		`"question":"What does CNC stand for?"`,
		`"correct":2`,
		"const IMAGE_PATHS",
		`"tool_holder.png": "tool_holder.png"`,
		"Created by: Jane Doe",
		"Organization: Acme Manufacturing",
		"function certificateDocument(name, score, certId)",
		"Certificate of Achievement",
		"© Acme Manufacturing. All rights reserved | Generated with QuizForge",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q", want)
		}
	}
}

// Rendering is a pure function of quiz and presentation; the document only
// samples the clock in the browser.
func TestExportHTMLDeterministic(t *testing.T) {
	c := mustCodec(t, "html")
	qz := htmlFixture(t)
	pres := format.DefaultPresentation()

	var a, b bytes.Buffer
	if err := c.Encode(&a, qz, pres); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := c.Encode(&b, qz, pres); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatal("same inputs rendered different documents")
	}
}

func TestExportHTMLWithoutImagesOmitsPathTable(t *testing.T) {
	qz := quiz.New()
	if err := qz.Add(quiz.Question{Text: "Q", Options: []string{"a", "b"}, Correct: 0}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	var buf bytes.Buffer
	if err := mustCodec(t, "html").Encode(&buf, qz, format.DefaultPresentation()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if strings.Contains(buf.String(), "IMAGE_PATHS") {
		t.Fatal("IMAGE_PATHS rendered for a quiz without images")
	}
}

// Question text must never be able to terminate the embedding script element.
func TestExportHTMLEscapesScriptBreakout(t *testing.T) {
	qz := quiz.New()
	if err := qz.Add(quiz.Question{
		Text:    "Contains </script> in the middle",
		Options: []string{"a", "b"},
		Correct: 0,
	}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	var buf bytes.Buffer
	if err := mustCodec(t, "html").Encode(&buf, qz, format.DefaultPresentation()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if strings.Contains(buf.String(), "</script> in the middle") {
		t.Fatal("question text reached the payload unescaped")
	}
	if !strings.Contains(buf.String(), `\u003c/script\u003e in the middle`) {
		t.Fatal("escaped question text missing from payload")
	}
}

func TestExportHTMLEmptyQuiz(t *testing.T) {
	var buf bytes.Buffer
	err := mustCodec(t, "html").Encode(&buf, quiz.New(), format.DefaultPresentation())
	if !errors.Is(err, format.ErrNoQuestions) {
		t.Fatalf("err = %v, want ErrNoQuestions", err)
	}
}
