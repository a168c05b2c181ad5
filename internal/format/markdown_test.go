package format

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/quizforge/quizforge/internal/quiz"
)

func TestExportMarkdown(t *testing.T) {
	restore := now
	now = func() time.Time { return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC) }
	defer func() { now = restore }()

	qz := quiz.New()
	qz.Title = "Safety Protocols Quiz"
	qz.Description = "Essential workplace safety knowledge"
	for i := 0; i < 10; i++ {
		q := quiz.Question{
			Text:    "Placeholder question",
			Options: []string{"one", "two", "three"},
			Correct: 1,
		}
		if i == 0 {
			q.Text = "What does PPE stand for?"
			q.Options = []string{"Personal Protective Equipment", "Public Protection Edict", "Plant Process Engineering"}
			q.Correct = 0
			q.Explanation = "PPE is Personal Protective Equipment."
			q.Difficulty = quiz.DifficultyEasy
		}
		if i == 1 {
			q.Image = "extinguisher_types.png"
		}
		if err := qz.Add(q); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	pres := DefaultPresentation()
	pres.Author = "Jane Doe"
	pres.Company = "Acme Manufacturing"

	var buf bytes.Buffer
	if err := exportMarkdown(&buf, qz, pres); err != nil {
		t.Fatalf("exportMarkdown: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Safety Protocols Quiz",
		"## Essential workplace safety knowledge",
		"**Author:** Jane Doe",
		"**Organization:** Acme Manufacturing",
		"**Date Generated:** 2025-03-14 09:30:00",
		"## 📌 Image Setup Instructions",
		"| Question 2 | `extinguisher_types.png` |",
		"### Question 1 *(Difficulty: Easy)*",
		"**Q:** What does PPE stand for?",
		"- A) Personal Protective Equipment ✓",
		"**Answer:** A) Personal Protective Equipment",
		"**Explanation:** PPE is Personal Protective Equipment.",
		"### Question 2 🖼️ *[Image: extinguisher_types.png]*",
		"**Passing Score:** 70%",
		"- **9-10 correct (90-100%):** Outstanding! Expert level mastery.",
		"- **8-8 correct (80-89%):** Excellent! Strong understanding.",
		"- **7-7 correct (70-79%):** Good! Meets passing threshold.",
		"- **6-6 correct (60-69%):** Fair. Review missed topics.",
		"- **Below 6 correct (<60%):** Needs improvement. Study and retake.",
		"*Generated with QuizForge*",
		"*© Acme Manufacturing. All rights reserved*",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q\n%s", want, out)
		}
	}
}

func TestExportMarkdownNoImagesNoSetupSection(t *testing.T) {
	qz := quiz.New()
	if err := qz.Add(quiz.Question{Text: "Q", Options: []string{"a", "b"}, Correct: 0}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	var buf bytes.Buffer
	if err := exportMarkdown(&buf, qz, DefaultPresentation()); err != nil {
		t.Fatalf("exportMarkdown: %v", err)
	}
	if strings.Contains(buf.String(), "Image Setup Instructions") {
		t.Fatal("setup section rendered for a quiz without images")
	}
}

func TestExportMarkdownEmptyQuiz(t *testing.T) {
	var buf bytes.Buffer
	err := exportMarkdown(&buf, quiz.New(), DefaultPresentation())
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("err = %v, want ErrNoQuestions", err)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 50); got != "short" {
		t.Fatalf("truncate(short) = %q", got)
	}
	long := strings.Repeat("ab", 40)
	if got := truncate(long, 50); len([]rune(got)) != 50 {
		t.Fatalf("truncate kept %d runes", len([]rune(got)))
	}
	// rune-safe: multibyte input never splits mid-character
	if got := truncate("ééééé", 3); got != "ééé" {
		t.Fatalf("truncate(ééééé, 3) = %q", got)
	}
}
