package format

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/quizforge/quizforge/internal/quiz"
)

func init() {
	Register(Codec{
		Name:  "text",
		Exts:  []string{".txt", ".text"},
		MIME:  "text/plain; charset=utf-8",
		Parse: parseText,
	})
}

var textOptionLine = regexp.MustCompile(`^[A-D]:`)

// parseText reads the writing-friendly block format: questions separated by
// "---", with Q:, A:..D:, Correct: and Explanation: line prefixes. Lines
// without a known prefix are ignored so authors can annotate freely. A block
// needs a question, at least one option and a resolvable Correct: value;
// otherwise it is dropped and tallied.
func parseText(r io.Reader) (Fragment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Fragment{}, fmt.Errorf("read text: %w", err)
	}

	f := Fragment{Format: "text"}
	for _, block := range strings.Split(string(data), "---") {
		if strings.TrimSpace(block) == "" {
			continue
		}
		var question, correct, explanation string
		var options []string
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(line, "Q:"):
				question = strings.TrimSpace(line[len("Q:"):])
			case textOptionLine.MatchString(line):
				options = append(options, strings.TrimSpace(line[2:]))
			case strings.HasPrefix(line, "Correct:"):
				correct = strings.TrimSpace(line[len("Correct:"):])
			case strings.HasPrefix(line, "Explanation:"):
				explanation = strings.TrimSpace(line[len("Explanation:"):])
			}
		}
		idx, ok := ResolveAnswer(correct, len(options))
		if question == "" || len(options) == 0 || !ok {
			f.Skipped++
			continue
		}
		f.Questions = append(f.Questions, quiz.Question{
			Text:        question,
			Options:     options,
			Correct:     idx,
			Explanation: explanation,
		})
	}
	return f, nil
}
