package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode"

	"github.com/quizforge/quizforge/internal/quiz"
)

func init() {
	Register(Codec{
		Name:   "json",
		Exts:   []string{".json"},
		MIME:   "application/json",
		Parse:  parseJSON,
		Export: exportJSON,
	})
}

// questionRecord is the wire shape of one question, shared by the JSON codec
// and the payload the HTML document embeds. Question and Correct are
// pointers so a missing key is distinguishable from a zero value; Correct is
// a zero-based index as-is, never ResolveAnswer input. Range errors surface
// later, when the questions are appended to a Quiz.
type questionRecord struct {
	Question    *string  `json:"question"`
	Options     []string `json:"options"`
	Correct     *int     `json:"correct"`
	Explanation string   `json:"explanation,omitempty"`
	Image       string   `json:"image,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
}

type quizDocument struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Questions   []questionRecord `json:"questions"`
}

func questionRecords(qs []quiz.Question) []questionRecord {
	out := make([]questionRecord, 0, len(qs))
	for _, q := range qs {
		out = append(out, questionRecord{
			Question:    &q.Text,
			Options:     q.Options,
			Correct:     &q.Correct,
			Explanation: q.Explanation,
			Image:       q.Image,
			Difficulty:  string(q.Difficulty),
		})
	}
	return out
}

// parseJSON accepts either a document ({title, description, questions}) or a
// bare array of records. Records missing any of question/options/correct are
// dropped and tallied. A non-empty document title/description rides along on
// the fragment so the caller can adopt it.
func parseJSON(r io.Reader) (Fragment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Fragment{}, fmt.Errorf("read json: %w", err)
	}

	f := Fragment{Format: "json"}
	var records []questionRecord
	if trimmed := bytes.TrimLeftFunc(data, unicode.IsSpace); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(data, &records); err != nil {
			return Fragment{}, fmt.Errorf("parse json: %w", err)
		}
	} else {
		var doc quizDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return Fragment{}, fmt.Errorf("parse json: %w", err)
		}
		f.Title = doc.Title
		f.Description = doc.Description
		records = doc.Questions
	}

	for _, rec := range records {
		if rec.Question == nil || rec.Options == nil || rec.Correct == nil {
			f.Skipped++
			continue
		}
		f.Questions = append(f.Questions, quiz.Question{
			Text:        *rec.Question,
			Options:     rec.Options,
			Correct:     *rec.Correct,
			Explanation: rec.Explanation,
			Image:       rec.Image,
			Difficulty:  quiz.Difficulty(rec.Difficulty),
		})
	}
	return f, nil
}

// exportJSON writes the two-space-indented document form, the exact mirror
// of what parseJSON accepts.
func exportJSON(w io.Writer, qz *quiz.Quiz, _ Presentation) error {
	doc := quizDocument{
		Title:       qz.Title,
		Description: qz.Description,
		Questions:   questionRecords(qz.Questions),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}
