package format

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/quizforge/quizforge/internal/quiz"
)

func init() {
	Register(Codec{
		Name:   "csv",
		Exts:   []string{".csv"},
		MIME:   "text/csv; charset=utf-8",
		Parse:  parseCSV,
		Export: exportCSV,
	})
}

var csvExportHeader = []string{"question", "option_a", "option_b", "option_c", "option_d", "correct_answer", "explanation"}

// parseCSV reads the spreadsheet form. Two header dialects are accepted per
// column: the machine one (question, option_a..option_d, correct_answer) and
// the capitalized one (Question, Option A..Option D). The answer column also
// answers to "correct" and "answer". Rows missing a question, all options,
// or a resolvable answer are dropped and tallied; a malformed file fails the
// whole parse.
func parseCSV(r io.Reader) (Fragment, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return Fragment{Format: "csv"}, nil
	}
	if err != nil {
		return Fragment{}, fmt.Errorf("read csv header: %w", err)
	}
	col := map[string]int{}
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, dup := col[h]; !dup {
			col[h] = i
		}
	}
	pick := func(row []string, names ...string) string {
		for _, n := range names {
			if i, ok := col[n]; ok && i < len(row) && row[i] != "" {
				return row[i]
			}
		}
		return ""
	}

	f := Fragment{Format: "csv"}
	optionCols := [][2]string{
		{"option_a", "Option A"},
		{"option_b", "Option B"},
		{"option_c", "Option C"},
		{"option_d", "Option D"},
	}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Fragment{}, fmt.Errorf("read csv: %w", err)
		}

		question := pick(row, "question", "Question")
		var options []string
		for _, names := range optionCols {
			if v := pick(row, names[0], names[1]); strings.TrimSpace(v) != "" {
				options = append(options, v)
			}
		}
		correct, ok := ResolveAnswer(pick(row, "correct_answer", "correct", "answer"), len(options))
		if question == "" || len(options) == 0 || !ok {
			f.Skipped++
			continue
		}
		f.Questions = append(f.Questions, quiz.Question{
			Text:        question,
			Options:     options,
			Correct:     correct,
			Explanation: pick(row, "explanation", "Explanation"),
		})
	}
	return f, nil
}

// exportCSV writes the machine dialect, one row per question. Options are
// padded to the four lettered columns; a fifth option and beyond has no
// column and is not written.
func exportCSV(w io.Writer, qz *quiz.Quiz, _ Presentation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvExportHeader); err != nil {
		return err
	}
	for _, q := range qz.Questions {
		row := make([]string, len(csvExportHeader))
		row[0] = q.Text
		for i := 0; i < 4 && i < len(q.Options); i++ {
			row[1+i] = q.Options[i]
		}
		row[5] = string(rune('A' + q.Correct))
		row[6] = q.Explanation
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
