package format_test

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseTextBlocks(t *testing.T) {
	in := `Q: What does CNC stand for?
A: Computer Numerical Control
B: Central Network Computer
C: Computerized Machine Control
D: Central Numeric Calculator
Correct: A
Explanation: CNC stands for Computer Numerical Control.

---

Authors can leave notes between fields; unprefixed lines are ignored.
Q: Pick the even number
A: Three
B: Four
Correct: 2

---

Q: No resolvable answer
A: Something
B: Something else
Correct: E
`
	f, err := mustCodec(t, "text").Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f.Parsed() != 2 || f.Skipped != 1 {
		t.Fatalf("parsed=%d skipped=%d, want 2/1", f.Parsed(), f.Skipped)
	}

	q := f.Questions[0]
	if q.Text != "What does CNC stand for?" || q.Correct != 0 {
		t.Fatalf("first question = %+v", q)
	}
	if len(q.Options) != 4 || q.Options[3] != "Central Numeric Calculator" {
		t.Fatalf("first question options = %v", q.Options)
	}
	if q.Explanation != "CNC stands for Computer Numerical Control." {
		t.Fatalf("explanation = %q", q.Explanation)
	}

	q = f.Questions[1]
	if !reflect.DeepEqual(q.Options, []string{"Three", "Four"}) || q.Correct != 1 {
		t.Fatalf("second question = %+v", q)
	}
}

func TestParseTextSkipsIncompleteBlocks(t *testing.T) {
	in := `A: Orphaned option with no question
Correct: A

---

Q: Question with no options
Correct: A
`
	f, err := mustCodec(t, "text").Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f.Parsed() != 0 || f.Skipped != 2 {
		t.Fatalf("parsed=%d skipped=%d, want 0/2", f.Parsed(), f.Skipped)
	}
}

func TestParseTextBlankInput(t *testing.T) {
	f, err := mustCodec(t, "text").Decode(strings.NewReader("\n\n---\n\n"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f.Parsed() != 0 || f.Skipped != 0 {
		t.Fatalf("parsed=%d skipped=%d, want 0/0", f.Parsed(), f.Skipped)
	}
}
