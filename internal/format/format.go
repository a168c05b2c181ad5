package format

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/quizforge/quizforge/internal/quiz"
)

var (
	// ErrUnsupported marks a conversion direction a codec does not implement.
	ErrUnsupported = errors.New("unsupported conversion direction")
	// ErrNoQuestions rejects exports whose target needs at least one question.
	ErrNoQuestions = errors.New("quiz has no questions")
)

// Codec converts between one external quiz representation and the internal
// model. A nil Parse or Export means the codec does not handle that
// direction; callers go through the Codec methods, which report
// ErrUnsupported instead of panicking on the nil field.
type Codec struct {
	Name string
	Exts []string // recognized file extensions, first is canonical
	MIME string   // content type for HTTP downloads

	Parse  func(r io.Reader) (Fragment, error)
	Export func(w io.Writer, qz *quiz.Quiz, pres Presentation) error
}

func (c Codec) CanParse() bool  { return c.Parse != nil }
func (c Codec) CanExport() bool { return c.Export != nil }

// Ext returns the canonical file extension including the dot.
func (c Codec) Ext() string {
	if len(c.Exts) == 0 {
		return ""
	}
	return c.Exts[0]
}

// Decode parses r, guarding the direction.
func (c Codec) Decode(r io.Reader) (Fragment, error) {
	if c.Parse == nil {
		return Fragment{}, fmt.Errorf("%s: %w", c.Name, ErrUnsupported)
	}
	return c.Parse(r)
}

// Encode exports qz to w, guarding the direction.
func (c Codec) Encode(w io.Writer, qz *quiz.Quiz, pres Presentation) error {
	if c.Export == nil {
		return fmt.Errorf("%s: %w", c.Name, ErrUnsupported)
	}
	return c.Export(w, qz, pres)
}

// Registry of codecs by name (e.g. "csv", "json", "html").
var registry = map[string]Codec{}

// Register a codec. Call from init() in this package's codec files.
func Register(c Codec) { registry[c.Name] = c }

// Lookup returns a registered codec by name.
func Lookup(name string) (Codec, bool) { c, ok := registry[name]; return c, ok }

// Names returns the registered codec names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Detect picks a codec from a file path's extension.
func Detect(path string) (Codec, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return Codec{}, false
	}
	for _, c := range registry {
		for _, e := range c.Exts {
			if e == ext {
				return c, true
			}
		}
	}
	return Codec{}, false
}

// Fragment is the outcome of one parse: the questions the grammar accepted
// plus tallies for the load report. Parsers never mutate a Quiz; callers
// decide what to do with the fragment.
type Fragment struct {
	Title       string // quiz metadata carried by document formats (JSON); empty elsewhere
	Description string
	Questions   []quiz.Question
	Format      string // codec name that produced it
	Skipped     int    // defective rows/blocks dropped during parsing
}

func (f Fragment) Parsed() int { return len(f.Questions) }

// Summary renders the human-readable load report shown after an import.
func (f Fragment) Summary() string {
	s := fmt.Sprintf("loaded %d questions from %s", len(f.Questions), strings.ToUpper(f.Format))
	if f.Skipped > 0 {
		s += fmt.Sprintf(" (%d skipped)", f.Skipped)
	}
	return s
}
