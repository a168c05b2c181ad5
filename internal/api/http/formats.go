package http

import (
	"net/http"

	"github.com/quizforge/quizforge/internal/format"
)

type formatInfo struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
	MIME       string   `json:"mime,omitempty"`
	Parse      bool     `json:"parse"`
	Export     bool     `json:"export"`
}

// GET /formats
// Registry listing with supported directions per format.
func ListFormatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		names := format.Names()
		out := make([]formatInfo, 0, len(names))
		for _, n := range names {
			c, ok := format.Lookup(n)
			if !ok {
				continue
			}
			out = append(out, formatInfo{
				Name:       c.Name,
				Extensions: c.Exts,
				MIME:       c.MIME,
				Parse:      c.CanParse(),
				Export:     c.CanExport(),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}
