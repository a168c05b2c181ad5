package http

import (
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/quizforge/quizforge/internal/format"
	"github.com/quizforge/quizforge/internal/storage"
)

// GET /artifacts/*
// Serve a stored conversion result. Only the artifacts/ namespace is
// reachable; assets stay private to the renderers.
func ServeArtifactHandler(bs storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := "artifacts/" + strings.TrimPrefix(chi.URLParam(r, "*"), "/")
		// dotted segments must not climb out of the namespace
		if !strings.HasPrefix(path.Clean("/"+key), "/artifacts/") {
			writeErr(w, http.StatusNotFound, "artifact not found")
			return
		}
		rc, err := bs.Get(key)
		if err != nil {
			writeErr(w, http.StatusNotFound, "artifact not found")
			return
		}
		defer rc.Close()

		ct := "application/octet-stream"
		if c, ok := format.Detect(key); ok && c.MIME != "" {
			ct = c.MIME
		}
		w.Header().Set("Content-Type", ct)
		_, _ = io.Copy(w, rc)
	}
}
