package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/quizforge/quizforge/internal/audit"
	"github.com/quizforge/quizforge/internal/format"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/settings"
	"github.com/quizforge/quizforge/internal/storage"
)

// POST /convert?from=csv&to=html
// Body is the quiz payload, either raw or as a multipart "file" part.
// Presentation overrides ride on the query (title, description, author,
// company, copyright, timer, threshold, randomize, results, explanations,
// review, certificate). The artifact comes back as an attachment, or with
// store=1 it is saved and {key, url} returned.
func ConvertHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		body, filename, err := conversionInput(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		defer body.Close()

		fromName := q.Get("from")
		if fromName == "" && filename != "" {
			if c, ok := format.Detect(filename); ok {
				fromName = c.Name
			}
		}
		src, ok := format.Lookup(fromName)
		if !ok {
			writeErr(w, http.StatusNotFound, "unknown source format: "+fromName)
			return
		}
		toName := q.Get("to")
		if toName == "" {
			toName = "html"
		}
		dst, ok := format.Lookup(toName)
		if !ok {
			writeErr(w, http.StatusNotFound, "unknown target format: "+toName)
			return
		}

		frag, err := src.Decode(body)
		if err != nil {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}

		qz := quiz.New()
		if frag.Title != "" {
			qz.Title = frag.Title
		}
		if frag.Description != "" {
			qz.Description = frag.Description
		}
		if v := q.Get("title"); v != "" {
			qz.Title = v
		}
		if v := q.Get("description"); v != "" {
			qz.Description = v
		}
		_, rejected := qz.Append(frag.Questions)

		report := frag.Summary()
		if rejected > 0 {
			report += fmt.Sprintf("; %d rejected", rejected)
		}

		var buf bytes.Buffer
		if err := dst.Encode(&buf, qz, presentationFor(d, q)); err != nil {
			switch {
			case errors.Is(err, format.ErrNoQuestions):
				writeErr(w, http.StatusUnprocessableEntity, err.Error())
			case errors.Is(err, format.ErrUnsupported):
				writeErr(w, http.StatusBadRequest, err.Error())
			default:
				writeErr(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		if q.Get("store") == "1" {
			key := storage.ArtifactKey(dst.Ext())
			if _, err := d.Blobs.Put(key, bytes.NewReader(buf.Bytes())); err != nil {
				writeErr(w, http.StatusInternalServerError, "store artifact: "+err.Error())
				return
			}
			if d.Audit != nil {
				_ = d.Audit.Append(r.Context(), audit.TypeArtifactStored, key, map[string]any{
					"format":    dst.Name,
					"questions": qz.Count(),
				})
			}
			writeJSON(w, http.StatusCreated, map[string]string{
				"key":     key,
				"url":     d.PublicURL + "/" + key,
				"summary": report,
			})
			return
		}

		name := "quiz" + dst.Ext()
		if filename != "" {
			if base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)); base != "" && base != "." {
				name = base + dst.Ext()
			}
		}
		w.Header().Set("Content-Type", dst.MIME)
		w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
		w.Header().Set("X-Quiz-Summary", report)
		_, _ = buf.WriteTo(w)
	}
}

// conversionInput picks the quiz payload: the multipart "file" part when
// the request is a form upload, the raw body otherwise.
func conversionInput(r *http.Request) (io.ReadCloser, string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		f, hdr, err := r.FormFile("file")
		if err != nil {
			return nil, "", errors.New("file required")
		}
		return f, hdr.Filename, nil
	}
	return r.Body, "", nil
}

// presentationFor layers per-request overrides over the stored defaults.
// An unreadable settings file degrades to built-in defaults; a missing
// logo asset degrades to the built-in placeholder.
func presentationFor(d Deps, q url.Values) format.Presentation {
	s, err := settings.Load(d.SettingsPath)
	if err != nil {
		s = settings.Default()
	}
	pres := s.Presentation()

	if v := q.Get("author"); v != "" {
		pres.Author = v
	}
	if v := q.Get("company"); v != "" {
		pres.Company = v
	}
	if v := q.Get("copyright"); v != "" {
		pres.Copyright = v
	}
	if v := q.Get("timer"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			pres.TimerMinutes = n
		}
	}
	if v := q.Get("threshold"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 100 {
			pres.PassThreshold = n
		}
	}
	for param, field := range map[string]*bool{
		"randomize":    &pres.Randomize,
		"results":      &pres.ShowResults,
		"explanations": &pres.ShowExplanations,
		"review":       &pres.AllowReview,
		"certificate":  &pres.EnableCertificate,
	} {
		if v := q.Get(param); v != "" {
			*field = v == "1" || strings.EqualFold(v, "true")
		}
	}

	if d.Blobs != nil {
		if uri, err := storage.DataURI(d.Blobs, d.LogoAssetKey); err == nil {
			pres.LogoDataURI = uri
		}
	}
	return pres
}
