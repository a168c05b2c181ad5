package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/quizforge/quizforge/internal/audit"
	"github.com/quizforge/quizforge/internal/cert"
	"github.com/quizforge/quizforge/internal/settings"
	"github.com/quizforge/quizforge/internal/storage"
)

// POST /certificates  { "recipient": "...", "quiz_title": "...", "score": 92 }
// Optional instructor/company override the stored defaults. ?format=html
// returns the rendered document instead of the JSON record.
func IssueCertificateHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Recipient  string `json:"recipient"`
			QuizTitle  string `json:"quiz_title"`
			Score      int    `json:"score"`
			Instructor string `json:"instructor"`
			Company    string `json:"company"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErr(w, http.StatusBadRequest, "bad json")
			return
		}
		if req.Recipient == "" {
			writeErr(w, http.StatusBadRequest, "recipient required")
			return
		}
		if req.Score < 0 || req.Score > 100 {
			writeErr(w, http.StatusBadRequest, "score must be 0-100")
			return
		}
		if req.QuizTitle == "" {
			req.QuizTitle = "Professional Assessment"
		}

		s, err := settings.Load(d.SettingsPath)
		if err != nil {
			s = settings.Default()
		}
		if req.Instructor == "" {
			req.Instructor = s.Author
		}
		if req.Instructor == "" {
			req.Instructor = "Technical Training Team"
		}
		if req.Company == "" {
			req.Company = s.CompanyName
		}

		c, err := cert.New(req.Recipient, req.QuizTitle, req.Score)
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err.Error())
			return
		}
		rec := cert.Record{Certificate: c, Instructor: req.Instructor, Company: req.Company}
		if err := d.Certs.Save(r.Context(), rec); err != nil {
			writeErr(w, http.StatusInternalServerError, "save certificate: "+err.Error())
			return
		}
		if d.Audit != nil {
			_ = d.Audit.Append(r.Context(), audit.TypeCertificateIssued, c.ID, rec)
		}

		if r.URL.Query().Get("format") == "html" {
			var logo string
			if d.Blobs != nil {
				logo, _ = storage.DataURI(d.Blobs, d.LogoAssetKey)
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusCreated)
			_ = cert.RenderHTML(w, c, cert.RenderOptions{
				Instructor:  rec.Instructor,
				Company:     rec.Company,
				Copyright:   s.Copyright,
				LogoDataURI: logo,
			})
			return
		}
		writeJSON(w, http.StatusCreated, rec)
	}
}

// GET /certificates/{id}
// Verification lookup for an issued certificate.
func VerifyCertificateHandler(certs *cert.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		rec, err := certs.Verify(r.Context(), id)
		if err != nil {
			if errors.Is(err, cert.ErrNotFound) {
				writeErr(w, http.StatusNotFound, "certificate not found")
				return
			}
			writeErr(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// GET /certificates?limit=20
// Latest issues, newest first.
func ListCertificatesHandler(certs *cert.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		recs, err := certs.Recent(r.Context(), limit)
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err.Error())
			return
		}
		if recs == nil {
			recs = []cert.Record{}
		}
		writeJSON(w, http.StatusOK, recs)
	}
}
