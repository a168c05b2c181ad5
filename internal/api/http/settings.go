package http

import (
	"encoding/json"
	"net/http"

	"github.com/quizforge/quizforge/internal/audit"
	"github.com/quizforge/quizforge/internal/settings"
)

// GET /settings
// Current presentation defaults (file merged over built-ins).
func GetSettingsHandler(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		s, err := settings.Load(path)
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

// PUT /settings
// Body keys are merged over the current settings, so a partial update
// does not reset the rest.
func PutSettingsHandler(path string, auditLog *audit.Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := settings.Load(path)
		if err != nil {
			s = settings.Default()
		}
		if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
			writeErr(w, http.StatusBadRequest, "bad json")
			return
		}
		if err := s.Validate(); err != nil {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := settings.Save(path, s); err != nil {
			writeErr(w, http.StatusInternalServerError, "save settings: "+err.Error())
			return
		}
		if auditLog != nil {
			_ = auditLog.Append(r.Context(), audit.TypeSettingsUpdated, path, s)
		}
		writeJSON(w, http.StatusOK, s)
	}
}
