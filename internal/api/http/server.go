// Package http wires the conversion service's routes: convert, artifacts,
// certificates, formats, settings, and the optional auth guard.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/quizforge/quizforge/internal/audit"
	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/cert"
	"github.com/quizforge/quizforge/internal/storage"
)

// Deps carries everything the router mounts. Auth nil leaves every route
// open; non-nil guards the mutating ones.
type Deps struct {
	Certs *cert.Store
	Audit *audit.Log
	Blobs storage.BlobStore
	Auth  *auth.Service

	SettingsPath string
	LogoAssetKey string
	PublicURL    string
	CORSOrigins  []string
}

func NewRouter(d Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := d.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if d.Auth != nil {
		r.Post("/auth/login", auth.LoginHandler(d.Auth))
	}

	// Read side stays open even when auth is on.
	r.Get("/formats", ListFormatsHandler())
	r.Get("/artifacts/*", ServeArtifactHandler(d.Blobs))
	r.Get("/certificates", ListCertificatesHandler(d.Certs))
	r.Get("/certificates/{id}", VerifyCertificateHandler(d.Certs))
	r.Get("/settings", GetSettingsHandler(d.SettingsPath))

	r.Group(func(pr chi.Router) {
		if d.Auth != nil {
			pr.Use(auth.Middleware(d.Auth))
		}
		pr.Post("/convert", ConvertHandler(d))
		pr.Post("/certificates", IssueCertificateHandler(d))
		pr.Put("/settings", PutSettingsHandler(d.SettingsPath, d.Audit))
	})

	return r
}
