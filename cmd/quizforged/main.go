// Command quizforged serves the quiz conversion API: upload a quiz in any
// registered source format, get back an interactive HTML build, a CSV or
// JSON export, or a markdown answer key, plus certificate issue/verify and
// presentation settings management.
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/quizforge/quizforge/internal/api/http"
	"github.com/quizforge/quizforge/internal/audit"
	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/cert"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/db"
	"github.com/quizforge/quizforge/internal/storage"
)

func main() {
	cfg := config.FromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	deps := api.Deps{
		Certs:        cert.NewStore(dbh),
		Audit:        audit.NewLog(dbh),
		Blobs:        bs,
		SettingsPath: cfg.SettingsPath,
		LogoAssetKey: cfg.LogoAssetKey,
		PublicURL:    cfg.PublicURL,
		CORSOrigins:  cfg.CORSOrigins,
	}
	if cfg.EnableAuth {
		deps.Auth = auth.NewService(cfg.JWTSecret, cfg.AdminUser, cfg.AdminPassHash)
	}

	s := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("listening on %s (db=%s, auth=%v)", cfg.HTTPAddr, cfg.DBDriver, cfg.EnableAuth)
	log.Fatal(s.ListenAndServe())
}
