package storage_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/quizforge/quizforge/internal/storage"
)

func TestFSStorePutGet(t *testing.T) {
	store, err := storage.NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}

	key, err := store.Put("artifacts/demo.html", strings.NewReader("<html></html>"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if key != "artifacts/demo.html" {
		t.Fatalf("canonical key = %q", key)
	}

	rc, err := store.Get(key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "<html></html>" {
		t.Fatalf("content = %q", data)
	}

	u, err := store.SignedURL(key)
	if err != nil {
		t.Fatalf("SignedURL: %v", err)
	}
	if !strings.HasPrefix(u, "file://") {
		t.Fatalf("SignedURL = %q", u)
	}
}

func TestFSStoreKeyEscapesStay(t *testing.T) {
	base := t.TempDir()
	store, err := storage.NewFSStore(base)
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}

	// rooted cleaning keeps traversal keys inside the store
	key, err := store.Put("../escape.txt", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if key != "escape.txt" {
		t.Fatalf("canonical key = %q, want escape.txt", key)
	}
	if _, err := store.Get("a/../../../../etc/passwd"); err == nil {
		t.Fatal("traversal key readable")
	}

	if _, err := store.Put("", strings.NewReader("x")); !errors.Is(err, storage.ErrBadKey) {
		t.Fatalf("empty key err = %v, want ErrBadKey", err)
	}
}

func TestArtifactKey(t *testing.T) {
	a := storage.ArtifactKey(".html")
	b := storage.ArtifactKey(".html")
	if a == b {
		t.Fatal("two artifact keys collided")
	}
	if !strings.HasPrefix(a, "artifacts/") || !strings.HasSuffix(a, ".html") {
		t.Fatalf("key = %q", a)
	}
}

func TestDataURI(t *testing.T) {
	store, err := storage.NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	if _, err := store.Put("assets/logo.png", strings.NewReader("\x89PNG fake")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	uri, err := storage.DataURI(store, "assets/logo.png")
	if err != nil {
		t.Fatalf("DataURI: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("uri = %q", uri)
	}

	if _, err := storage.DataURI(store, "assets/missing.png"); err == nil {
		t.Fatal("missing asset produced a data URI")
	}
}
