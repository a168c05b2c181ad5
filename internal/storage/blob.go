// Package storage holds the daemon's files: branding assets in, generated
// artifacts out. Keys are opaque slash-separated paths such as
// "artifacts/3f2a0a7e.html" or "assets/logo.png".
package storage

import (
	"errors"
	"io"

	"github.com/google/uuid"
)

// ErrBadKey rejects keys that would resolve outside the store root.
var ErrBadKey = errors.New("invalid storage key")

type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	SignedURL(key string) (string, error) // fs returns "file://..." for dev
}

// ArtifactKey mints a fresh key for a stored conversion result. ext
// includes the dot, as reported by Codec.Ext.
func ArtifactKey(ext string) string {
	return "artifacts/" + uuid.NewString() + ext
}
