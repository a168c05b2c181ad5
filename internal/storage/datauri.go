package storage

import (
	"encoding/base64"
	"io"
	"path"
	"strings"
)

var assetMIMEs = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
}

// DataURI loads an asset and encodes it for inline embedding, typically the
// logo stamped into rendered documents. Callers treat any failure as "no
// asset" and fall back to a built-in placeholder.
func DataURI(store BlobStore, key string) (string, error) {
	rc, err := store.Get(key)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	mime, ok := assetMIMEs[strings.ToLower(path.Ext(key))]
	if !ok {
		mime = "application/octet-stream"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
