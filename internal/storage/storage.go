package storage

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	cfg "github.com/templui/notebook/internal/config"
)

// URLPrefix is where stored files are served from.
const URLPrefix = "/uploads/"

// ErrExists is returned by Save when the name is already taken.
var ErrExists = errors.New("storage: file already exists")

// Storage defines the interface for the content directory
type Storage interface {
	// Save writes file under name and returns the number of bytes written.
	// It never overwrites: an existing name yields ErrExists.
	Save(name, contentType string, file io.Reader) (int64, error)

	// Delete removes the file stored under name
	Delete(name string) error

	// Serve writes the stored file (or a redirect to it) to w
	Serve(w http.ResponseWriter, r *http.Request, name string)
}

// URL returns the relative URL a stored file is served at.
func URL(name string) string {
	return URLPrefix + name
}

// New creates the storage backend selected by STORAGE_DRIVER
func New(c *cfg.Config) (Storage, error) {
	if c.StorageDriver == cfg.StorageS3 {
		slog.Info("initializing S3 storage",
			"bucket", c.S3Bucket,
			"region", c.S3Region,
			"endpoint", c.S3Endpoint,
		)
		return NewS3Storage(S3Config{
			Region:        c.S3Region,
			Bucket:        c.S3Bucket,
			AccessKey:     c.S3AccessKey,
			SecretKey:     c.S3SecretKey,
			Endpoint:      c.S3Endpoint,
			Prefix:        c.S3Prefix,
			PathStyle:     c.S3PathStyle,
			PresignExpiry: c.S3PresignExpiry,
		})
	}

	slog.Info("initializing local storage", "dir", c.UploadDir)
	return NewLocalStorage(c.UploadDir)
}

// Handler serves stored files by the name following URLPrefix.
func Handler(s Storage) http.Handler {
	return http.StripPrefix(URLPrefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Serve(w, r, r.URL.Path)
	}))
}
