package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// LocalStorage keeps files in a single directory on disk
type LocalStorage struct {
	dir  string
	root fs.FS
}

// NewLocalStorage creates dir if it is missing
func NewLocalStorage(dir string) (*LocalStorage, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalStorage{dir: dir, root: os.DirFS(dir)}, nil
}

func (s *LocalStorage) path(name string) (string, error) {
	if !fs.ValidPath(name) || name == "." || filepath.Base(name) != name {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	return filepath.Join(s.dir, name), nil
}

// Save creates the file exclusively and streams file into it.
// A partially written file is removed on error.
func (s *LocalStorage) Save(name, contentType string, file io.Reader) (int64, error) {
	fpath, err := s.path(name)
	if err != nil {
		return 0, err
	}

	out, err := os.OpenFile(fpath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		return 0, ErrExists
	}
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}

	n, err := io.Copy(out, file)
	closeErr := out.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		rmErr := os.Remove(fpath)
		if rmErr != nil {
			slog.Error("failed to remove partial file", "error", rmErr, "path", fpath)
		}
		return 0, fmt.Errorf("failed to write file: %w", err)
	}

	return n, nil
}

func (s *LocalStorage) Delete(name string) error {
	fpath, err := s.path(name)
	if err != nil {
		return err
	}
	return os.Remove(fpath)
}

func (s *LocalStorage) Serve(w http.ResponseWriter, r *http.Request, name string) {
	if _, err := s.path(name); err != nil {
		http.NotFound(w, r)
		return
	}

	info, err := fs.Stat(s.root, name)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	http.ServeFileFS(w, r, s.root, name)
}
