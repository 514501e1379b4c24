package service

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"time"

	"github.com/templui/notebook/internal/model"
	"github.com/templui/notebook/internal/repository"
	"github.com/templui/notebook/internal/storage"
)

// maxNameAttempts bounds how many consecutive milliseconds Upload tries when
// the stored filename is already taken.
const maxNameAttempts = 100

type FileService struct {
	fileRepo repository.FileRepository
	storage  storage.Storage
	now      func() time.Time
}

func NewFileService(fileRepo repository.FileRepository, storage storage.Storage) *FileService {
	return &FileService{
		fileRepo: fileRepo,
		storage:  storage,
		now:      time.Now,
	}
}

// Upload stores the file under a fresh timestamped name and creates its row.
// name is the display name; when empty the sanitized original filename is used.
// header.Filename arrives without any directory part, so "a/b.txt" is stored
// as "<millis>_b.txt".
func (s *FileService) Upload(file multipart.File, header *multipart.FileHeader, name string) (*model.File, error) {
	sanitized := SanitizeFilename(header.Filename)

	mime := header.Header.Get("Content-Type")
	if mime == "" {
		mime = model.DefaultMimeType
	}

	filename, size, err := s.save(file, sanitized, mime)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	if name == "" {
		name = sanitized
	}

	fileModel := &model.File{
		Name:      name,
		Mime:      mime,
		Size:      size,
		Filename:  filename,
		CreatedAt: s.now().UnixMilli(),
	}

	err = s.fileRepo.Create(fileModel)
	if err != nil {
		// If DB insert fails, try to cleanup the uploaded file
		delErr := s.storage.Delete(filename)
		if delErr != nil {
			slog.Error("failed to delete file from storage during cleanup", "error", delErr, "filename", filename)
		}
		return nil, fmt.Errorf("failed to create file record: %w", err)
	}

	return fileModel, nil
}

// save writes file under the first free "<millis>_<name>", moving one
// millisecond forward on each collision.
func (s *FileService) save(file multipart.File, sanitized, mime string) (string, int64, error) {
	millis := s.now().UnixMilli()

	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		filename := StoredFilename(millis+int64(attempt), sanitized)

		size, err := s.storage.Save(filename, mime, file)
		if err == nil {
			return filename, size, nil
		}
		if !errors.Is(err, storage.ErrExists) {
			return "", 0, err
		}

		// The backend may have consumed the body before refusing the name.
		_, err = file.Seek(0, io.SeekStart)
		if err != nil {
			return "", 0, fmt.Errorf("failed to rewind upload: %w", err)
		}
	}

	return "", 0, fmt.Errorf("no free stored filename for %q after %d attempts", sanitized, maxNameAttempts)
}

func (s *FileService) Files() ([]*model.File, error) {
	return s.fileRepo.Files()
}

func (s *FileService) ByID(id int64) (*model.File, error) {
	return s.fileRepo.ByID(id)
}

// URL returns the relative URL the stored file is served at
func (s *FileService) URL(file *model.File) string {
	if file == nil {
		return ""
	}
	return storage.URL(file.Filename)
}

// Delete removes a file from storage and database. Storage removal is best
// effort: the row is deleted even if the stored file cannot be.
func (s *FileService) Delete(id int64) error {
	file, err := s.fileRepo.ByID(id)
	if err != nil {
		return fmt.Errorf("failed to get file: %w", err)
	}

	delErr := s.storage.Delete(file.Filename)
	if delErr != nil {
		slog.Warn("failed to delete file from storage", "error", delErr, "filename", file.Filename)
	}

	err = s.fileRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete file record: %w", err)
	}

	return nil
}
