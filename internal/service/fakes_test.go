package service

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"testing"

	"github.com/templui/notebook/internal/model"
	"github.com/templui/notebook/internal/repository"
	"github.com/templui/notebook/internal/storage"
)

type fakeStorage struct {
	files     map[string][]byte
	saveErr   error
	deleteErr error
	deleted   []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: map[string][]byte{}}
}

func (s *fakeStorage) Save(name, contentType string, file io.Reader) (int64, error) {
	if s.saveErr != nil {
		return 0, s.saveErr
	}
	// Drain first, the way a remote backend would, before refusing the name.
	data, err := io.ReadAll(file)
	if err != nil {
		return 0, err
	}
	if _, ok := s.files[name]; ok {
		return 0, storage.ErrExists
	}
	s.files[name] = data
	return int64(len(data)), nil
}

func (s *fakeStorage) Delete(name string) error {
	s.deleted = append(s.deleted, name)
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.files, name)
	return nil
}

func (s *fakeStorage) Serve(w http.ResponseWriter, r *http.Request, name string) {
	data, ok := s.files[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	_, _ = w.Write(data)
}

type fakeFileRepo struct {
	rows      map[int64]*model.File
	nextID    int64
	createErr error
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{rows: map[int64]*model.File{}}
}

func (r *fakeFileRepo) Create(file *model.File) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	file.ID = r.nextID
	copied := *file
	r.rows[file.ID] = &copied
	return nil
}

func (r *fakeFileRepo) ByID(id int64) (*model.File, error) {
	file, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrFileNotFound
	}
	copied := *file
	return &copied, nil
}

func (r *fakeFileRepo) Files() ([]*model.File, error) {
	files := []*model.File{}
	for _, f := range r.rows {
		copied := *f
		files = append(files, &copied)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].CreatedAt > files[j].CreatedAt })
	return files, nil
}

func (r *fakeFileRepo) Delete(id int64) error {
	if _, ok := r.rows[id]; !ok {
		return repository.ErrFileNotFound
	}
	delete(r.rows, id)
	return nil
}

type fakeEventRepo struct {
	rows []*model.Event
	err  error
}

func (r *fakeEventRepo) Create(event *model.Event) error {
	if r.err != nil {
		return r.err
	}
	event.ID = int64(len(r.rows) + 1)
	r.rows = append(r.rows, event)
	return nil
}

func (r *fakeEventRepo) Events() ([]*model.Event, error) {
	return r.rows, r.err
}

type fakeProfileRepo struct {
	rows []*model.Profile
	err  error
}

func (r *fakeProfileRepo) Create(profile *model.Profile) error {
	if r.err != nil {
		return r.err
	}
	profile.ID = int64(len(r.rows) + 1)
	r.rows = append(r.rows, profile)
	return nil
}

var errBoom = errors.New("boom")

// multipartUpload builds a parsed multipart file part, as the handler sees it.
func multipartUpload(t *testing.T, filename, contentType string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("ReadForm() failed: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })

	header := form.File["file"][0]
	file, err := header.Open()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = file.Close() })

	return file, header
}
