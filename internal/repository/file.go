package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/templui/notebook/internal/model"
)

var (
	ErrFileNotFound = errors.New("file not found")
)

type FileRepository interface {
	Create(file *model.File) error
	ByID(id int64) (*model.File, error)
	Files() ([]*model.File, error)
	Delete(id int64) error
}

type fileRepository struct {
	db *sqlx.DB
}

func NewFileRepository(db *sqlx.DB) FileRepository {
	return &fileRepository{db: db}
}

// Create inserts the row and sets file.ID to the assigned identity.
func (r *fileRepository) Create(file *model.File) error {
	query := `INSERT INTO files (name, mime, size, filename, created_at)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	return r.db.Get(&file.ID, query,
		file.Name,
		file.Mime,
		file.Size,
		file.Filename,
		file.CreatedAt,
	)
}

func (r *fileRepository) ByID(id int64) (*model.File, error) {
	file := &model.File{}
	query := `SELECT id, name, mime, size, filename, created_at FROM files WHERE id = $1`

	err := r.db.Get(file, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}

	return file, nil
}

func (r *fileRepository) Files() ([]*model.File, error) {
	files := []*model.File{}
	query := `SELECT id, name, mime, size, filename, created_at FROM files ORDER BY created_at DESC, id DESC`

	err := r.db.Select(&files, query)
	if err != nil {
		return nil, err
	}

	return files, nil
}

// Delete removes the row. Deleting a missing id returns ErrFileNotFound.
func (r *fileRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM files WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrFileNotFound
	}

	return nil
}
