package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/templui/notebook/internal/model"
)

type ProfileRepository interface {
	Create(profile *model.Profile) error
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Create always inserts; earlier rows for the same user are kept.
func (r *profileRepository) Create(profile *model.Profile) error {
	return r.db.Get(&profile.ID, `
		INSERT INTO profiles ("user", data, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, profile.User, profile.Data, profile.UpdatedAt)
}
