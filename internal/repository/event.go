package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/templui/notebook/internal/model"
)

type EventRepository interface {
	Create(event *model.Event) error
	Events() ([]*model.Event, error)
}

type eventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(event *model.Event) error {
	query := `INSERT INTO events (title, body, date, created_at)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`

	return r.db.Get(&event.ID, query, event.Title, event.Body, event.Date, event.CreatedAt)
}

// Events lists all events, newest date first. Events without a date sort last.
func (r *eventRepository) Events() ([]*model.Event, error) {
	events := []*model.Event{}
	query := `SELECT id, title, body, date, created_at FROM events ORDER BY date DESC NULLS LAST, id DESC`

	err := r.db.Select(&events, query)
	if err != nil {
		return nil, err
	}

	return events, nil
}
