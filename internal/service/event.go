package service

import (
	"fmt"
	"time"

	"github.com/templui/notebook/internal/model"
	"github.com/templui/notebook/internal/repository"
)

type EventService struct {
	eventRepo repository.EventRepository
	now       func() time.Time
}

func NewEventService(eventRepo repository.EventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

func (s *EventService) Events() ([]*model.Event, error) {
	return s.eventRepo.Events()
}

// Create stores the event as given. Missing fields are kept as nil.
func (s *EventService) Create(title, body, date *string) (*model.Event, error) {
	event := &model.Event{
		Title:     title,
		Body:      body,
		Date:      date,
		CreatedAt: s.now().UnixMilli(),
	}

	err := s.eventRepo.Create(event)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}
