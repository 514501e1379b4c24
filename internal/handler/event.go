package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/templui/notebook/internal/service"
)

type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// createEventRequest fields are optional and may hold any JSON value.
// Absent or null ones are stored as NULL.
type createEventRequest struct {
	Title json.RawMessage `json:"title"`
	Body  json.RawMessage `json:"body"`
	Date  json.RawMessage `json:"date"`
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.Events()
	if err != nil {
		slog.Error("failed to list events", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var fields [3]*string
	for i, raw := range []json.RawMessage{req.Title, req.Body, req.Date} {
		fields[i], err = service.JSONText(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	event, err := h.eventService.Create(fields[0], fields[1], fields[2])
	if err != nil {
		slog.Error("failed to create event", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, event)
}
