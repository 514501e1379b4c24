package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/templui/notebook/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

type saveProfileRequest struct {
	User json.RawMessage `json:"user"`
	Data json.RawMessage `json:"data"`
}

func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveProfileRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.profileService.Save(req.User, req.Data)
	if err != nil {
		slog.Error("failed to save profile", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Debug("profile saved", "id", profile.ID, "user", profile.User)
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
