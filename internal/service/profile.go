package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/templui/notebook/internal/model"
	"github.com/templui/notebook/internal/repository"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

// Save appends a new profile row. A user that is absent or falsy (null, false,
// 0, "") becomes model.DefaultProfileUser, and falsy data is stored as {}.
func (s *ProfileService) Save(user, data json.RawMessage) (*model.Profile, error) {
	name, err := profileUser(user)
	if err != nil {
		return nil, err
	}

	serialized, err := profileData(data)
	if err != nil {
		return nil, err
	}

	profile := &model.Profile{
		User:      name,
		Data:      serialized,
		UpdatedAt: s.now().UnixMilli(),
	}

	err = s.profileRepo.Create(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return profile, nil
}

func profileUser(user json.RawMessage) (string, error) {
	falsy, err := isFalsyJSON(user)
	if err != nil {
		return "", fmt.Errorf("invalid profile user: %w", err)
	}
	if falsy {
		return model.DefaultProfileUser, nil
	}

	text, err := JSONText(user)
	if err != nil {
		return "", fmt.Errorf("invalid profile user: %w", err)
	}
	return *text, nil
}

func profileData(data json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return "{}", nil
	}

	var value any
	err := json.Unmarshal(trimmed, &value)
	if err != nil {
		return "", fmt.Errorf("invalid profile data: %w", err)
	}
	if isFalsy(value) {
		return "{}", nil
	}

	// Compact keeps the caller's key order, unlike re-marshaling value.
	var buf bytes.Buffer
	err = json.Compact(&buf, trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid profile data: %w", err)
	}
	return buf.String(), nil
}

func isFalsy(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == ""
	}
	return false
}
