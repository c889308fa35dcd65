package dto

import "github.com/sahakari-app/sahakari_backend/internal/core/domain"

// UpdateSettingsRequest edits organization metadata. Users are managed
// through the user endpoints, not here.
type UpdateSettingsRequest struct {
	OrgName  *string `json:"orgName"`
	Currency *string `json:"currency"`
}

// SettingsResponse is the settings document without the user credentials.
type SettingsResponse struct {
	OrgName  string         `json:"orgName"`
	Currency string         `json:"currency"`
	Users    []UserResponse `json:"users"`
}

// ToSettingsResponse converts domain settings, dropping password hashes.
func ToSettingsResponse(s domain.Settings) SettingsResponse {
	return SettingsResponse{
		OrgName:  s.OrgName,
		Currency: s.Currency,
		Users:    ToUserResponses(s.Users),
	}
}
