package dto

import "tasktrack_backend/internal/feature/auth/domain/entity"

// AuthRes is the response body for successful /register and /login calls:
// the public user projection plus the freshly issued bearer token. The
// password hash is never part of the projection.
type AuthRes struct {
	User  entity.PublicUser `json:"user"`
	Token string            `json:"token"`
}

// ErrorRes is the generic error response body.
type ErrorRes struct {
	Error string `json:"error"`
}
