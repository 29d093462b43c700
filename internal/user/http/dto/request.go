// Package dto contains request and response payloads for the user HTTP API.
package dto

// CreateUserRequest is the payload for registering a user.
type CreateUserRequest struct {
	Name     string   `json:"nome"`
	Email    string   `json:"email"`
	Password string   `json:"senha"`
	Profiles []string `json:"perfis"`
}

// UpdateUserRequest is the payload for updating a user. Only name and
// password are mutable.
type UpdateUserRequest struct {
	Name     string `json:"nome"`
	Password string `json:"senha"`
}
