// Package dto contains request and response payloads for the auth HTTP API.
package dto

// LoginRequest is the credential payload for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}
