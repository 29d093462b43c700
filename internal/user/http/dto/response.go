package dto

// ProfileResponse represents a profile in API responses.
type ProfileResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

// UserResponse represents a user in API responses. The password hash is
// never serialized.
type UserResponse struct {
	ID       int64             `json:"id"`
	Name     string            `json:"nome"`
	Email    string            `json:"email"`
	Profiles []ProfileResponse `json:"perfis"`
}
