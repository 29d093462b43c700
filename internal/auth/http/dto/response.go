package dto

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
	Type  string `json:"type"`
}
