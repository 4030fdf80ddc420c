// Package api defines the JSON wire types of the gymkeeper document server.
package api

// RegisterRequest creates an account. The server never sees the master
// password, only a hash of the key derived from it.
type RegisterRequest struct {
	Username    string `json:"username"`
	AuthKeyHash string `json:"auth_key_hash"` // hex SHA256 от auth key
	PublicSalt  string `json:"public_salt"`   // base64, 32 байта
}

type RegisterResponse struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// SaltResponse returns the public salt needed to derive the auth key on login.
type SaltResponse struct {
	PublicSalt string `json:"public_salt"`
}

type LoginRequest struct {
	Username    string `json:"username"`
	AuthKeyHash string `json:"auth_key_hash"`
}

// TokenResponse carries the access token and the user id that partitions
// the user's documents.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	ExpiresIn   int64  `json:"expires_in"` // секунды
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
