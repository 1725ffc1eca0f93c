package models

// TokenResponse is returned by register and login.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse carries a human readable message. It is used for the
// delete confirmation and for every error body. Errors holds per-field
// validation messages keyed by the JSON field name.
type MessageResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
