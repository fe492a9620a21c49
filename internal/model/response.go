package model

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// LoginResponse is the wire contract the admin portal expects from
// POST /api/auth/login.
type LoginResponse struct {
	Email   string `json:"email"`
	Token   string `json:"token"`
	Message string `json:"message"`
}
