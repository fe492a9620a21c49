package model

import "time"

// DefaultAdminRole is applied whenever a stored admin record has no role
// label. There is currently a single privilege level.
const DefaultAdminRole = "ADMIN"

type Admin struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Principal is the authenticated actor for the current request. It is
// built per request from a verified token claim plus a store lookup and
// never outlives the request.
type Principal struct {
	Email string
	Name  string
	Role  string
}
