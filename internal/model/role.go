package model

import "time"

// JobRole is an open position candidates can apply against. Inactive
// roles stay visible in the admin portal but are hidden from the public
// job board.
type JobRole struct {
	ID              string    `json:"id"`
	JobTitle        string    `json:"jobTitle"`
	Department      string    `json:"department"`
	PositionDetails string    `json:"positionDetails"`
	IsActive        bool      `json:"isActive"`
	VideoRequired   bool      `json:"videoRequired"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
