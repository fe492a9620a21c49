package model

// Question is a screening question attached to a job role. Duration is
// the answer recording window in seconds.
type Question struct {
	ID       string `json:"id"`
	RoleID   string `json:"roleId"`
	Text     string `json:"text"`
	Duration int    `json:"duration"`
}
