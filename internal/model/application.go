package model

import "time"

const (
	ApplicationStatusPending    = "PENDING"
	ApplicationStatusApproved   = "APPROVED"
	ApplicationStatusRejected   = "REJECTED"
	ApplicationStatusWaitlisted = "WAITLISTED"
)

type Application struct {
	ID            string `json:"id"`
	JobID         string `json:"jobId"`
	CandidateName string `json:"candidateName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Comments      string `json:"comments,omitempty"`

	ResumePath string `json:"resumePath"`
	VideoPath  string `json:"videoPath,omitempty"`

	// Snapshot of the questions shown to this candidate, so later edits
	// to the role's question set do not rewrite history.
	AskedQuestions []Question `json:"askedQuestions,omitempty"`

	Status    string    `json:"status"`
	AppliedAt time.Time `json:"appliedAt"`
}

func ValidApplicationStatus(status string) bool {
	switch status {
	case ApplicationStatusPending, ApplicationStatusApproved,
		ApplicationStatusRejected, ApplicationStatusWaitlisted:
		return true
	}
	return false
}
