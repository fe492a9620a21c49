package model

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"`
}

type RoleRequest struct {
	JobTitle        string `json:"jobTitle" validate:"required"`
	Department      string `json:"department"`
	PositionDetails string `json:"positionDetails"`
	IsActive        *bool  `json:"isActive"`
	VideoRequired   *bool  `json:"videoRequired"`
}

type QuestionRequest struct {
	RoleID   string `json:"roleId" validate:"required"`
	Text     string `json:"text" validate:"required"`
	Duration int    `json:"duration" validate:"gte=0"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}
