package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtaoOfficial/Interview/internal/model"
)

type roleStore interface {
	Create(ctx context.Context, jr model.JobRole) error
	FindByID(ctx context.Context, id string) (model.JobRole, error)
	FindAll(ctx context.Context) ([]model.JobRole, error)
	FindActive(ctx context.Context) ([]model.JobRole, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	Update(ctx context.Context, jr model.JobRole) error
	Delete(ctx context.Context, id string) error
}

type RoleService struct {
	roles roleStore
}

func NewRoleService(roles roleStore) *RoleService {
	return &RoleService{roles: roles}
}

func (s *RoleService) CreateRole(ctx context.Context, req model.RoleRequest) (model.JobRole, error) {
	title := strings.TrimSpace(req.JobTitle)
	if title == "" {
		return model.JobRole{}, model.ErrInvalidInput
	}

	exists, err := s.roles.ExistsByTitle(ctx, title)
	if err != nil {
		return model.JobRole{}, err
	}
	if exists {
		return model.JobRole{}, model.ErrRoleTitleTaken
	}

	now := time.Now().UTC()
	jr := model.JobRole{
		ID:              uuid.NewString(),
		JobTitle:        title,
		Department:      strings.TrimSpace(req.Department),
		PositionDetails: req.PositionDetails,
		IsActive:        true,
		VideoRequired:   true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.IsActive != nil {
		jr.IsActive = *req.IsActive
	}
	if req.VideoRequired != nil {
		jr.VideoRequired = *req.VideoRequired
	}

	if err := s.roles.Create(ctx, jr); err != nil {
		return model.JobRole{}, err
	}
	return jr, nil
}

// ListRoles returns every role, active or not, for the admin portal.
func (s *RoleService) ListRoles(ctx context.Context) ([]model.JobRole, error) {
	return s.roles.FindAll(ctx)
}

// ListPublicRoles returns only active roles for the candidate job board.
func (s *RoleService) ListPublicRoles(ctx context.Context) ([]model.JobRole, error) {
	return s.roles.FindActive(ctx)
}

func (s *RoleService) GetRole(ctx context.Context, id string) (model.JobRole, error) {
	return s.roles.FindByID(ctx, id)
}

func (s *RoleService) UpdateRole(ctx context.Context, id string, req model.RoleRequest) (model.JobRole, error) {
	existing, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return model.JobRole{}, err
	}

	if title := strings.TrimSpace(req.JobTitle); title != "" {
		existing.JobTitle = title
	}
	if dept := strings.TrimSpace(req.Department); dept != "" {
		existing.Department = dept
	}
	if req.PositionDetails != "" {
		existing.PositionDetails = req.PositionDetails
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	if req.VideoRequired != nil {
		existing.VideoRequired = *req.VideoRequired
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.roles.Update(ctx, existing); err != nil {
		return model.JobRole{}, err
	}
	return existing, nil
}

func (s *RoleService) DeleteRole(ctx context.Context, id string) error {
	return s.roles.Delete(ctx, id)
}
