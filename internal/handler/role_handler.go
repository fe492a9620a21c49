package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dtaoOfficial/Interview/internal/model"
)

type roleService interface {
	CreateRole(ctx context.Context, req model.RoleRequest) (model.JobRole, error)
	ListRoles(ctx context.Context) ([]model.JobRole, error)
	ListPublicRoles(ctx context.Context) ([]model.JobRole, error)
	GetRole(ctx context.Context, id string) (model.JobRole, error)
	UpdateRole(ctx context.Context, id string, req model.RoleRequest) (model.JobRole, error)
	DeleteRole(ctx context.Context, id string) error
}

type questionCleaner interface {
	DeleteQuestionsByRole(ctx context.Context, roleID string) error
}

type RoleHandler struct {
	roles     roleService
	questions questionCleaner
}

func NewRoleHandler(roles roleService, questions questionCleaner) *RoleHandler {
	return &RoleHandler{roles: roles, questions: questions}
}

func (h *RoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.RoleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	role, err := h.roles.CreateRole(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, role)
}

// List returns every role, including inactive ones. The candidate job
// board uses ListPublic instead.
func (h *RoleHandler) List(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roles.ListRoles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, roles)
}

func (h *RoleHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roles.ListPublicRoles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, roles)
}

func (h *RoleHandler) Get(w http.ResponseWriter, r *http.Request) {
	role, err := h.roles.GetRole(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, role)
}

func (h *RoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.RoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	role, err := h.roles.UpdateRole(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, role)
}

// Delete removes the role together with its question set so no orphan
// questions survive the role.
func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.roles.DeleteRole(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	if err := h.questions.DeleteQuestionsByRole(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]string{"message": "Role deleted"})
}
