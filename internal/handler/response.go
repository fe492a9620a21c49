package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/dtaoOfficial/Interview/internal/model"
	"github.com/dtaoOfficial/Interview/pkg/apierror"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, model.APIResponse{Success: true, Data: data})
}

func writeAPIError(w http.ResponseWriter, apiErr *apierror.APIError) {
	writeJSON(w, apiErr.HTTPStatus, model.APIResponse{
		Success: false,
		Error: &model.APIError{
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		},
	})
}

// writeError maps a service error onto the wire. Domain sentinels get
// stable codes and statuses; anything unrecognized is a 500 with the
// detail kept out of the response body.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		writeAPIError(w, apiErr)
		return
	}

	switch {
	case errors.Is(err, model.ErrInvalidInput):
		writeAPIError(w, apierror.BadRequest("INVALID_INPUT", "Invalid input", ""))
	case errors.Is(err, model.ErrInvalidCredentials):
		writeAPIError(w, apierror.Unauthorized("INVALID_CREDENTIALS", "Invalid credentials"))
	case errors.Is(err, model.ErrEmailTaken):
		writeAPIError(w, apierror.Conflict("EMAIL_TAKEN", "Email already registered"))
	case errors.Is(err, model.ErrRoleTitleTaken):
		writeAPIError(w, apierror.Conflict("ROLE_TITLE_TAKEN", "Role title already exists"))
	case errors.Is(err, model.ErrAdminNotFound):
		writeAPIError(w, apierror.NotFound("ADMIN_NOT_FOUND", "Admin not found"))
	case errors.Is(err, model.ErrRoleNotFound):
		writeAPIError(w, apierror.NotFound("ROLE_NOT_FOUND", "Role not found"))
	case errors.Is(err, model.ErrQuestionNotFound):
		writeAPIError(w, apierror.NotFound("QUESTION_NOT_FOUND", "Question not found"))
	case errors.Is(err, model.ErrApplicationNotFound):
		writeAPIError(w, apierror.NotFound("APPLICATION_NOT_FOUND", "Application not found"))
	case errors.Is(err, model.ErrFileMissing):
		writeAPIError(w, apierror.NotFound("FILE_MISSING", "File not available"))
	default:
		slog.Error("unhandled error", "error", err)
		writeAPIError(w, apierror.Internal("Internal server error"))
	}
}

// decodeJSON parses a JSON body into dst. The returned bool reports
// whether the caller may proceed; on false the error response has
// already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeAPIError(w, apierror.BadRequest("INVALID_JSON", "Request body is not valid JSON", ""))
		return false
	}
	return true
}

// decodeAndValidate additionally runs dst's validate tags. Partial
// update endpoints use decodeJSON instead, since their "keep existing"
// fields fail required checks.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !decodeJSON(w, r, dst) {
		return false
	}

	if err := validate.Struct(dst); err != nil {
		writeAPIError(w, apierror.BadRequest("VALIDATION_FAILED", "Request validation failed", err.Error()))
		return false
	}

	return true
}
