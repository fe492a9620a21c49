package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dtaoOfficial/Interview/internal/model"
	"github.com/dtaoOfficial/Interview/internal/service"
	"github.com/dtaoOfficial/Interview/pkg/apierror"
)

type applicationService interface {
	Submit(ctx context.Context, sub service.Submission) (model.Application, error)
	List(ctx context.Context) ([]model.Application, error)
	Get(ctx context.Context, id string) (model.Application, error)
	UpdateStatus(ctx context.Context, id string, status string) (model.Application, error)
}

type ApplicationHandler struct {
	apps          applicationService
	maxUploadSize int64
}

func NewApplicationHandler(apps applicationService, maxUploadSize int64) *ApplicationHandler {
	return &ApplicationHandler{apps: apps, maxUploadSize: maxUploadSize}
}

// Submit accepts the candidate intake form as multipart/form-data. The
// resume part is required; the interview video is optional because
// roles can allow direct submission. The askedQuestions field carries
// the question snapshot as a JSON array; an unparseable snapshot is
// dropped rather than failing the submission.
func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeAPIError(w, apierror.BadRequest("INVALID_FORM", "Could not parse upload form", ""))
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	jobID := strings.TrimSpace(r.FormValue("jobId"))
	name := strings.TrimSpace(r.FormValue("candidateName"))
	email := strings.TrimSpace(r.FormValue("email"))
	if jobID == "" || name == "" || email == "" {
		writeAPIError(w, apierror.BadRequest("INVALID_INPUT", "jobId, candidateName and email are required", ""))
		return
	}

	resume, _, err := r.FormFile("resume")
	if err != nil {
		writeAPIError(w, apierror.BadRequest("RESUME_REQUIRED", "A resume file is required", ""))
		return
	}
	defer resume.Close()

	sub := service.Submission{
		JobID:         jobID,
		CandidateName: name,
		Email:         email,
		Phone:         strings.TrimSpace(r.FormValue("phone")),
		Comments:      strings.TrimSpace(r.FormValue("comments")),
		Resume:        resume,
	}

	if raw := r.FormValue("askedQuestions"); raw != "" {
		var questions []model.Question
		if err := json.Unmarshal([]byte(raw), &questions); err != nil {
			slog.Warn("dropping unparseable question snapshot", "email", email, "error", err)
		} else {
			sub.Questions = questions
		}
	}

	if video, _, err := r.FormFile("video"); err == nil {
		defer video.Close()
		sub.Video = video
	}

	app, err := h.apps.Submit(r.Context(), sub)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, app)
}

func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.apps.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, apps)
}

func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	app, err := h.apps.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, app)
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req model.StatusUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	app, err := h.apps.UpdateStatus(r.Context(), chi.URLParam(r, "id"), strings.ToUpper(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, app)
}
