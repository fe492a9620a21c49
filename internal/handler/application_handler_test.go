package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtaoOfficial/Interview/internal/model"
	"github.com/dtaoOfficial/Interview/internal/service"
)

type fakeApplicationService struct {
	lastSubmission service.Submission
	submitErr      error
	apps           map[string]model.Application
}

func (f *fakeApplicationService) Submit(_ context.Context, sub service.Submission) (model.Application, error) {
	f.lastSubmission = sub
	if f.submitErr != nil {
		return model.Application{}, f.submitErr
	}
	return model.Application{
		ID:            "app-1",
		JobID:         sub.JobID,
		CandidateName: sub.CandidateName,
		Email:         sub.Email,
		Status:        model.ApplicationStatusPending,
	}, nil
}

func (f *fakeApplicationService) List(_ context.Context) ([]model.Application, error) {
	out := make([]model.Application, 0, len(f.apps))
	for _, app := range f.apps {
		out = append(out, app)
	}
	return out, nil
}

func (f *fakeApplicationService) Get(_ context.Context, id string) (model.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return model.Application{}, model.ErrApplicationNotFound
	}
	return app, nil
}

func (f *fakeApplicationService) UpdateStatus(_ context.Context, id string, status string) (model.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return model.Application{}, model.ErrApplicationNotFound
	}
	app.Status = status
	f.apps[id] = app
	return app, nil
}

func applicationRouter(h *ApplicationHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/apply", h.Submit)
	r.Get("/applications", h.List)
	r.Get("/applications/{id}", h.Get)
	r.Put("/applications/{id}/status", h.UpdateStatus)
	return r
}

type submitForm struct {
	fields map[string]string
	resume string
	video  string
}

func buildMultipart(t *testing.T, form submitForm) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for key, value := range form.fields {
		require.NoError(t, mw.WriteField(key, value))
	}
	if form.resume != "" {
		part, err := mw.CreateFormFile("resume", "resume.pdf")
		require.NoError(t, err)
		_, err = io.Copy(part, strings.NewReader(form.resume))
		require.NoError(t, err)
	}
	if form.video != "" {
		part, err := mw.CreateFormFile("video", "interview.webm")
		require.NoError(t, err)
		_, err = io.Copy(part, strings.NewReader(form.video))
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestSubmitApplication(t *testing.T) {
	svc := &fakeApplicationService{}
	h := NewApplicationHandler(svc, 1<<20)

	body, contentType := buildMultipart(t, submitForm{
		fields: map[string]string{
			"jobId":          "role-1",
			"candidateName":  "Jordan Candidate",
			"email":          "jordan@example.com",
			"phone":          "+1 555 0100",
			"askedQuestions": `[{"id":"q1","roleId":"role-1","text":"Why us?","duration":60}]`,
		},
		resume: "resume bytes",
		video:  "video bytes",
	})

	req := httptest.NewRequest(http.MethodPost, "/apply", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	applicationRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "role-1", svc.lastSubmission.JobID)
	assert.Equal(t, "jordan@example.com", svc.lastSubmission.Email)
	require.Len(t, svc.lastSubmission.Questions, 1)
	assert.Equal(t, "Why us?", svc.lastSubmission.Questions[0].Text)
	assert.NotNil(t, svc.lastSubmission.Resume)
	assert.NotNil(t, svc.lastSubmission.Video)
}

func TestSubmitRequiresResume(t *testing.T) {
	h := NewApplicationHandler(&fakeApplicationService{}, 1<<20)

	body, contentType := buildMultipart(t, submitForm{
		fields: map[string]string{
			"jobId":         "role-1",
			"candidateName": "Jordan Candidate",
			"email":         "jordan@example.com",
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/apply", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	applicationRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "RESUME_REQUIRED")
}

func TestSubmitRequiresIdentityFields(t *testing.T) {
	h := NewApplicationHandler(&fakeApplicationService{}, 1<<20)

	body, contentType := buildMultipart(t, submitForm{
		fields: map[string]string{"jobId": "role-1"},
		resume: "resume bytes",
	})

	req := httptest.NewRequest(http.MethodPost, "/apply", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	applicationRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitDropsBadQuestionSnapshot(t *testing.T) {
	svc := &fakeApplicationService{}
	h := NewApplicationHandler(svc, 1<<20)

	body, contentType := buildMultipart(t, submitForm{
		fields: map[string]string{
			"jobId":          "role-1",
			"candidateName":  "Jordan Candidate",
			"email":          "jordan@example.com",
			"askedQuestions": "{broken json",
		},
		resume: "resume bytes",
	})

	req := httptest.NewRequest(http.MethodPost, "/apply", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	applicationRouter(h).ServeHTTP(rec, req)

	// The submission goes through, just without the snapshot.
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, svc.lastSubmission.Questions)
}

func TestSubmitEnforcesUploadLimit(t *testing.T) {
	h := NewApplicationHandler(&fakeApplicationService{}, 64)

	body, contentType := buildMultipart(t, submitForm{
		fields: map[string]string{
			"jobId":         "role-1",
			"candidateName": "Jordan Candidate",
			"email":         "jordan@example.com",
		},
		resume: strings.Repeat("x", 4096),
	})

	req := httptest.NewRequest(http.MethodPost, "/apply", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	applicationRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatusEndpoint(t *testing.T) {
	svc := &fakeApplicationService{apps: map[string]model.Application{
		"app-1": {ID: "app-1", Status: model.ApplicationStatusPending},
	}}
	h := NewApplicationHandler(svc, 1<<20)

	req := httptest.NewRequest(http.MethodPut, "/applications/app-1/status",
		strings.NewReader(`{"status":"approved"}`))
	rec := httptest.NewRecorder()
	applicationRouter(h).ServeHTTP(rec, req)

	// Status values are normalized to upper case before validation.
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.ApplicationStatusApproved, svc.apps["app-1"].Status)
}

func TestGetUnknownApplication(t *testing.T) {
	h := NewApplicationHandler(&fakeApplicationService{apps: map[string]model.Application{}}, 1<<20)

	req := httptest.NewRequest(http.MethodGet, "/applications/missing", nil)
	rec := httptest.NewRecorder()
	applicationRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
