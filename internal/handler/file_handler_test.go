package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtaoOfficial/Interview/internal/model"
	"github.com/dtaoOfficial/Interview/internal/storage"
)

type fakeApplicationGetter struct {
	apps map[string]model.Application
}

func (f *fakeApplicationGetter) Get(_ context.Context, id string) (model.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return model.Application{}, model.ErrApplicationNotFound
	}
	return app, nil
}

func fileRouter(h *FileHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/files/{id}", h.Detail)
	r.Get("/files/{id}/{kind}", h.Serve)
	return r
}

func setupFileHandler(t *testing.T) (*FileHandler, string) {
	t.Helper()

	root := t.TempDir()
	uploads, err := storage.New(root)
	require.NoError(t, err)

	resumePath := filepath.Join(root, "resume.pdf")
	require.NoError(t, os.WriteFile(resumePath, []byte("%PDF fake resume"), 0o644))

	getter := &fakeApplicationGetter{apps: map[string]model.Application{
		"app-1": {ID: "app-1", ResumePath: resumePath},
	}}
	return NewFileHandler(getter, uploads), root
}

func TestServeResume(t *testing.T) {
	h, _ := setupFileHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/files/app-1/resume", nil)
	rec := httptest.NewRecorder()
	fileRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "inline")
	assert.Equal(t, "%PDF fake resume", rec.Body.String())
}

func TestDetailReturnsApplicationRecord(t *testing.T) {
	h, _ := setupFileHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/files/app-1", nil)
	rec := httptest.NewRecorder()
	fileRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, rec.Body.String(), `"app-1"`)
}

func TestDetailUnknownApplication(t *testing.T) {
	h, _ := setupFileHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/files/missing", nil)
	rec := httptest.NewRecorder()
	fileRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeMissingVideoIsNotFound(t *testing.T) {
	h, _ := setupFileHandler(t)

	// app-1 has no video on record.
	req := httptest.NewRequest(http.MethodGet, "/files/app-1/video", nil)
	rec := httptest.NewRecorder()
	fileRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "FILE_MISSING")
}

func TestServeUnknownKindIsNotFound(t *testing.T) {
	h, _ := setupFileHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/files/app-1/notes", nil)
	rec := httptest.NewRecorder()
	fileRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeUnknownApplication(t *testing.T) {
	h, _ := setupFileHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/files/missing/resume", nil)
	rec := httptest.NewRecorder()
	fileRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "APPLICATION_NOT_FOUND")
}

func TestServeRefusesPathOutsideUploadRoot(t *testing.T) {
	root := t.TempDir()
	uploads, err := storage.New(root)
	require.NoError(t, err)

	outside := filepath.Join(t.TempDir(), "secret.pdf")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o644))

	getter := &fakeApplicationGetter{apps: map[string]model.Application{
		"app-1": {ID: "app-1", ResumePath: outside},
	}}
	h := NewFileHandler(getter, uploads)

	req := httptest.NewRequest(http.MethodGet, "/files/app-1/resume", nil)
	rec := httptest.NewRecorder()
	fileRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
}
