package handler

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dtaoOfficial/Interview/internal/model"
	"github.com/dtaoOfficial/Interview/internal/storage"
)

type applicationGetter interface {
	Get(ctx context.Context, id string) (model.Application, error)
}

// FileHandler streams stored submission files. The same handler backs
// the authenticated admin route and the shareable public route; the
// routing policy decides who gets in.
type FileHandler struct {
	apps    applicationGetter
	uploads *storage.Uploads
}

func NewFileHandler(apps applicationGetter, uploads *storage.Uploads) *FileHandler {
	return &FileHandler{apps: apps, uploads: uploads}
}

// Detail returns one application record so a shared profile link can
// render the candidate summary next to the file links.
func (h *FileHandler) Detail(w http.ResponseWriter, r *http.Request) {
	app, err := h.apps.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, app)
}

// Serve streams the resume or interview video of one application. A
// record whose requested file was never uploaded (a role without video,
// say) is a 404, not a 500.
func (h *FileHandler) Serve(w http.ResponseWriter, r *http.Request) {
	app, err := h.apps.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	var path string
	switch chi.URLParam(r, "kind") {
	case "resume":
		path = app.ResumePath
	case "video":
		path = app.VideoPath
	default:
		writeError(w, model.ErrFileMissing)
		return
	}

	if path == "" {
		writeError(w, model.ErrFileMissing)
		return
	}

	file, err := h.uploads.Open(path)
	if err != nil {
		writeError(w, model.ErrFileMissing)
		return
	}
	defer file.Close()

	name := filepath.Base(path)
	w.Header().Set("Content-Type", contentTypeFor(name))
	w.Header().Set("Content-Disposition", `inline; filename="`+name+`"`)

	_, _ = io.Copy(w, file)
}

func contentTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "application/pdf"
	case ".webm":
		return "video/webm"
	case ".mp4":
		return "video/mp4"
	default:
		return "application/octet-stream"
	}
}
