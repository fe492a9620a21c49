package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dtaoOfficial/Interview/internal/model"
	"github.com/dtaoOfficial/Interview/pkg/apierror"
)

type questionService interface {
	AddQuestion(ctx context.Context, req model.QuestionRequest) (model.Question, error)
	QuestionsByRole(ctx context.Context, roleID string) ([]model.Question, error)
	UpdateQuestion(ctx context.Context, id string, req model.QuestionRequest) (model.Question, error)
	DeleteQuestion(ctx context.Context, id string) error
	DeleteQuestionsByRole(ctx context.Context, roleID string) error
}

type payloadCipher interface {
	Encrypt(plaintext []byte) (string, error)
}

type QuestionHandler struct {
	questions questionService
	cipher    payloadCipher
}

func NewQuestionHandler(questions questionService, cipher payloadCipher) *QuestionHandler {
	return &QuestionHandler{questions: questions, cipher: cipher}
}

func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.QuestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	q, err := h.questions.AddQuestion(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, q)
}

// ListByRole serves a role's question set encrypted. The candidate
// client fetches this anonymously before recording answers, so the
// JSON array is ciphered and the response body is the base64 ciphertext
// as plain text. An empty role yields the encryption of "[]", never an
// empty body. If encryption fails the plaintext is not served as a
// fallback.
//
// The role comes from the path or, on the bare collection URL, from the
// roleId query parameter; the browser client uses the query form.
func (h *QuestionHandler) ListByRole(w http.ResponseWriter, r *http.Request) {
	roleID := chi.URLParam(r, "roleId")
	if roleID == "" {
		roleID = r.URL.Query().Get("roleId")
	}

	questions, err := h.questions.QuestionsByRole(r.Context(), roleID)
	if err != nil {
		writeError(w, err)
		return
	}
	if questions == nil {
		questions = []model.Question{}
	}

	payload, err := json.Marshal(questions)
	if err != nil {
		writeError(w, err)
		return
	}

	ciphertext, err := h.cipher.Encrypt(payload)
	if err != nil {
		writeAPIError(w, apierror.New("ENCRYPTION_FAILED", "Could not prepare response", "", http.StatusInternalServerError))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(ciphertext))
}

func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.QuestionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	q, err := h.questions.UpdateQuestion(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, q)
}

func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.questions.DeleteQuestion(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]string{"message": "Question deleted"})
}

// DeleteByRole clears a role's whole question set in one call.
func (h *QuestionHandler) DeleteByRole(w http.ResponseWriter, r *http.Request) {
	if err := h.questions.DeleteQuestionsByRole(r.Context(), chi.URLParam(r, "roleId")); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]string{"message": "Questions deleted"})
}
