package handler

import (
	"context"
	"crypto/aes"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtaoOfficial/Interview/internal/model"
	"github.com/dtaoOfficial/Interview/internal/secure"
)

type fakeQuestionService struct {
	byRole map[string][]model.Question
	err    error
}

func (f *fakeQuestionService) AddQuestion(_ context.Context, req model.QuestionRequest) (model.Question, error) {
	return model.Question{ID: "new", RoleID: req.RoleID, Text: req.Text, Duration: req.Duration}, f.err
}

func (f *fakeQuestionService) QuestionsByRole(_ context.Context, roleID string) ([]model.Question, error) {
	return f.byRole[roleID], f.err
}

func (f *fakeQuestionService) UpdateQuestion(_ context.Context, id string, req model.QuestionRequest) (model.Question, error) {
	return model.Question{ID: id, Text: req.Text, Duration: req.Duration}, f.err
}

func (f *fakeQuestionService) DeleteQuestion(_ context.Context, _ string) error {
	return f.err
}

func (f *fakeQuestionService) DeleteQuestionsByRole(_ context.Context, _ string) error {
	return f.err
}

type failingCipher struct{}

func (failingCipher) Encrypt(_ []byte) (string, error) {
	return "", assert.AnError
}

// decryptECB reverses the payload cipher the way the browser client
// does: SHA-1 derived key, AES-ECB, strip PKCS#5 padding.
func decryptECB(t *testing.T, passphrase string, encoded string) []byte {
	t.Helper()

	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	sum := sha1.Sum([]byte(passphrase))
	block, err := aes.NewCipher(sum[:16])
	require.NoError(t, err)

	bs := block.BlockSize()
	require.Zero(t, len(raw)%bs)

	out := make([]byte, len(raw))
	for i := 0; i < len(raw); i += bs {
		block.Decrypt(out[i:i+bs], raw[i:i+bs])
	}

	pad := int(out[len(out)-1])
	require.LessOrEqual(t, pad, bs)
	return out[:len(out)-pad]
}

func questionRouter(h *QuestionHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/questions", h.Create)
	r.Get("/questions", h.ListByRole)
	r.Get("/questions/{roleId}", h.ListByRole)
	r.Put("/questions/{id}", h.Update)
	r.Delete("/questions/{id}", h.Delete)
	return r
}

func TestListByRoleServesCiphertext(t *testing.T) {
	const passphrase = "unit-test-passphrase"
	questions := []model.Question{
		{ID: "q1", RoleID: "role-1", Text: "Tell us about yourself.", Duration: 90},
		{ID: "q2", RoleID: "role-1", Text: "Why this role?", Duration: 60},
	}

	h := NewQuestionHandler(
		&fakeQuestionService{byRole: map[string][]model.Question{"role-1": questions}},
		secure.NewCipher(passphrase),
	)

	req := httptest.NewRequest(http.MethodGet, "/questions/role-1", nil)
	rec := httptest.NewRecorder()
	questionRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")

	// The body must not leak question text.
	assert.NotContains(t, rec.Body.String(), "Tell us about yourself.")

	var decoded []model.Question
	plaintext := decryptECB(t, passphrase, rec.Body.String())
	require.NoError(t, json.Unmarshal(plaintext, &decoded))
	assert.Equal(t, questions, decoded)
}

func TestListByRoleQueryParameterForm(t *testing.T) {
	const passphrase = "unit-test-passphrase"
	questions := []model.Question{
		{ID: "q1", RoleID: "role-1", Text: "Why us?", Duration: 60},
	}

	h := NewQuestionHandler(
		&fakeQuestionService{byRole: map[string][]model.Question{"role-1": questions}},
		secure.NewCipher(passphrase),
	)

	req := httptest.NewRequest(http.MethodGet, "/questions?roleId=role-1", nil)
	rec := httptest.NewRecorder()
	questionRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var decoded []model.Question
	require.NoError(t, json.Unmarshal(decryptECB(t, passphrase, rec.Body.String()), &decoded))
	assert.Equal(t, questions, decoded)
}

func TestListByRoleEmptySetStillEncrypted(t *testing.T) {
	const passphrase = "unit-test-passphrase"
	h := NewQuestionHandler(&fakeQuestionService{byRole: map[string][]model.Question{}}, secure.NewCipher(passphrase))

	req := httptest.NewRequest(http.MethodGet, "/questions/role-without-questions", nil)
	rec := httptest.NewRecorder()
	questionRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", string(decryptECB(t, passphrase, rec.Body.String())))
}

func TestListByRoleNeverFallsBackToPlaintext(t *testing.T) {
	h := NewQuestionHandler(
		&fakeQuestionService{byRole: map[string][]model.Question{
			"role-1": {{ID: "q1", RoleID: "role-1", Text: "Secret question", Duration: 30}},
		}},
		failingCipher{},
	)

	req := httptest.NewRequest(http.MethodGet, "/questions/role-1", nil)
	rec := httptest.NewRecorder()
	questionRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Secret question")
}

func TestCreateQuestionValidates(t *testing.T) {
	h := NewQuestionHandler(&fakeQuestionService{}, secure.NewCipher("x"))

	req := httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(`{"text":"No role"}`))
	rec := httptest.NewRecorder()
	questionRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateQuestion(t *testing.T) {
	h := NewQuestionHandler(&fakeQuestionService{}, secure.NewCipher("x"))

	req := httptest.NewRequest(http.MethodPost, "/questions",
		strings.NewReader(`{"roleId":"role-1","text":"New question","duration":45}`))
	rec := httptest.NewRecorder()
	questionRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "New question")
}
