package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtaoOfficial/Interview/internal/model"
)

func TestAuthorizeRuleTable(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Authorize(okHandler)

	tests := []struct {
		name          string
		method        string
		path          string
		authenticated bool
		wantStatus    int
	}{
		{"preflight always allowed", http.MethodOptions, "/api/admin/applications", false, http.StatusOK},
		{"health open", http.MethodGet, "/health", false, http.StatusOK},
		{"public roles open", http.MethodGet, "/api/public/roles", false, http.StatusOK},
		{"public apply open", http.MethodPost, "/api/public/apply", false, http.StatusOK},
		{"public share open", http.MethodGet, "/api/public/share/abc/resume", false, http.StatusOK},
		{"login open", http.MethodPost, "/api/auth/login", false, http.StatusOK},
		{"register open", http.MethodPost, "/api/auth/register", false, http.StatusOK},
		{"role listing readable anonymously", http.MethodGet, "/api/admin/roles", false, http.StatusOK},
		{"question listing readable anonymously", http.MethodGet, "/api/admin/questions", false, http.StatusOK},
		{"question listing subpath readable anonymously", http.MethodGet, "/api/admin/questions/q1", false, http.StatusOK},
		{"role detail read requires auth", http.MethodGet, "/api/admin/roles/r1", false, http.StatusUnauthorized},
		{"role create requires auth", http.MethodPost, "/api/admin/roles", false, http.StatusUnauthorized},
		{"question create requires auth", http.MethodPost, "/api/admin/questions", false, http.StatusUnauthorized},
		{"applications require auth", http.MethodGet, "/api/admin/applications", false, http.StatusUnauthorized},
		{"admin files require auth", http.MethodGet, "/api/admin/files/a1/resume", false, http.StatusUnauthorized},
		{"unlisted path requires auth", http.MethodGet, "/metrics", false, http.StatusUnauthorized},
		{"question prefix near-miss requires auth", http.MethodGet, "/api/admin/questionsX", false, http.StatusUnauthorized},
		{"public prefix near-miss requires auth", http.MethodGet, "/api/publicX/roles", false, http.StatusUnauthorized},
		{"authenticated admin write allowed", http.MethodPost, "/api/admin/roles", true, http.StatusOK},
		{"authenticated application read allowed", http.MethodGet, "/api/admin/applications", true, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.authenticated {
				req = req.WithContext(WithPrincipal(req.Context(), model.Principal{
					Email: "admin@example.com",
					Role:  "ADMIN",
				}))
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthorizeDenialBody(t *testing.T) {
	handler := Authorize(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/applications", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}
