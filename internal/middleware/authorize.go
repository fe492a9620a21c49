package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dtaoOfficial/Interview/internal/model"
)

// accessRule maps one (method, path) shape to an access requirement.
// Method "" matches any method; prefix rules match the path and
// everything below it.
type accessRule struct {
	method    string
	path      string
	prefix    bool
	anonymous bool
}

// accessRules is evaluated top to bottom, first match wins. Order
// mirrors the access model of the admin portal and candidate site:
//
//  1. CORS pre-flight is always allowed.
//  2. Health probe and the candidate-facing /api/public surface are open.
//  3. Login and registration are open by definition.
//  4. Two admin reads are open so candidates can discover roles and
//     load their screening questions: GET /api/admin/roles (exact) and
//     GET /api/admin/questions (the listing is served encrypted).
//  5. Everything else under /api/admin, and any unlisted path, requires
//     an authenticated principal.
var accessRules = []accessRule{
	{method: http.MethodOptions, path: "/", prefix: true, anonymous: true},
	{path: "/health", anonymous: true},
	{path: "/api/public/", prefix: true, anonymous: true},
	{path: "/api/auth/", prefix: true, anonymous: true},
	{path: "/api/admin/auth/", prefix: true, anonymous: true},
	{method: http.MethodGet, path: "/api/admin/roles", anonymous: true},
	{method: http.MethodGet, path: "/api/admin/questions", prefix: true, anonymous: true},
	{path: "/api/admin/", prefix: true},
	{path: "/", prefix: true},
}

func (r accessRule) matches(method string, path string) bool {
	if r.method != "" && r.method != method {
		return false
	}
	if r.prefix {
		// Prefix rules only match whole path segments, so a rule for
		// /api/admin/questions never covers /api/admin/questionsX.
		base := strings.TrimSuffix(r.path, "/")
		return path == base || strings.HasPrefix(path, base+"/")
	}
	return path == r.path
}

// Authorize enforces the access rules against the authentication
// context the gate populated. The decision is recomputed from scratch
// on every request; no session state carries across requests.
func Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ruleFor(r.Method, r.URL.Path).anonymous {
			next.ServeHTTP(w, r)
			return
		}

		if _, ok := PrincipalFromContext(r.Context()); !ok {
			writeUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func ruleFor(method string, path string) accessRule {
	for _, rule := range accessRules {
		if rule.matches(method, path) {
			return rule
		}
	}
	// The trailing catch-all makes this unreachable; deny anyway.
	return accessRule{}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: false,
		Error: &model.APIError{
			Code:    "UNAUTHORIZED",
			Message: "authentication required",
		},
	})
}
