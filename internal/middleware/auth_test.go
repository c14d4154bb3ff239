package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecokosova-dashboard/internal/models"
	"ecokosova-dashboard/internal/session"
)

func protected(tokens *session.TokenIssuer, roles ...string) http.Handler {
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ := GetUserFromContext(r)
		w.Write([]byte(claims.Email))
	})
	for _, role := range roles {
		h = RequireRole(role)(h)
	}
	return Auth(tokens)(h)
}

func TestAuth(t *testing.T) {
	tokens := session.NewTokenIssuer("secret", time.Hour)
	tok, err := tokens.Issue(models.User{ID: "u1", Email: "joe@x.com", Role: models.RoleOperator})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		roles  []string
		status int
	}{
		{"missing header", "", nil, http.StatusUnauthorized},
		{"wrong scheme", "Basic " + tok, nil, http.StatusUnauthorized},
		{"garbage token", "Bearer nope", nil, http.StatusUnauthorized},
		{"valid", "Bearer " + tok, nil, http.StatusOK},
		{"valid but not admin", "Bearer " + tok, []string{"admin"}, http.StatusForbidden},
		{"valid operator role", "Bearer " + tok, []string{"operator"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/x", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			protected(tokens, tt.roles...).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "joe@x.com", rec.Body.String())
			}
		})
	}
}
