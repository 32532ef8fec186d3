package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sbexpress/hris-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAuth = jwtauth.New("HS256", []byte("middleware-test-secret"), nil)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func serve(t *testing.T, h http.Handler, claims map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if claims != nil {
		_, tokenString, err := testAuth.Encode(claims)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tokenString)
	}
	rec := httptest.NewRecorder()
	jwtauth.Verifier(testAuth)(h).ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	h := AuthRequired(http.HandlerFunc(okHandler))

	t.Run("no token", func(t *testing.T) {
		rec := serve(t, h, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong token type", func(t *testing.T) {
		rec := serve(t, h, map[string]interface{}{"user_id": 1, "type": "refresh"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing user id", func(t *testing.T) {
		rec := serve(t, h, map[string]interface{}{"type": "access"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid access token", func(t *testing.T) {
		rec := serve(t, h, map[string]interface{}{"user_id": 7, "type": "access", "role": "staff"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	h := AuthRequired(RequireEmployeeManager(http.HandlerFunc(okHandler)))

	cases := []struct {
		role user.Role
		want int
	}{
		{user.RoleAdmin, http.StatusOK},
		{user.RoleHRD, http.StatusOK},
		{user.RoleStaff, http.StatusForbidden},
		{"", http.StatusForbidden},
	}
	for _, c := range cases {
		t.Run(string(c.role), func(t *testing.T) {
			rec := serve(t, h, map[string]interface{}{"user_id": 7, "type": "access", "role": string(c.role)})
			assert.Equal(t, c.want, rec.Code)
		})
	}
}
