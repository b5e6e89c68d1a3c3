package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tierranativa/api"
	"tierranativa/models"
	"tierranativa/session"
)

func TestIsMobileViewport(t *testing.T) {
	cases := []struct {
		name   string
		url    string
		header map[string]string
		want   bool
	}{
		{"no signal is desktop", "/paquetes/admin", nil, false},
		{"vw below threshold", "/paquetes/admin?vw=390", nil, true},
		{"vw at threshold", "/paquetes/admin?vw=768", nil, false},
		{"client hint mobile", "/paquetes/admin", map[string]string{"Sec-CH-Viewport-Width": "414"}, true},
		{"legacy hint desktop", "/paquetes/admin", map[string]string{"Viewport-Width": "1440"}, false},
		{"query wins over header", "/paquetes/admin?vw=1024", map[string]string{"Sec-CH-Viewport-Width": "414"}, false},
		{"garbage ignored", "/paquetes/admin?vw=wide", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tc.url, nil)
			for k, v := range tc.header {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tc.want, IsMobileViewport(r))
		})
	}
}

func loginAs(t *testing.T, m *session.Manager, role string) []*http.Cookie {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	_, err = m.Login(w, r, api.LoginResponse{
		Token: signed,
		Role:  role,
		User:  models.User{Email: "who@test.com", Role: role},
	})
	require.NoError(t, err)
	return w.Result().Cookies()
}

func TestRequireAdmin(t *testing.T) {
	m := session.NewManager("test-secret")
	var reached bool
	handle := RequireAdmin(m, func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		reached = true
	})

	t.Run("anonymous goes to login", func(t *testing.T) {
		reached = false
		w := httptest.NewRecorder()
		handle(w, httptest.NewRequest(http.MethodGet, "/paquetes/admin", nil), nil)
		assert.False(t, reached)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("plain user is denied", func(t *testing.T) {
		reached = false
		r := httptest.NewRequest(http.MethodGet, "/paquetes/admin", nil)
		for _, c := range loginAs(t, m, models.RoleUser) {
			r.AddCookie(c)
		}
		w := httptest.NewRecorder()
		handle(w, r, nil)
		assert.False(t, reached)
		assert.Equal(t, "/home?denied=1", w.Header().Get("Location"))
	})

	t.Run("admin passes", func(t *testing.T) {
		reached = false
		r := httptest.NewRequest(http.MethodGet, "/paquetes/admin", nil)
		for _, c := range loginAs(t, m, models.RoleAdmin) {
			r.AddCookie(c)
		}
		handle(httptest.NewRecorder(), r, nil)
		assert.True(t, reached)
	})
}

func TestRequireAuth(t *testing.T) {
	m := session.NewManager("test-secret")
	handle := RequireAuth(m, func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	handle(w, httptest.NewRequest(http.MethodGet, "/x", nil), nil)
	assert.Equal(t, "/session-expired", w.Header().Get("Location"))

	r := httptest.NewRequest(http.MethodGet, "/x", nil)
	for _, c := range loginAs(t, m, models.RoleUser) {
		r.AddCookie(c)
	}
	w = httptest.NewRecorder()
	handle(w, r, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
