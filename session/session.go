// Package session keeps the per-browser auth state: bearer token, role,
// simplified profile, and expiry. It is the one writer of that state; every
// page re-reads it per request, so a logout or role change is visible on
// the very next render.
package session

import (
	"encoding/gob"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"tierranativa/api"
	"tierranativa/models"
)

const (
	cookieName = "tn-session"

	keySID    = "sid"
	keyToken  = "jwtToken"
	keyRole   = "userRole"
	keyUser   = "user"
	keyExpiry = "token_expiry" // epoch millis
)

// DefaultTTL bounds a session when the token carries no exp claim.
const DefaultTTL = 6 * time.Hour

// State is the explicit gate every view selects on.
type State int

const (
	Anonymous State = iota
	AuthenticatedUser
	AuthenticatedAdmin
)

// Flash is a one-shot notification carried across a POST-redirect-GET.
type Flash struct {
	Kind    string // success, error, warning
	Title   string
	Message string
}

func init() {
	gob.Register(Flash{})
}

// Session is the decoded cookie state for one request.
type Session struct {
	ID        string
	Token     string
	Role      string
	User      models.User
	ExpiresAt time.Time
}

func (s *Session) State() State {
	if s == nil || s.Token == "" {
		return Anonymous
	}
	if s.Role == models.RoleAdmin {
		return AuthenticatedAdmin
	}
	return AuthenticatedUser
}

func (s *Session) IsAdmin() bool { return s.State() == AuthenticatedAdmin }

func (s *Session) Expired(now time.Time) bool {
	return s == nil || !now.Before(s.ExpiresAt)
}

// Manager wraps the cookie store. Single writer for all session keys.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(DefaultTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// Current returns the live session, or nil for anonymous. Expired sessions
// are cleared on the spot so no later read can resurrect them.
func (m *Manager) Current(w http.ResponseWriter, r *http.Request) *Session {
	raw, _ := m.store.Get(r, cookieName)
	token, _ := raw.Values[keyToken].(string)
	if token == "" {
		return nil
	}

	s := &Session{Token: token}
	s.ID, _ = raw.Values[keySID].(string)
	s.Role, _ = raw.Values[keyRole].(string)
	if millis, ok := raw.Values[keyExpiry].(int64); ok {
		s.ExpiresAt = time.UnixMilli(millis)
	}
	if userJSON, ok := raw.Values[keyUser].(string); ok {
		_ = json.Unmarshal([]byte(userJSON), &s.User)
	}

	if s.Expired(time.Now()) {
		_ = m.Clear(w, r)
		return nil
	}
	return s
}

// Login records a successful authentication. Expiry comes from the token's
// exp claim when parseable, else DefaultTTL from now.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, resp api.LoginResponse) (*Session, error) {
	role := resp.Role
	if role == "" {
		role = resp.User.Role
	}
	s := &Session{
		ID:        uuid.NewString(),
		Token:     resp.Token,
		Role:      role,
		User:      resp.User,
		ExpiresAt: TokenExpiry(resp.Token, time.Now()),
	}
	if s.User.Role == "" {
		s.User.Role = role
	}

	raw, _ := m.store.Get(r, cookieName)
	userJSON, err := json.Marshal(s.User)
	if err != nil {
		return nil, err
	}
	raw.Values[keySID] = s.ID
	raw.Values[keyToken] = s.Token
	raw.Values[keyRole] = s.Role
	raw.Values[keyUser] = string(userJSON)
	raw.Values[keyExpiry] = s.ExpiresAt.UnixMilli()
	if err := raw.Save(r, w); err != nil {
		return nil, err
	}
	log.Printf("session %s opened for %s (%s)", s.ID, s.User.Email, s.Role)
	return s, nil
}

// Clear drops every session key and expires the cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	raw, _ := m.store.Get(r, cookieName)
	for _, key := range []string{keySID, keyToken, keyRole, keyUser, keyExpiry} {
		delete(raw.Values, key)
	}
	raw.Options.MaxAge = -1
	return raw.Save(r, w)
}

// AddFlash queues a one-shot notification.
func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, f Flash) {
	raw, _ := m.store.Get(r, cookieName)
	raw.AddFlash(f)
	_ = raw.Save(r, w)
}

// Flashes pops the queued notifications.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	raw, _ := m.store.Get(r, cookieName)
	var out []Flash
	for _, f := range raw.Flashes() {
		if flash, ok := f.(Flash); ok {
			out = append(out, flash)
		}
	}
	if len(out) > 0 {
		_ = raw.Save(r, w)
	}
	return out
}

// TokenExpiry reads the exp claim without verifying the signature; the
// backend is the verifier, this side only needs the timestamp. Tokens
// without a readable exp get now+DefaultTTL.
func TokenExpiry(token string, now time.Time) time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil && exp.After(now) {
			return exp.Time
		}
	}
	return now.Add(DefaultTTL)
}
