package auth

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "wj_session"
	userIDKey   = "userId"
)

// Sessions wraps the signed cookie store. The session carries a single value,
// the user id; every mutation goes through Commit or Destroy so a Set-Cookie
// header is always produced explicitly.
type Sessions struct {
	store *sessions.CookieStore
}

func NewSessions(secret string) *Sessions {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Sessions{store: store}
}

// UserID returns the user id carried by the request's session, or "" when
// there is no session or it names no user. A cookie that fails signature
// verification counts as no session.
func (s *Sessions) UserID(r *http.Request) string {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		return ""
	}
	id, _ := session.Values[userIDKey].(string)
	return id
}

// Commit writes a session naming the user id.
func (s *Sessions) Commit(w http.ResponseWriter, r *http.Request, userID string) error {
	session, _ := s.store.Get(r, sessionName)
	session.Values[userIDKey] = userID
	return session.Save(r, w)
}

// Destroy expires the session cookie, whether or not a session exists.
func (s *Sessions) Destroy(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, sessionName)
	for k := range session.Values {
		delete(session.Values, k)
	}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
