package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"golang.org/x/crypto/bcrypt"
)

type ctxKey struct{}

// WithUserID returns a context carrying the authenticated user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// Gate resolves sessions to users and guards handlers on login state.
type Gate struct {
	users    UserStore
	sessions *Sessions
	log      *slog.Logger
}

func NewGate(users UserStore, sessions *Sessions, log *slog.Logger) *Gate {
	return &Gate{users: users, sessions: sessions, log: log}
}

// CurrentUserID resolves the request's session to a user id, or "" for an
// anonymous caller. A session naming a user that no longer exists is
// destroyed and the caller treated as anonymous. Store failures other than
// not-found are returned and terminal for the request.
func (g *Gate) CurrentUserID(w http.ResponseWriter, r *http.Request) (string, error) {
	userID := g.sessions.UserID(r)
	if userID == "" {
		return "", nil
	}

	_, err := g.users.FindByID(r.Context(), userID)
	if errors.Is(err, ErrUserNotFound) {
		if derr := g.sessions.Destroy(w, r); derr != nil {
			g.log.Error("failed to destroy stale session", "error", derr)
		}
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

// RequireUser redirects anonymous callers to the login view, carrying the
// originally requested path and query as redirectTo. Authenticated requests
// proceed with the user id on the context.
func (g *Gate) RequireUser(next http.Handler) http.Handler {
	return g.requireUser(next, true)
}

// RequireUserNoReturn is RequireUser without the redirectTo parameter, for
// pages the caller should not be sent back to after logging in.
func (g *Gate) RequireUserNoReturn(next http.Handler) http.Handler {
	return g.requireUser(next, false)
}

func (g *Gate) requireUser(next http.Handler, withRedirectTo bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := g.CurrentUserID(w, r)
		if err != nil {
			g.log.Error("failed to resolve session", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if userID == "" {
			target := "/login"
			if withRedirectTo {
				redirectTo := r.URL.Path
				if r.URL.RawQuery != "" {
					redirectTo += "?" + r.URL.RawQuery
				}
				params := url.Values{"redirectTo": {redirectTo}}
				target += "?" + params.Encode()
			}
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// RequireAnonymous redirects authenticated callers to the home view.
func (g *Gate) RequireAnonymous(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := g.CurrentUserID(w, r)
		if err != nil {
			g.log.Error("failed to resolve session", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if userID != "" {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Login verifies credentials and returns the user id. Every failure mode maps
// to ErrInvalidCredentials so callers cannot enumerate accounts.
func (g *Gate) Login(ctx context.Context, email, password string) (string, error) {
	user, err := g.users.FindByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return user.ID.Hex(), nil
}
