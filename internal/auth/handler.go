package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"

	"workjournal/views/models"
	"workjournal/views/pages"
)

const (
	passwordMinLen = 6
	passwordMaxLen = 32
)

// Handler serves the login and logout endpoints.
type Handler struct {
	gate     *Gate
	sessions *Sessions
	log      *slog.Logger
}

func NewHandler(gate *Gate, sessions *Sessions, log *slog.Logger) *Handler {
	return &Handler{gate: gate, sessions: sessions, log: log}
}

// LoginPage handles GET /login
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	view := models.LoginView{
		RedirectTo: r.URL.Query().Get("redirectTo"),
	}
	pages.LoginPage(view).Render(r.Context(), w)
}

// Login handles POST /login. Validation and credential failures re-render
// with 400; the password value is never echoed back.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	redirectTo := r.FormValue("redirectTo")

	view := models.LoginView{Email: email, RedirectTo: redirectTo}

	if _, err := mail.ParseAddress(email); err != nil {
		view.EmailErrors = append(view.EmailErrors, "Invalid email")
	}
	switch n := utf8.RuneCountInString(password); {
	case n < passwordMinLen:
		view.PasswordErrors = append(view.PasswordErrors, "String must contain at least 6 character(s)")
	case n > passwordMaxLen:
		view.PasswordErrors = append(view.PasswordErrors, "String must contain at most 32 character(s)")
	}
	if len(view.EmailErrors) > 0 || len(view.PasswordErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		pages.LoginPage(view).Render(r.Context(), w)
		return
	}

	userID, err := h.gate.Login(r.Context(), email, password)
	if errors.Is(err, ErrInvalidCredentials) {
		view.FormErrors = append(view.FormErrors, "Invalid username or password")
		w.WriteHeader(http.StatusBadRequest)
		pages.LoginPage(view).Render(r.Context(), w)
		return
	}
	if err != nil {
		h.log.Error("failed to log in", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := h.sessions.Commit(w, r, userID); err != nil {
		h.log.Error("failed to write session", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, safeRedirect(redirectTo), http.StatusSeeOther)
}

// Logout handles POST /logout. The session is destroyed whether or not one
// exists.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(w, r); err != nil {
		h.log.Error("failed to destroy session", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// LogoutRedirect handles GET /logout by sending the caller home.
func (h *Handler) LogoutRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// safeRedirect only honors local paths, falling back to the home view.
func safeRedirect(to string) string {
	if to == "" || !strings.HasPrefix(to, "/") {
		return "/"
	}
	if strings.HasPrefix(to, "//") || strings.HasPrefix(to, "/\\") {
		return "/"
	}
	return to
}
