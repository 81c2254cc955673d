package journal

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"workjournal/internal/auth"
	"workjournal/views/models"
	"workjournal/views/pages"
)

// Handler serves the journal pages, the form endpoints and the JSON API.
type Handler struct {
	svc  *Service
	gate *auth.Gate
	log  *slog.Logger
}

func NewHandler(svc *Service, gate *auth.Gate, log *slog.Logger) *Handler {
	return &Handler{svc: svc, gate: gate, log: log}
}

// --- Web handlers ---

// JournalPage handles GET /
func (h *Handler) JournalPage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	userID, err := h.gate.CurrentUserID(w, r)
	if err != nil {
		h.log.Error("failed to resolve session", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	view, err := h.journalView(r, userID != "")
	if err != nil {
		h.log.Error("failed to load journal", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pages.JournalPage(*view).Render(r.Context(), w)
}

// CreateEntry handles POST /entries
func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	form := entryFormFromRequest(r, "")

	res, err := h.svc.Submit(r.Context(), form)
	if err != nil {
		h.log.Error("failed to create entry", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if res.Errors != nil {
		view, verr := h.journalView(r, true)
		if verr != nil {
			h.log.Error("failed to load journal", "error", verr)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		view.Form = formViewFromSubmission("/entries", IntentCreate, false, form, res.Errors)
		w.WriteHeader(http.StatusBadRequest)
		pages.JournalPage(*view).Render(r.Context(), w)
		return
	}

	http.Redirect(w, r, res.RedirectTo, http.StatusSeeOther)
}

// EditEntryPage handles GET /entries/{id}/edit
func (h *Handler) EditEntryPage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	entry, err := h.svc.GetByID(r.Context(), id)
	if errors.Is(err, ErrEntryNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.log.Error("failed to get entry", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	view := models.EditEntryView{
		EntryID: id,
		Form: models.EntryFormView{
			Action:    "/entries/" + id,
			Intent:    string(IntentUpdate),
			CanDelete: true,
			EntryID:   id,
			Date:      entry.Date.Format(DateLayout),
			Category:  string(entry.Category),
			Text:      entry.Text,
		},
	}
	pages.EditEntryPage(view).Render(r.Context(), w)
}

// SubmitEntry handles POST /entries/{id} (update and delete intents)
func (h *Handler) SubmitEntry(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	form := entryFormFromRequest(r, id)

	res, err := h.svc.Submit(r.Context(), form)
	if errors.Is(err, ErrEntryNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.log.Error("failed to submit entry", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if res.Errors != nil {
		view := models.EditEntryView{
			EntryID: id,
			Form:    *formViewFromSubmission("/entries/"+id, IntentUpdate, true, form, res.Errors),
		}
		w.WriteHeader(http.StatusBadRequest)
		pages.EditEntryPage(view).Render(r.Context(), w)
		return
	}

	http.Redirect(w, r, res.RedirectTo, http.StatusSeeOther)
}

// --- JSON API handlers ---

// ListEntriesAPI handles GET /api/entries
func (h *Handler) ListEntriesAPI(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context())
	if err != nil {
		h.log.Error("failed to list entries", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.jsonResponse(w, entries, http.StatusOK)
}

// GetEntryAPI handles GET /api/entries/{id}
func (h *Handler) GetEntryAPI(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.GetByID(r.Context(), r.PathValue("id"))
	if errors.Is(err, ErrEntryNotFound) {
		h.jsonError(w, "entry not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error("failed to get entry", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.jsonResponse(w, entry, http.StatusOK)
}

// --- Helper methods ---

func (h *Handler) jsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// journalView loads the week sections and, for a logged-in caller, a fresh
// create form.
func (h *Handler) journalView(r *http.Request, loggedIn bool) (*models.JournalView, error) {
	weeks, err := h.svc.Weeks(r.Context())
	if err != nil {
		return nil, err
	}

	view := &models.JournalView{
		LoggedIn: loggedIn,
		Weeks:    h.weeksToViews(weeks),
	}
	if loggedIn {
		view.Form = &models.EntryFormView{
			Action:   "/entries",
			Intent:   string(IntentCreate),
			Date:     time.Now().Format(DateLayout),
			Category: string(CategoryWork),
		}
	}
	return view, nil
}

// --- View model converters ---

func (h *Handler) weeksToViews(weeks []WeekBucket) []models.WeekView {
	views := make([]models.WeekView, len(weeks))
	for i, week := range weeks {
		heading := week.Sunday
		if sunday, err := time.Parse(DateLayout, week.Sunday); err == nil {
			heading = "Week of " + sunday.Format("January 2, 2006")
		}
		views[i] = models.WeekView{
			Sunday:   week.Sunday,
			Heading:  heading,
			Work:     h.entriesToViews(week.ForCategory(CategoryWork)),
			Learning: h.entriesToViews(week.ForCategory(CategoryLearning)),
			Interest: h.entriesToViews(week.ForCategory(CategoryInterest)),
		}
	}
	return views
}

func (h *Handler) entriesToViews(entries []Entry) []models.EntryView {
	views := make([]models.EntryView, len(entries))
	for i, e := range entries {
		views[i] = models.EntryView{
			ID:       e.ID.Hex(),
			Date:     e.Date.Format(DateLayout),
			Category: string(e.Category),
			Text:     e.Text,
			HTML:     h.svc.RenderMarkdown(e.Text),
		}
	}
	return views
}

func entryFormFromRequest(r *http.Request, entryID string) EntryForm {
	return EntryForm{
		Date:     r.FormValue("date"),
		Category: r.FormValue("category"),
		Text:     r.FormValue("content"),
		Intent:   r.FormValue("intent"),
		EntryID:  entryID,
	}
}

// formViewFromSubmission echoes a failed submission back into the form along
// with its validation report.
func formViewFromSubmission(action string, intent Intent, canDelete bool, form EntryForm, errs *FieldErrors) *models.EntryFormView {
	return &models.EntryFormView{
		Action:         action,
		Intent:         string(intent),
		CanDelete:      canDelete,
		EntryID:        form.EntryID,
		Date:           form.Date,
		Category:       form.Category,
		Text:           form.Text,
		DateErrors:     errs.Field("date"),
		CategoryErrors: errs.Field("category"),
		TextErrors:     errs.Field("content"),
		FormErrors:     errs.Form,
	}
}
