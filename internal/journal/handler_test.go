package journal

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"workjournal/internal/auth"
)

type noUserStore struct{}

func (noUserStore) FindByID(ctx context.Context, idHex string) (*auth.User, error) {
	return nil, auth.ErrUserNotFound
}

func (noUserStore) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	return nil, auth.ErrUserNotFound
}

func newTestHandler(t *testing.T) (*Handler, *fakeEntryStore) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := newFakeEntryStore()
	gate := auth.NewGate(noUserStore{}, auth.NewSessions("test-secret"), logger)
	return NewHandler(NewService(store), gate, logger), store
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestJournalPageRendersWeeks(t *testing.T) {
	handler, store := newTestHandler(t)
	seedEntry(t, store, "2024-01-08", CategoryWork, "finished the quarterly planning doc")
	seedEntry(t, store, "2024-01-15", CategoryLearning, "read up on mongo aggregation stages")

	rec := httptest.NewRecorder()
	handler.JournalPage(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Week of January 7, 2024")
	assert.Contains(t, body, "Week of January 14, 2024")
	assert.Contains(t, body, "finished the quarterly planning doc")
	assert.Contains(t, body, "read up on mongo aggregation stages")
	// Anonymous callers do not get the create form.
	assert.NotContains(t, body, "Create a new entry")
}

func TestJournalPageEmptyState(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.JournalPage(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No entries yet.")
}

func TestCreateEntryValidationFailure(t *testing.T) {
	handler, store := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.CreateEntry(rec, postForm("/entries", url.Values{
		"date":     {"2024-01-08"},
		"category": {"work"},
		"content":  {"too short"},
		"intent":   {"create"},
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "String must contain at least 15 character(s)")

	entries, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreateEntryRedirects(t *testing.T) {
	handler, store := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.CreateEntry(rec, postForm("/entries", url.Values{
		"date":     {"2024-01-08"},
		"category": {"work"},
		"content":  {"finished the quarterly planning doc"},
		"intent":   {"create"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	entries, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSubmitEntryUpdateRedirectsToEdit(t *testing.T) {
	handler, store := newTestHandler(t)
	seeded := seedEntry(t, store, "2024-01-08", CategoryWork, "finished the quarterly planning doc")

	req := postForm("/entries/"+seeded.ID.Hex(), url.Values{
		"date":     {"2024-01-09"},
		"category": {"learning"},
		"content":  {"rewrote the doc after review feedback"},
		"intent":   {"update"},
	})
	req.SetPathValue("id", seeded.ID.Hex())

	rec := httptest.NewRecorder()
	handler.SubmitEntry(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/entries/"+seeded.ID.Hex()+"/edit", rec.Header().Get("Location"))
}

func TestSubmitEntryNotFound(t *testing.T) {
	handler, _ := newTestHandler(t)
	id := primitive.NewObjectID().Hex()

	req := postForm("/entries/"+id, url.Values{
		"date":     {"2024-01-08"},
		"category": {"work"},
		"content":  {"finished the quarterly planning doc"},
		"intent":   {"delete"},
	})
	req.SetPathValue("id", id)

	rec := httptest.NewRecorder()
	handler.SubmitEntry(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditEntryPage(t *testing.T) {
	handler, store := newTestHandler(t)
	seeded := seedEntry(t, store, "2024-01-08", CategoryWork, "finished the quarterly planning doc")

	req := httptest.NewRequest(http.MethodGet, "/entries/"+seeded.ID.Hex()+"/edit", nil)
	req.SetPathValue("id", seeded.ID.Hex())

	rec := httptest.NewRecorder()
	handler.EditEntryPage(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "finished the quarterly planning doc")
	assert.Contains(t, body, `value="2024-01-08"`)
	assert.Contains(t, body, `value="delete"`)
}

func TestListEntriesAPI(t *testing.T) {
	handler, store := newTestHandler(t)
	seedEntry(t, store, "2024-01-08", CategoryWork, "finished the quarterly planning doc")

	rec := httptest.NewRecorder()
	handler.ListEntriesAPI(rec, httptest.NewRequest(http.MethodGet, "/api/entries", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var entries []Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, CategoryWork, entries[0].Category)
}

func TestGetEntryAPINotFound(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/entries/unknown", nil)
	req.SetPathValue("id", "unknown")

	rec := httptest.NewRecorder()
	handler.GetEntryAPI(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "entry not found")
}
