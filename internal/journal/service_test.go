package journal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- fake store ---

type fakeEntryStore struct {
	entries map[primitive.ObjectID]Entry
	order   []primitive.ObjectID

	insertErr error
	updateErr error
	deleteErr error
	listErr   error
}

func newFakeEntryStore() *fakeEntryStore {
	return &fakeEntryStore{entries: make(map[primitive.ObjectID]Entry)}
}

func (f *fakeEntryStore) Insert(ctx context.Context, e *Entry) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	e.ID = primitive.NewObjectID()
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	f.entries[e.ID] = *e
	f.order = append(f.order, e.ID)
	return nil
}

func (f *fakeEntryStore) Update(ctx context.Context, id primitive.ObjectID, d Draft) (*Entry, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	e, ok := f.entries[id]
	if !ok {
		return nil, ErrEntryNotFound
	}
	e.Date = d.Date
	e.Category = d.Category
	e.Text = d.Text
	e.UpdatedAt = time.Now()
	f.entries[id] = e
	return &e, nil
}

func (f *fakeEntryStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.entries[id]; !ok {
		return ErrEntryNotFound
	}
	delete(f.entries, id)
	return nil
}

func (f *fakeEntryStore) FindByID(ctx context.Context, id primitive.ObjectID) (*Entry, error) {
	e, ok := f.entries[id]
	if !ok {
		return nil, ErrEntryNotFound
	}
	return &e, nil
}

func (f *fakeEntryStore) ListAll(ctx context.Context) ([]Entry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]Entry, 0, len(f.order))
	for _, id := range f.order {
		if e, ok := f.entries[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func seedEntry(t *testing.T, store *fakeEntryStore, date string, category Category, text string) Entry {
	t.Helper()
	e := dayEntry(t, date, category, text)
	require.NoError(t, store.Insert(context.Background(), &e))
	return e
}

// --- tests ---

func TestSubmitCreate(t *testing.T) {
	store := newFakeEntryStore()
	svc := NewService(store)

	res, err := svc.Submit(context.Background(), validCreateForm())
	require.NoError(t, err)
	assert.Nil(t, res.Errors)
	assert.Equal(t, "/", res.RedirectTo)

	entries, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, CategoryWork, entries[0].Category)
	assert.Equal(t, "Shipped the weekly report pipeline.", entries[0].Text)
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), entries[0].Date)
}

func TestSubmitCreateThenGetByID(t *testing.T) {
	store := newFakeEntryStore()
	svc := NewService(store)

	_, err := svc.Submit(context.Background(), validCreateForm())
	require.NoError(t, err)

	entries, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got, err := svc.GetByID(context.Background(), entries[0].ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, entries[0].Date, got.Date)
	assert.Equal(t, entries[0].Category, got.Category)
	assert.Equal(t, entries[0].Text, got.Text)
}

func TestSubmitInvalidLeavesStoreUntouched(t *testing.T) {
	store := newFakeEntryStore()
	svc := NewService(store)

	form := validCreateForm()
	form.Text = "too short"
	res, err := svc.Submit(context.Background(), form)
	require.NoError(t, err)
	require.NotNil(t, res.Errors)
	assert.Empty(t, res.RedirectTo)

	entries, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSubmitUpdate(t *testing.T) {
	store := newFakeEntryStore()
	svc := NewService(store)
	seeded := seedEntry(t, store, "2024-01-08", CategoryWork, "finished the quarterly planning doc")

	form := EntryForm{
		Date:     "2024-01-09",
		Category: "learning",
		Text:     "rewrote the doc after review feedback",
		Intent:   "update",
		EntryID:  seeded.ID.Hex(),
	}
	res, err := svc.Submit(context.Background(), form)
	require.NoError(t, err)
	assert.Nil(t, res.Errors)
	assert.Equal(t, "/entries/"+seeded.ID.Hex()+"/edit", res.RedirectTo)

	got, err := store.FindByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, CategoryLearning, got.Category)
	assert.Equal(t, "rewrote the doc after review feedback", got.Text)
	assert.Equal(t, seeded.ID, got.ID)
}

func TestSubmitUpdateNotFound(t *testing.T) {
	svc := NewService(newFakeEntryStore())

	form := validCreateForm()
	form.Intent = "update"
	form.EntryID = primitive.NewObjectID().Hex()
	_, err := svc.Submit(context.Background(), form)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestSubmitDelete(t *testing.T) {
	store := newFakeEntryStore()
	svc := NewService(store)
	seeded := seedEntry(t, store, "2024-01-08", CategoryWork, "finished the quarterly planning doc")

	form := validCreateForm()
	form.Intent = "delete"
	form.EntryID = seeded.ID.Hex()
	res, err := svc.Submit(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "/", res.RedirectTo)

	entries, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSubmitDeleteNotFoundLeavesStoreUnchanged(t *testing.T) {
	store := newFakeEntryStore()
	svc := NewService(store)
	seedEntry(t, store, "2024-01-08", CategoryWork, "finished the quarterly planning doc")

	form := validCreateForm()
	form.Intent = "delete"
	form.EntryID = primitive.NewObjectID().Hex()
	_, err := svc.Submit(context.Background(), form)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	entries, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSubmitMalformedIDReportsNotFound(t *testing.T) {
	svc := NewService(newFakeEntryStore())

	form := validCreateForm()
	form.Intent = "delete"
	form.EntryID = "not-a-hex-id"
	_, err := svc.Submit(context.Background(), form)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestWeeksGroupsStoreContents(t *testing.T) {
	store := newFakeEntryStore()
	svc := NewService(store)
	seedEntry(t, store, "2024-01-08", CategoryWork, "finished the quarterly planning doc")
	seedEntry(t, store, "2024-01-15", CategoryLearning, "read up on mongo aggregation stages")

	weeks, err := svc.Weeks(context.Background())
	require.NoError(t, err)
	require.Len(t, weeks, 2)
	assert.Equal(t, "2024-01-07", weeks[0].Sunday)
	assert.Equal(t, "2024-01-14", weeks[1].Sunday)
}
