package journal

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EntryStore is the persistence contract the service depends on. The mongo
// Repo is the production implementation.
type EntryStore interface {
	Insert(ctx context.Context, e *Entry) error
	Update(ctx context.Context, id primitive.ObjectID, d Draft) (*Entry, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Entry, error)
	ListAll(ctx context.Context) ([]Entry, error)
}

// Service orchestrates form submissions against the validator and the store,
// and prepares entries for display.
type Service struct {
	store EntryStore
	md    goldmark.Markdown
}

func NewService(store EntryStore) *Service {
	return &Service{
		store: store,
		md:    goldmark.New(),
	}
}

// SubmitResult is the outcome of a form submission: a validation report to
// re-render with, or a redirect target after a successful mutation.
type SubmitResult struct {
	Errors     *FieldErrors
	RedirectTo string
}

// Submit validates a submission and performs exactly one store mutation when
// it is valid. Create and delete redirect to the list view; update redirects
// to the entry's edit view. Store failures are terminal, never retried.
func (s *Service) Submit(ctx context.Context, form EntryForm) (SubmitResult, error) {
	draft, verrs := Validate(form)
	if verrs != nil {
		return SubmitResult{Errors: verrs}, nil
	}

	switch draft.Intent {
	case IntentCreate:
		entry := &Entry{
			Date:     draft.Date,
			Category: draft.Category,
			Text:     draft.Text,
		}
		if err := s.store.Insert(ctx, entry); err != nil {
			return SubmitResult{}, err
		}
		return SubmitResult{RedirectTo: "/"}, nil

	case IntentUpdate:
		id, err := entryID(draft.EntryID)
		if err != nil {
			return SubmitResult{}, err
		}
		updated, err := s.store.Update(ctx, id, *draft)
		if err != nil {
			return SubmitResult{}, err
		}
		return SubmitResult{RedirectTo: "/entries/" + updated.ID.Hex() + "/edit"}, nil

	case IntentDelete:
		id, err := entryID(draft.EntryID)
		if err != nil {
			return SubmitResult{}, err
		}
		if err := s.store.Delete(ctx, id); err != nil {
			return SubmitResult{}, err
		}
		return SubmitResult{RedirectTo: "/"}, nil
	}

	return SubmitResult{}, fmt.Errorf("unhandled intent %q", draft.Intent)
}

// GetByID retrieves an entry by its hex id.
func (s *Service) GetByID(ctx context.Context, idHex string) (*Entry, error) {
	id, err := entryID(idHex)
	if err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, id)
}

// List retrieves all entries.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	return s.store.ListAll(ctx)
}

// Weeks retrieves all entries grouped into week buckets.
func (s *Service) Weeks(ctx context.Context) ([]WeekBucket, error) {
	entries, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByWeek(entries), nil
}

// RenderMarkdown converts entry text to HTML for display.
func (s *Service) RenderMarkdown(text string) string {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(text), &buf); err != nil {
		return text
	}
	return buf.String()
}

// entryID parses a hex entry id. A malformed id cannot name any entry, so it
// reports not found rather than a distinct error.
func entryID(idHex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid entry id %q: %w", idHex, ErrEntryNotFound)
	}
	return id, nil
}
