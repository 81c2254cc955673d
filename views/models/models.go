package models

// EntryView represents an entry for template rendering. HTML is the
// markdown-rendered text, already sanitized for direct inclusion.
type EntryView struct {
	ID       string
	Date     string
	Category string
	Text     string
	HTML     string
}

// WeekView represents one week bucket for template rendering.
type WeekView struct {
	Sunday   string
	Heading  string
	Work     []EntryView
	Learning []EntryView
	Interest []EntryView
}

// EntryFormView carries an entry form's values and validation errors through
// a render round-trip. Intent is the value the Save button submits; CanDelete
// adds a Delete button to the same form.
type EntryFormView struct {
	Action         string
	Intent         string
	CanDelete      bool
	EntryID        string
	Date           string
	Category       string
	Text           string
	DateErrors     []string
	CategoryErrors []string
	TextErrors     []string
	FormErrors     []string
}

// JournalView is the list page: week sections plus, for a logged-in caller,
// the create form.
type JournalView struct {
	LoggedIn bool
	Weeks    []WeekView
	Form     *EntryFormView
}

// EditEntryView is the edit page for a single entry.
type EditEntryView struct {
	EntryID string
	Form    EntryFormView
}

// LoginView carries the login form state. The password value is never part of
// the view; it is dropped before any re-render.
type LoginView struct {
	Email          string
	RedirectTo     string
	EmailErrors    []string
	PasswordErrors []string
	FormErrors     []string
}
