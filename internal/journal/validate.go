package journal

import (
	"time"
	"unicode/utf8"
)

// DateLayout is the wire format for entry dates.
const DateLayout = "2006-01-02"

const (
	// TextMinLen and TextMaxLen bound entry text length in runes.
	TextMinLen = 15
	TextMaxLen = 140
)

// FieldErrors is a validation report: per-field message lists plus messages
// not attributable to a single field.
type FieldErrors struct {
	Fields map[string][]string
	Form   []string
}

func newFieldErrors() *FieldErrors {
	return &FieldErrors{Fields: make(map[string][]string)}
}

func (e *FieldErrors) add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *FieldErrors) addForm(msg string) {
	e.Form = append(e.Form, msg)
}

// Any reports whether the report contains at least one error.
func (e *FieldErrors) Any() bool {
	return len(e.Fields) > 0 || len(e.Form) > 0
}

// Field returns the messages recorded for a field.
func (e *FieldErrors) Field(name string) []string {
	if e == nil {
		return nil
	}
	return e.Fields[name]
}

// Validate checks a raw submission and returns either a certified Draft or
// the collected errors. Every rule is evaluated; nothing short-circuits, so a
// single resubmission can fix all reported problems at once.
func Validate(form EntryForm) (*Draft, *FieldErrors) {
	errs := newFieldErrors()
	draft := &Draft{EntryID: form.EntryID}

	switch d, err := time.Parse(DateLayout, form.Date); {
	case form.Date == "":
		errs.add("date", "Date is required")
	case err != nil:
		errs.add("date", "Date is invalid")
	default:
		draft.Date = d.UTC()
	}

	if c, ok := ParseCategory(form.Category); ok {
		draft.Category = c
	} else {
		errs.add("category", "Please select a category")
	}

	switch n := utf8.RuneCountInString(form.Text); {
	case n < TextMinLen:
		errs.add("content", "String must contain at least 15 character(s)")
	case n > TextMaxLen:
		errs.add("content", "String must contain at most 140 character(s)")
	default:
		draft.Text = form.Text
	}

	if intent, ok := ParseIntent(form.Intent); ok {
		draft.Intent = intent
		if (intent == IntentUpdate || intent == IntentDelete) && form.EntryID == "" {
			errs.addForm("An entry id is required")
		}
	} else {
		errs.addForm("Unknown intent")
	}

	if errs.Any() {
		return nil, errs
	}
	return draft, nil
}
