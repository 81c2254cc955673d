package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"workjournal/views/models"
)

var categoryLabels = []struct {
	Value string
	Label string
}{
	{"work", "Work"},
	{"learning", "Learning"},
	{"interest-things", "Interesting things"},
}

// ErrorList renders a list of validation messages, or nothing when there are
// none.
func ErrorList(errs []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(errs) == 0 {
			return nil
		}
		b := NewBuilder(ctx, w)
		b.Raw(`<ul class="errors">`)
		for _, e := range errs {
			b.Raw(`<li>`).Text(e).Raw(`</li>`)
		}
		b.Raw(`</ul>`)
		return b.Err()
	})
}

// NavBar renders the site header with the login/logout control.
func NavBar(loggedIn bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := NewBuilder(ctx, w)
		b.Raw(`<header class="nav"><div><h1>Work Journal</h1>`)
		b.Raw(`<p class="subtitle">Learnings and doings. Updated weekly.</p></div>`)
		if loggedIn {
			b.Raw(`<form method="post" action="/logout"><button type="submit">Logout</button></form>`)
		} else {
			b.Raw(`<a href="/login">Login</a>`)
		}
		b.Raw(`</header>`)
		return b.Err()
	})
}

// EntryForm renders the create/update form with inline per-field errors.
func EntryForm(form models.EntryFormView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := NewBuilder(ctx, w)
		b.Raw(`<form class="entry-form" method="post"`).Attr("action", form.Action).Raw(`>`)

		b.Raw(`<div class="field"><input type="date" name="date"`).Attr("value", form.Date).Raw(` required>`)
		b.Component(ErrorList(form.DateErrors))
		b.Raw(`</div>`)

		b.Raw(`<div class="field" role="radiogroup">`)
		for _, c := range categoryLabels {
			b.Raw(`<label><input type="radio" name="category"`).Attr("value", c.Value)
			if form.Category == c.Value {
				b.Raw(` checked`)
			}
			b.Raw(`> `).Text(c.Label).Raw(`</label>`)
		}
		b.Component(ErrorList(form.CategoryErrors))
		b.Raw(`</div>`)

		b.Raw(`<div class="field"><textarea name="content" placeholder="Write your entry..." required>`)
		b.Text(form.Text)
		b.Raw(`</textarea>`)
		b.Component(ErrorList(form.TextErrors))
		b.Raw(`</div>`)

		b.Component(ErrorList(form.FormErrors))
		b.Raw(`<div class="actions">`)
		if form.CanDelete {
			b.Raw(`<button type="submit" name="intent" value="delete" class="danger">Delete</button>`)
		}
		b.Raw(`<button type="submit" name="intent"`).Attr("value", form.Intent).Raw(`>Save</button>`)
		b.Raw(`</div></form>`)
		return b.Err()
	})
}

// WeekSection renders one week bucket. Categories without entries are
// omitted.
func WeekSection(week models.WeekView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := NewBuilder(ctx, w)
		b.Raw(`<section class="week"><h2>`).Text(week.Heading).Raw(`</h2>`)
		categorySection(b, "Work", week.Work)
		categorySection(b, "Learnings", week.Learning)
		categorySection(b, "Interesting things", week.Interest)
		b.Raw(`</section>`)
		return b.Err()
	})
}

func categorySection(b *Builder, title string, entries []models.EntryView) {
	if len(entries) == 0 {
		return
	}
	b.Raw(`<div class="category"><h3>`).Text(title).Raw(`</h3><ul>`)
	for _, e := range entries {
		b.Raw(`<li><div class="entry-text">`)
		b.Component(templ.Raw(e.HTML))
		b.Raw(`</div> <a class="edit-link"`).Attr("href", "/entries/"+e.ID+"/edit").Raw(`>Edit</a></li>`)
	}
	b.Raw(`</ul></div>`)
}
