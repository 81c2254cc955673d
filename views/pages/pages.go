package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"workjournal/views/components"
	"workjournal/views/models"
)

// layout wraps a body component in the HTML skeleton shared by all pages.
func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := components.NewBuilder(ctx, w)
		b.Raw(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
		b.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.Raw(`<title>`).Text(title).Raw(`</title>`)
		b.Raw(`<link rel="stylesheet" href="/static/styles.css">`)
		b.Raw(`</head><body><main>`)
		b.Component(body)
		b.Raw(`</main></body></html>`)
		return b.Err()
	})
}

// JournalPage renders the entry list grouped by week, with the create form
// for logged-in callers.
func JournalPage(v models.JournalView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := components.NewBuilder(ctx, w)
		b.Component(components.NavBar(v.LoggedIn))
		if v.Form != nil {
			b.Raw(`<div class="panel"><p class="panel-title">Create a new entry</p>`)
			b.Component(components.EntryForm(*v.Form))
			b.Raw(`</div>`)
		}
		if len(v.Weeks) == 0 {
			b.Raw(`<p class="empty">No entries yet.</p>`)
		}
		for _, week := range v.Weeks {
			b.Component(components.WeekSection(week))
		}
		return b.Err()
	})
	return layout("Work Journal", body)
}

// EditEntryPage renders the update form and delete control for one entry.
func EditEntryPage(v models.EditEntryView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := components.NewBuilder(ctx, w)
		b.Raw(`<a href="/">Back</a><div class="panel"><p class="panel-title">Edit entry</p>`)
		b.Component(components.EntryForm(v.Form))
		b.Raw(`</div>`)
		return b.Err()
	})
	return layout("Edit entry", body)
}

// LoginPage renders the login form. The password input is always empty.
func LoginPage(v models.LoginView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := components.NewBuilder(ctx, w)
		b.Raw(`<h1>Welcome Back!</h1><p class="subtitle">Please enter your credentials.</p>`)
		b.Raw(`<form class="login-form" method="post" action="/login">`)

		b.Raw(`<div class="field"><label for="email">Email</label>`)
		b.Raw(`<input id="email" type="email" name="email"`).Attr("value", v.Email).Raw(`>`)
		b.Component(components.ErrorList(v.EmailErrors))
		b.Raw(`</div>`)

		b.Raw(`<div class="field"><label for="password">Password</label>`)
		b.Raw(`<input id="password" type="password" name="password">`)
		b.Component(components.ErrorList(v.PasswordErrors))
		b.Raw(`</div>`)

		if v.RedirectTo != "" {
			b.Raw(`<input type="hidden" name="redirectTo"`).Attr("value", v.RedirectTo).Raw(`>`)
		}

		b.Component(components.ErrorList(v.FormErrors))
		b.Raw(`<div class="actions"><button type="submit">Login</button></div>`)
		b.Raw(`</form>`)
		return b.Err()
	})
	return layout("Login", body)
}
