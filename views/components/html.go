package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Builder collects HTML writes for code-only templ components, keeping the
// first write error so call sites stay linear.
type Builder struct {
	ctx context.Context
	w   io.Writer
	err error
}

func NewBuilder(ctx context.Context, w io.Writer) *Builder {
	return &Builder{ctx: ctx, w: w}
}

// Raw writes trusted HTML verbatim.
func (b *Builder) Raw(html string) *Builder {
	if b.err == nil {
		_, b.err = io.WriteString(b.w, html)
	}
	return b
}

// Text writes s escaped for element content or double-quoted attributes.
func (b *Builder) Text(s string) *Builder {
	return b.Raw(templ.EscapeString(s))
}

// Attr writes a name="value" attribute with the value escaped. Empty values
// are written; callers skip the call to omit an attribute.
func (b *Builder) Attr(name, value string) *Builder {
	return b.Raw(" " + name + `="`).Text(value).Raw(`"`)
}

// Component renders a child component in place.
func (b *Builder) Component(c templ.Component) *Builder {
	if b.err == nil && c != nil {
		b.err = c.Render(b.ctx, b.w)
	}
	return b
}

// Err returns the first error encountered, if any.
func (b *Builder) Err() error {
	return b.err
}
