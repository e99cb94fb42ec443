// Package ui holds the page shell and the card, table and chart primitives
// every renderer composes. Components only lay out the pre-formatted data they
// are given.
package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"lab-dashboard/internal/view"
)

var esc = templ.EscapeString

// Stack renders components one after another.
func Stack(items ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range items {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Text renders escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, esc(s))
		return err
	})
}

// Element wraps body in a tag with the given class.
func Element(tag, class string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<%s class="%s">`, tag, esc(class)); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "</%s>", tag)
		return err
	})
}

// Paragraph renders a paragraph of escaped text.
func Paragraph(s string) templ.Component {
	return Element("p", "text", Text(s))
}

// Link renders an anchor.
func Link(label, href string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<a href="%s">%s</a>`, esc(href), esc(label))
		return err
	})
}

// Badge renders a status pill.
func Badge(b view.Badge) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<span class="badge badge-%s">%s</span>`, esc(string(toneOr(b.Tone))), esc(b.Text))
		return err
	})
}

func toneOr(t view.Tone) view.Tone {
	if t == "" {
		return view.ToneNeutral
	}
	return t
}

// Card frames body with a titled panel.
func Card(title, icon string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="card">`); err != nil {
			return err
		}
		if title != "" {
			if _, err := fmt.Fprintf(w, `<header class="card-title"><span class="icon icon-%s"></span>%s</header>`, esc(icon), esc(title)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<div class="card-body">`); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div></section>`)
		return err
	})
}

// Empty renders a muted placeholder line.
func Empty(msg string) templ.Component {
	return Element("p", "empty", Text(msg))
}

// Fields renders a definition list.
func Fields(fields []view.Field) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<dl class="fields">`)
		for _, f := range fields {
			fmt.Fprintf(&b, `<dt>%s</dt><dd>%s</dd>`, esc(f.Label), esc(f.Value))
		}
		b.WriteString(`</dl>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// List renders an unordered list of escaped items.
func List(items []string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<ul class="list">`)
		for _, it := range items {
			fmt.Fprintf(&b, `<li>%s</li>`, esc(it))
		}
		b.WriteString(`</ul>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Progress renders a horizontal bar filled to pct (0–100).
func Progress(pct int, label string) templ.Component {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="progress" role="progressbar" aria-valuenow="%d"><div class="progress-fill" style="width:%d%%"></div><span class="progress-label">%s</span></div>`,
			pct, pct, esc(label))
		return err
	})
}

// Grid lays out items in a responsive grid of the given column count.
func Grid(cols int, items ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="grid grid-%d">`, cols); err != nil {
			return err
		}
		if err := Stack(items...).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
