// Package templates renders web pages as templ components.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// PageContext carries the document chrome for a full-page render.
type PageContext struct {
	Title   string
	Lang    string
	HTMXURL string
}

// Layout renders the full HTML document around the component's children.
func Layout(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := page.Lang
		if lang == "" {
			lang = "en-US"
		}
		hw := &htmlWriter{w: w}
		hw.raw(`<!DOCTYPE html><html lang="`)
		hw.text(lang)
		hw.raw(`"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		hw.text(page.Title)
		hw.raw(`</title>`)
		if page.HTMXURL != "" {
			hw.raw(`<script src="`)
			hw.text(page.HTMXURL)
			hw.raw(`" defer></script>`)
		}
		hw.raw(`</head><body hx-boost="true" hx-target="main" hx-swap="innerHTML"><main>`)
		if hw.err != nil {
			return hw.err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		hw.raw(`</main></body></html>`)
		return hw.err
	})
}

// htmlWriter accumulates the first write error so markup can be emitted
// without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}
