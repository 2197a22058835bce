// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	platformi18n "github.com/louisbranch/renderdemo/internal/platform/i18n"
	"github.com/louisbranch/renderdemo/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/renderdemo/internal/services/web/platform/i18n"
	webtemplates "github.com/louisbranch/renderdemo/internal/services/web/templates"
)

// Page describes a page response for both full-page and htmx flows.
type Page struct {
	TitleKey   string
	StatusCode int
	Body       templ.Component
}

// Renderer writes pages with shared document chrome.
type Renderer struct {
	HTMXURL string
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders page. htmx navigations receive the title and body only;
// other requests receive the full document.
func (rn Renderer) WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}
	tag := webi18n.Resolve(w, r)
	title := platformi18n.T(tag, page.TitleKey)
	ctx := httpx.RequestContext(r)

	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		buf.WriteString("<title>" + templ.EscapeString(title) + "</title>")
		if err := body.Render(ctx, &buf); err != nil {
			return err
		}
	} else {
		layout := webtemplates.Layout(webtemplates.PageContext{
			Title:   title,
			Lang:    tag.String(),
			HTMXURL: rn.HTMXURL,
		})
		if err := layout.Render(templ.WithChildren(ctx, body), &buf); err != nil {
			return err
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// WriteFragment renders a component without document chrome.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if fragment == nil {
		fragment = emptyComponent{}
	}
	var buf bytes.Buffer
	if err := fragment.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// WriteError renders an error page, falling back to plain text when the
// page itself fails to render.
func (rn Renderer) WriteError(w http.ResponseWriter, r *http.Request, statusCode int) {
	titleKey := platformi18n.KeyTitleError
	if statusCode == http.StatusNotFound {
		titleKey = platformi18n.KeyTitleNotFound
	}
	err := rn.WritePage(w, r, Page{
		TitleKey:   titleKey,
		StatusCode: statusCode,
		Body:       webtemplates.ErrorState(statusCode, ""),
	})
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}
