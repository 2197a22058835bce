package templates

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
)

// ErrorState renders a status heading with a link back to the landing page.
func ErrorState(statusCode int, message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if message == "" {
			message = http.StatusText(statusCode)
		}
		hw := &htmlWriter{w: w}
		hw.raw(`<section id="error" data-status="`)
		hw.raw(strconv.Itoa(statusCode))
		hw.raw(`"><h1>`)
		hw.text(message)
		hw.raw(`</h1><a href="/">Home Page</a></section>`)
		return hw.err
	})
}
