package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/renderdemo/internal/view"
)

// LandingPage renders the landing view output.
func LandingPage(out view.LandingOutput) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section id="landing"><h1>`)
		hw.text(out.Heading)
		hw.raw(`</h1><a id="landing-link" href="`)
		hw.text(out.Link.Address)
		hw.raw(`">`)
		hw.text(out.Link.Label)
		hw.raw(`</a></section>`)
		return hw.err
	})
}
