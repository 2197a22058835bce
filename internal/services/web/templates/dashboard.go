package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/renderdemo/internal/services/web/routepath"
	"github.com/louisbranch/renderdemo/internal/view"
)

// GreetingID is the element id swapped by partial echo updates.
const GreetingID = "greeting"

// DashboardPage renders the echo view for one mounted instance.
//
// With htmx loaded every input event, and Enter, posts the full field content
// and swaps the greeting in place. Without JavaScript the form submits and the
// server returns the whole page.
func DashboardPage(out view.EchoOutput, instanceID string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section id="dashboard"><h1>`)
		hw.text(out.Heading)
		hw.raw(`</h1><form id="echo-form" method="post" action="`)
		hw.text(routepath.DashboardText)
		hw.raw(`" hx-post="`)
		hw.text(routepath.DashboardText)
		hw.raw(`" hx-trigger="input from:#echo-input, submit" hx-target="#`)
		hw.text(GreetingID)
		hw.raw(`" hx-swap="outerHTML"><input type="hidden" name="`)
		hw.text(routepath.FieldInstance)
		hw.raw(`" value="`)
		hw.text(instanceID)
		hw.raw(`"><input id="echo-input" type="text" autocomplete="off" name="`)
		hw.text(routepath.FieldText)
		hw.raw(`" value="`)
		hw.text(out.InputValue)
		hw.raw(`"><noscript><button type="submit">Update</button></noscript></form>`)
		if hw.err != nil {
			return hw.err
		}
		if err := Greeting(out).Render(ctx, w); err != nil {
			return err
		}
		hw.raw(`<script>window.addEventListener("pagehide",function(e){if(e.persisted){return;}var f=new FormData();f.append("`)
		hw.raw(routepath.FieldInstance)
		hw.raw(`",document.querySelector('#echo-form input[name="`)
		hw.raw(routepath.FieldInstance)
		hw.raw(`"]').value);navigator.sendBeacon("`)
		hw.raw(routepath.DashboardInstance)
		hw.raw(`",f);});</script></section>`)
		return hw.err
	})
}

// Greeting renders the greeting heading alone, the unit of partial updates.
func Greeting(out view.EchoOutput) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<h2 id="`)
		hw.text(GreetingID)
		hw.raw(`">`)
		hw.text(out.Greeting)
		hw.raw(`</h2>`)
		return hw.err
	})
}
