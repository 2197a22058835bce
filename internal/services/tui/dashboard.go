package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/louisbranch/renderdemo/internal/view"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type dashboardScreen struct {
	ctx    context.Context
	tracer trace.Tracer
	echo   *view.Echo
	input  textinput.Model
	nav    *cmdNavigator
	out    view.EchoOutput
	dirty  bool
}

var _ Screen = (*dashboardScreen)(nil)

// newDashboardScreen mounts a fresh echo instance. Its invalidation signal
// marks the screen dirty; the next update runs a render pass.
func newDashboardScreen(deps screenDeps) Screen {
	s := &dashboardScreen{ctx: deps.ctx, tracer: deps.tracer, nav: &cmdNavigator{}}
	s.echo = view.NewEcho(
		view.WithLogger(deps.logger),
		view.WithInvalidator(view.InvalidatorFunc(func() { s.dirty = true })),
	)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Width = 40
	ti.Focus()
	s.input = ti

	s.out = s.echo.Render()
	return s
}

func (s *dashboardScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *dashboardScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		if err := s.nav.Navigate(s.ctx, view.AddressLanding); err != nil {
			return s, nil
		}
		return s, s.nav.flush()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if value := s.input.Value(); value != s.echo.Text() {
		s.update(value)
	}
	return s, cmd
}

func (s *dashboardScreen) update(value string) {
	_, span := s.tracer.Start(s.ctx, "tui.echo.update",
		trace.WithAttributes(attribute.Int("echo.text_bytes", len(value))))
	defer span.End()

	s.echo.Update(value)
	span.SetAttributes(attribute.Bool("echo.rendered", s.dirty))
	if s.dirty {
		s.out = s.echo.Render()
		s.dirty = false
	}
}

func (s *dashboardScreen) View() string {
	content := styles.Title.Render(s.out.Heading) + "\n\n"
	content += s.input.View() + "\n\n"
	content += styles.Greeting.Render(s.out.Greeting)
	return content
}
