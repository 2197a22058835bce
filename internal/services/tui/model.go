package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/louisbranch/renderdemo/internal/view"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Options configures the terminal host.
type Options struct {
	// Start is the address shown first; the landing view when empty.
	Start string
	// Logger receives render traces and navigation lines. It must be a nil
	// interface or a usable logger; a typed nil pointer panics on render.
	Logger view.Logger
	// TracerProvider receives navigation and echo update spans; the global
	// provider when nil.
	TracerProvider trace.TracerProvider
}

// Model is the bubbletea model hosting one routed screen at a time.
type Model struct {
	router  Router
	deps    screenDeps
	address string
	screen  Screen
	err     error
}

var _ tea.Model = Model{}

// New opens the start screen.
func New(ctx context.Context, opts Options) (Model, error) {
	if ctx == nil {
		return Model{}, errors.New("context is required")
	}
	start := strings.TrimSpace(opts.Start)
	if start == "" {
		start = view.AddressLanding
	}
	provider := opts.TracerProvider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	m := Model{
		router: NewRouter(),
		deps: screenDeps{
			ctx:    ctx,
			logger: opts.Logger,
			tracer: provider.Tracer(TracerName),
		},
	}
	screen, err := m.open(start)
	if err != nil {
		return Model{}, err
	}
	m.address = start
	m.screen = screen
	m.logf("navigate address=%s", start)
	return m, nil
}

// Address returns the address of the current screen.
func (m Model) Address() string {
	return m.address
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.screen == nil {
		return nil
	}
	return m.screen.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case NavigateMsg:
		screen, err := m.open(msg.Address)
		if err != nil {
			m.err = err
			m.logf("navigate address=%s err=%v", msg.Address, err)
			return m, nil
		}
		m.address = msg.Address
		m.screen = screen
		m.err = nil
		m.logf("navigate address=%s", msg.Address)
		return m, screen.Init()
	}

	if m.screen == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.screen == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(styles.Address.Render(m.address))
	b.WriteString("\n")
	b.WriteString(styles.Box.Render(m.screen.View()))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(styles.Hint.Render(m.hint()))
	return b.String()
}

func (m Model) hint() string {
	if m.address == view.AddressDashboard {
		return "Esc: back  Ctrl+C: quit"
	}
	return "Enter: follow link  Ctrl+C: quit"
}

func (m Model) open(address string) (Screen, error) {
	_, span := m.deps.tracer.Start(m.deps.ctx, "tui.navigate",
		trace.WithAttributes(attribute.String("tui.address", address)))
	defer span.End()

	screen, err := m.router.open(address, m.deps)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return screen, nil
}

func (m Model) logf(format string, args ...any) {
	if m.deps.logger != nil {
		m.deps.logger.Printf(format, args...)
	}
}

// Run drives the terminal host until the user quits or ctx is canceled.
func Run(ctx context.Context, opts Options, programOpts ...tea.ProgramOption) error {
	m, err := New(ctx, opts)
	if err != nil {
		return fmt.Errorf("open start screen: %w", err)
	}
	programOpts = append([]tea.ProgramOption{tea.WithContext(ctx)}, programOpts...)
	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal program: %w", err)
	}
	return nil
}
