package view

const (
	echoHeading = "DashboardPage"
	// RenderTrace is logged on every echo render pass.
	RenderTrace = "Dashboard client-component"
)

// EchoState is the text owned by one Echo instance.
type EchoState struct {
	Text string
}

// EchoOutput is the rendered echo view.
type EchoOutput struct {
	Heading    string
	InputValue string
	Greeting   string
}

// RenderEcho maps state to output. It has no side effects.
func RenderEcho(state EchoState) EchoOutput {
	return EchoOutput{
		Heading:    echoHeading,
		InputValue: state.Text,
		Greeting:   Greeting(state.Text),
	}
}

// Greeting interpolates value into the echo greeting template.
func Greeting(value string) string {
	return "Hello, " + value + "!"
}

// Echo holds a single text value and renders it into a greeting.
//
// An Echo is owned by one host instance and is not safe for concurrent use.
type Echo struct {
	state       EchoState
	logger      Logger
	invalidator Invalidator
}

// EchoOption configures an Echo.
type EchoOption func(*Echo)

// WithLogger sets the logger that receives render traces. A nil interface
// keeps the default; a typed nil pointer such as (*log.Logger)(nil) is not
// detected and panics on the first render.
func WithLogger(logger Logger) EchoOption {
	return func(e *Echo) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithInvalidator sets the signal fired after every update.
func WithInvalidator(inv Invalidator) EchoOption {
	return func(e *Echo) { e.invalidator = inv }
}

// NewEcho returns an Echo with empty state.
func NewEcho(opts ...EchoOption) *Echo {
	e := &Echo{logger: discardLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Text returns the committed text.
func (e *Echo) Text() string {
	return e.state.Text
}

// Update replaces the text with value and asks the host to render again.
// Any string is accepted, including the empty string.
func (e *Echo) Update(value string) {
	e.state.Text = value
	if e.invalidator != nil {
		e.invalidator.Invalidate()
	}
}

// Render runs one render pass over the current state.
func (e *Echo) Render() EchoOutput {
	e.logger.Printf(RenderTrace)
	return RenderEcho(e.state)
}
