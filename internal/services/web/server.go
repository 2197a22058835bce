package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/renderdemo/internal/platform/timeouts"
	"github.com/louisbranch/renderdemo/internal/services/web/app"
	module "github.com/louisbranch/renderdemo/internal/services/web/module"
	"github.com/louisbranch/renderdemo/internal/services/web/modules"
	"github.com/louisbranch/renderdemo/internal/services/web/platform/httpx"
	"github.com/louisbranch/renderdemo/internal/services/web/platform/observability"
	"github.com/louisbranch/renderdemo/internal/services/web/platform/pagerender"
	"go.opentelemetry.io/otel/trace"
)

// DefaultHTMXURL is the htmx script loaded by the layout.
const DefaultHTMXURL = "https://unpkg.com/htmx.org@2.0.4"

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr     string
	HTMXURL      string
	InstanceTTL  time.Duration
	MaxInstances int
	// Logger receives request and registry logs; the process default when nil.
	Logger *log.Logger
	// TracerProvider overrides the global provider for request spans.
	TracerProvider trace.TracerProvider
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *log.Logger
}

// NewHandler composes the module handlers behind the shared middleware.
func NewHandler(config Config) (http.Handler, error) {
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	htmxURL := strings.TrimSpace(config.HTMXURL)
	if htmxURL == "" {
		htmxURL = DefaultHTMXURL
	}

	root, err := app.Compose(app.ComposeInput{
		Modules: modules.DefaultModules(modules.Dependencies{
			Shared: module.Dependencies{
				Renderer: pagerender.Renderer{HTMXURL: htmxURL},
				Logger:   logger,
			},
			InstanceTTL:    config.InstanceTTL,
			MaxInstances:   config.MaxInstances,
			TracerProvider: config.TracerProvider,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	return httpx.Chain(root,
		httpx.RequestID(),
		httpx.RecoverPanic(logger),
		observability.TracingWithProvider(config.TracerProvider),
		observability.RequestLogger(logger),
	), nil
}

// NewServer builds a configured web server.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if config.InstanceTTL < 0 {
		return nil, errors.New("instance ttl must not be negative")
	}
	if config.MaxInstances < 0 {
		return nil, errors.New("max instances must not be negative")
	}

	handler, err := NewHandler(config)
	if err != nil {
		return nil, err
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			ErrorLog:          logger,
			BaseContext: func(net.Listener) context.Context {
				return context.WithoutCancel(ctx)
			},
		},
		logger: logger,
	}, nil
}

// ListenAndServe listens on the configured address and serves until ctx is
// canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is canceled, then shuts
// down gracefully within timeouts.Shutdown.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	if listener == nil {
		return errors.New("listener is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Printf("web listening on %s", listener.Addr())
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		<-serveErr
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases server resources immediately.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		s.logger.Printf("close http server: %v", err)
	}
}
