// Package dashboard serves the echo view.
//
// Every full GET mounts a fresh echo instance; keystrokes post the whole field
// content back to that instance, which re-renders the greeting.
package dashboard

import (
	"net/http"
	"time"

	module "github.com/louisbranch/renderdemo/internal/services/web/module"
	"github.com/louisbranch/renderdemo/internal/services/web/routepath"
	"go.opentelemetry.io/otel/trace"
)

// Config tunes the echo instance registry.
type Config struct {
	Dependencies   module.Dependencies
	InstanceTTL    time.Duration
	MaxInstances   int
	TracerProvider trace.TracerProvider
}

// Module provides the dashboard routes.
type Module struct {
	cfg      Config
	registry *registry
}

// New returns a dashboard module with its own instance registry.
func New(cfg Config) Module {
	return Module{
		cfg:      cfg,
		registry: newRegistry(cfg.InstanceTTL, cfg.MaxInstances, cfg.Dependencies.LoggerOrDefault()),
	}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Mount wires dashboard route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.cfg, m.registry))
	return module.Mount{Prefix: routepath.DashboardPrefix, Handler: mux}, nil
}
