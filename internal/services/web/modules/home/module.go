// Package home serves the landing view and the health check.
package home

import (
	"net/http"

	module "github.com/louisbranch/renderdemo/internal/services/web/module"
	"github.com/louisbranch/renderdemo/internal/services/web/routepath"
)

// Module provides the root routes.
type Module struct {
	deps module.Dependencies
}

// New returns a home module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires home route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
