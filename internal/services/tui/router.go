package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/louisbranch/renderdemo/internal/view"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// TracerName identifies spans opened by the terminal host.
const TracerName = "github.com/louisbranch/renderdemo/internal/services/tui"

// ErrUnknownAddress reports a navigation target with no screen.
var ErrUnknownAddress = errors.New("unknown address")

type screenDeps struct {
	ctx    context.Context
	logger view.Logger
	tracer trace.Tracer
}

type screenFactory func(screenDeps) Screen

// Router maps logical addresses to screen constructors.
type Router struct {
	routes map[string]screenFactory
}

// NewRouter returns the route table for the terminal host.
func NewRouter() Router {
	return Router{routes: map[string]screenFactory{
		view.AddressLanding:   newLandingScreen,
		view.AddressDashboard: newDashboardScreen,
	}}
}

// Addresses lists the routed addresses in order.
func (r Router) Addresses() []string {
	addresses := make([]string, 0, len(r.routes))
	for address := range r.routes {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)
	return addresses
}

func (r Router) open(address string, deps screenDeps) (Screen, error) {
	factory, ok := r.routes[address]
	if !ok {
		return nil, fmt.Errorf("open %q: %w", address, ErrUnknownAddress)
	}
	if deps.tracer == nil {
		deps.tracer = otel.Tracer(TracerName)
	}
	return factory(deps), nil
}
