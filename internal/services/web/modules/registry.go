package modules

import (
	"github.com/louisbranch/renderdemo/internal/services/web/modules/dashboard"
	"github.com/louisbranch/renderdemo/internal/services/web/modules/home"
)

// DefaultModules returns the modules served by the web host.
func DefaultModules(deps Dependencies) []Module {
	return []Module{
		home.New(deps.Shared),
		dashboard.New(dashboard.Config{
			Dependencies:   deps.Shared,
			InstanceTTL:    deps.InstanceTTL,
			MaxInstances:   deps.MaxInstances,
			TracerProvider: deps.TracerProvider,
		}),
	}
}
