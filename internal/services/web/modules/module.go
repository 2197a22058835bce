// Package modules defines the web module registry.
package modules

import (
	"time"

	module "github.com/louisbranch/renderdemo/internal/services/web/module"
	"go.opentelemetry.io/otel/trace"
)

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries what the registry needs to build every module.
type Dependencies struct {
	Shared         module.Dependencies
	InstanceTTL    time.Duration
	MaxInstances   int
	TracerProvider trace.TracerProvider
}
