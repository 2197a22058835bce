// Package module defines the feature contract used by web composition.
package module

import (
	"log"
	"net/http"

	"github.com/louisbranch/renderdemo/internal/services/web/platform/pagerender"
)

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// Dependencies carries shared collaborators handed to every module.
type Dependencies struct {
	Renderer pagerender.Renderer
	Logger   *log.Logger
}

// LoggerOrDefault returns the configured logger or the process default.
func (d Dependencies) LoggerOrDefault() *log.Logger {
	if d.Logger == nil {
		return log.Default()
	}
	return d.Logger
}
