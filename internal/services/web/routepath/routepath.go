// Package routepath stores canonical HTTP paths for web modules.
package routepath

import "github.com/louisbranch/renderdemo/internal/view"

const (
	Root              = view.AddressLanding
	Health            = "/up"
	Dashboard         = view.AddressDashboard
	DashboardPrefix   = Dashboard + "/"
	DashboardText     = DashboardPrefix + "text"
	DashboardInstance = DashboardPrefix + "instance"
)

// Form fields posted by the dashboard page.
const (
	FieldText     = "text"
	FieldInstance = "instance"
)
