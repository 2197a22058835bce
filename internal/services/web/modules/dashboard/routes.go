package dashboard

import (
	"net/http"

	"github.com/louisbranch/renderdemo/internal/services/web/platform/httpx"
	"github.com/louisbranch/renderdemo/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Dashboard, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardPrefix+"{$}", h.handleIndex)
	mux.Handle(routepath.DashboardText, httpx.RequireMethod(http.MethodPost)(http.HandlerFunc(h.handleUpdateText)))
	mux.Handle(routepath.DashboardInstance, httpx.RequireMethod(http.MethodPost)(http.HandlerFunc(h.handleUnmount)))
	mux.HandleFunc(routepath.DashboardPrefix, h.handleNotFound)
}
