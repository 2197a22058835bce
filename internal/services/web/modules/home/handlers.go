package home

import (
	"log"
	"net/http"

	platformi18n "github.com/louisbranch/renderdemo/internal/platform/i18n"
	module "github.com/louisbranch/renderdemo/internal/services/web/module"
	"github.com/louisbranch/renderdemo/internal/services/web/platform/httpx"
	"github.com/louisbranch/renderdemo/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/renderdemo/internal/services/web/templates"
	"github.com/louisbranch/renderdemo/internal/view"
)

type handlers struct {
	renderer pagerender.Renderer
	logger   *log.Logger
	landing  view.Landing
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{renderer: deps.Renderer, logger: deps.LoggerOrDefault()}
}

func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	err := h.renderer.WritePage(w, r, pagerender.Page{
		TitleKey: platformi18n.KeyTitleHome,
		Body:     webtemplates.LandingPage(h.landing.Render()),
	})
	if err != nil {
		h.logger.Printf("render landing request_id=%s err=%v", httpx.RequestIDFrom(r), err)
		h.renderer.WriteError(w, r, http.StatusInternalServerError)
	}
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteHTML(w, http.StatusOK, "OK")
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.WriteError(w, r, http.StatusNotFound)
}
