package dashboard

import (
	"context"
	"log"
	"net/http"
	"strings"

	platformi18n "github.com/louisbranch/renderdemo/internal/platform/i18n"
	apperrors "github.com/louisbranch/renderdemo/internal/services/web/platform/errors"
	"github.com/louisbranch/renderdemo/internal/services/web/platform/httpx"
	"github.com/louisbranch/renderdemo/internal/services/web/platform/observability"
	"github.com/louisbranch/renderdemo/internal/services/web/platform/pagerender"
	"github.com/louisbranch/renderdemo/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/renderdemo/internal/services/web/templates"
	"github.com/louisbranch/renderdemo/internal/view"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type handlers struct {
	renderer pagerender.Renderer
	logger   *log.Logger
	registry *registry
	tracer   trace.Tracer
}

func newHandlers(cfg Config, reg *registry) handlers {
	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return handlers{
		renderer: cfg.Dependencies.Renderer,
		logger:   cfg.Dependencies.LoggerOrDefault(),
		registry: reg,
		tracer:   tp.Tracer(observability.TracerName),
	}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	inst := h.registry.mount()
	h.logger.Printf("echo instance mounted instance=%s request_id=%s", inst.id, httpx.RequestIDFrom(r))
	h.writeDashboardPage(w, r, inst.id, inst.render())
}

func (h handlers) handleUpdateText(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(httpx.RequestContext(r), "dashboard.update_text")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, apperrors.E(apperrors.KindInvalidInput, "invalid form body"))
		return
	}
	id := strings.TrimSpace(r.PostFormValue(routepath.FieldInstance))
	if id == "" {
		h.writeError(w, r, apperrors.E(apperrors.KindInvalidInput, "instance is required"))
		return
	}
	span.SetAttributes(attribute.String("echo.instance", id))

	inst, ok := h.registry.lookup(id)
	if !ok {
		span.SetAttributes(attribute.Bool("echo.remounted", true))
		h.navigateToDashboard(ctx, w, r, id)
		return
	}

	text := r.PostFormValue(routepath.FieldText)
	out := inst.update(text)
	span.SetAttributes(attribute.Int("echo.text_bytes", len(text)))

	if httpx.IsHTMXRequest(r) {
		if err := pagerender.WriteFragment(w, r, http.StatusOK, webtemplates.Greeting(out)); err != nil {
			h.logger.Printf("render greeting instance=%s err=%v", id, err)
			h.writeError(w, r, err)
		}
		return
	}
	// The replaced page sends teardown for the id it was rendered with.
	newID, ok := h.registry.rekey(inst)
	if !ok {
		h.navigateToDashboard(ctx, w, r, id)
		return
	}
	span.SetAttributes(attribute.String("echo.rekeyed", newID))
	h.writeDashboardPage(w, r, newID, out)
}

// navigateToDashboard sends the client to a freshly mounted echo view.
func (h handlers) navigateToDashboard(ctx context.Context, w http.ResponseWriter, r *http.Request, id string) {
	if err := (redirectNavigator{w: w, r: r}).Navigate(ctx, routepath.Dashboard); err != nil {
		h.logger.Printf("navigate to dashboard instance=%s request_id=%s err=%v", id, httpx.RequestIDFrom(r), err)
		h.writeError(w, r, err)
	}
}

func (h handlers) handleUnmount(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.FormValue(routepath.FieldInstance))
	if id == "" {
		h.writeError(w, r, apperrors.E(apperrors.KindInvalidInput, "instance is required"))
		return
	}
	if h.registry.unmount(id) {
		h.logger.Printf("echo instance unmounted instance=%s", id)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, apperrors.E(apperrors.KindNotFound, "page not found"))
}

func (h handlers) writeDashboardPage(w http.ResponseWriter, r *http.Request, id string, out view.EchoOutput) {
	err := h.renderer.WritePage(w, r, pagerender.Page{
		TitleKey: platformi18n.KeyTitleDashboard,
		Body:     webtemplates.DashboardPage(out, id),
	})
	if err != nil {
		h.logger.Printf("render dashboard instance=%s err=%v", id, err)
		h.renderer.WriteError(w, r, http.StatusInternalServerError)
	}
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	if httpx.IsHTMXRequest(r) || (status < http.StatusInternalServerError && status != http.StatusNotFound) {
		httpx.WriteError(w, err)
		return
	}
	h.renderer.WriteError(w, r, status)
}
