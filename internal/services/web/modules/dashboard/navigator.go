package dashboard

import (
	"context"
	"net/http"

	"github.com/louisbranch/renderdemo/internal/services/web/platform/httpx"
)

// redirectNavigator performs navigation by answering the current request
// with a redirect: HX-Redirect for htmx, 302 otherwise.
type redirectNavigator struct {
	w http.ResponseWriter
	r *http.Request
}

func (n redirectNavigator) Navigate(_ context.Context, address string) error {
	httpx.WriteRedirect(n.w, n.r, address)
	return nil
}
