package httpx

import (
	"errors"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/renderdemo/internal/services/web/platform/errors"
)

const (
	htmxRequestHeader  = "HX-Request"
	htmxRedirectHeader = "HX-Redirect"
)

// IsHTMXRequest reports whether htmx issued the request.
func IsHTMXRequest(r *http.Request) bool {
	return r != nil && strings.EqualFold(r.Header.Get(htmxRequestHeader), "true")
}

// WriteHTML writes payload as an HTML document or fragment.
func WriteHTML(w http.ResponseWriter, status int, payload string) error {
	if w == nil {
		return errors.New("response writer is required")
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := io.WriteString(w, payload)
	return err
}

// WriteError writes err as plain text with the status of its kind.
func WriteError(w http.ResponseWriter, err error) {
	if w == nil || err == nil {
		return
	}
	http.Error(w, err.Error(), apperrors.HTTPStatus(err))
}

// WriteRedirect sends the client to location. htmx requests get an
// HX-Redirect header so the browser performs a full navigation; others get
// a 302.
func WriteRedirect(w http.ResponseWriter, r *http.Request, location string) {
	if w == nil {
		return
	}
	if IsHTMXRequest(r) {
		w.Header().Set(htmxRedirectHeader, location)
		w.WriteHeader(http.StatusOK)
		return
	}
	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusFound)
}
