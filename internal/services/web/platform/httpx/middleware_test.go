package httpx

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestChainRunsFirstMiddlewareOutermost(t *testing.T) {
	t.Parallel()

	var order []string
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), tag("outer"), nil, tag("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if got := strings.Join(order, ","); got != "outer,inner,handler" {
		t.Fatalf("order = %q", got)
	}
}

func TestChainNilHandlerIsNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Chain(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestRequireMethod(t *testing.T) {
	t.Parallel()

	h := RequireMethod(http.MethodPost)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	for _, tc := range []struct {
		method string
		want   int
	}{
		{method: http.MethodPost, want: http.StatusNoContent},
		{method: http.MethodGet, want: http.StatusMethodNotAllowed},
	} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(tc.method, "/dashboard/text", nil))
		if rr.Code != tc.want {
			t.Fatalf("%s status = %d, want %d", tc.method, rr.Code, tc.want)
		}
		if tc.want == http.StatusMethodNotAllowed && rr.Header().Get("Allow") != http.MethodPost {
			t.Fatalf("Allow = %q, want %q", rr.Header().Get("Allow"), http.MethodPost)
		}
	}
}

func TestRequestIDMintsAndStoresID(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if !strings.HasPrefix(seen, "web-") {
		t.Fatalf("request id = %q, want web- prefix", seen)
	}
	if got := rr.Header().Get(requestIDHeader); got != seen {
		t.Fatalf("response id = %q, want %q", got, seen)
	}
}

func TestRequestIDKeepsIncomingID(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "req-42")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "req-42" {
		t.Fatalf("request id = %q, want %q", seen, "req-42")
	}
}

func TestRequestIDFromWithoutMiddleware(t *testing.T) {
	t.Parallel()

	if got := RequestIDFrom(nil); got != "-" {
		t.Fatalf("RequestIDFrom(nil) = %q", got)
	}
	if got := RequestIDFrom(httptest.NewRequest(http.MethodGet, "/", nil)); got != "-" {
		t.Fatalf("RequestIDFrom(bare) = %q", got)
	}
}

func TestRecoverPanicWritesServerError(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), RequestID(), RecoverPanic(log.New(&logs, "", 0)))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set(requestIDHeader, "req-7")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	for _, marker := range []string{"panic recovered", "path=/dashboard", "request_id=req-7", "panic=boom"} {
		if !strings.Contains(logs.String(), marker) {
			t.Fatalf("log missing %q: %q", marker, logs.String())
		}
	}
}

func TestRequestContextNilRequest(t *testing.T) {
	t.Parallel()

	if RequestContext(nil) == nil {
		t.Fatal("expected background context")
	}
}
