package dashboard

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	module "github.com/louisbranch/renderdemo/internal/services/web/module"
	"github.com/louisbranch/renderdemo/internal/services/web/routepath"
)

var instancePattern = regexp.MustCompile(`name="instance" value="([^"]+)"`)

func newTestHandler(t *testing.T, logs io.Writer) http.Handler {
	t.Helper()
	if logs == nil {
		logs = io.Discard
	}
	m := New(Config{Dependencies: module.Dependencies{Logger: log.New(logs, "", 0)}})
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.DashboardPrefix {
		t.Fatalf("Prefix = %q, want %q", mount.Prefix, routepath.DashboardPrefix)
	}
	return mount.Handler
}

func mountInstance(t *testing.T, h http.Handler) (string, string) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Dashboard, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("GET dashboard status = %d", rr.Code)
	}
	match := instancePattern.FindStringSubmatch(rr.Body.String())
	if match == nil {
		t.Fatalf("instance id missing from page: %q", rr.Body.String())
	}
	return match[1], rr.Body.String()
}

func postText(h http.Handler, instanceID, text string, htmx bool) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set(routepath.FieldInstance, instanceID)
	form.Set(routepath.FieldText, text)
	req := httptest.NewRequest(http.MethodPost, routepath.DashboardText, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestModuleIDReturnsDashboard(t *testing.T) {
	t.Parallel()

	if got := New(Config{}).ID(); got != "dashboard" {
		t.Fatalf("ID() = %q, want %q", got, "dashboard")
	}
}

func TestDashboardInitialRender(t *testing.T) {
	t.Parallel()

	_, body := mountInstance(t, newTestHandler(t, nil))
	for _, marker := range []string{"<h1>DashboardPage</h1>", `name="text" value=""`, `<h2 id="greeting">Hello, !</h2>`, "<title>Dashboard</title>"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q: %q", marker, body)
		}
	}
}

func TestDashboardTrailingSlashServesIndex(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.DashboardPrefix, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestDashboardHTMXUpdateReturnsGreetingFragment(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	id, _ := mountInstance(t, h)
	for _, tc := range []struct {
		text string
		want string
	}{
		{text: "A", want: `<h2 id="greeting">Hello, A!</h2>`},
		{text: "Al", want: `<h2 id="greeting">Hello, Al!</h2>`},
		{text: "Ali", want: `<h2 id="greeting">Hello, Ali!</h2>`},
		{text: "", want: `<h2 id="greeting">Hello, !</h2>`},
	} {
		rr := postText(h, id, tc.text, true)
		if rr.Code != http.StatusOK {
			t.Fatalf("POST %q status = %d", tc.text, rr.Code)
		}
		if got := rr.Body.String(); got != tc.want {
			t.Fatalf("POST %q body = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestDashboardFormPostRendersFullPage(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	id, _ := mountInstance(t, h)
	rr := postText(h, id, "Ali", false)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	for _, marker := range []string{"<!DOCTYPE html>", `name="text" value="Ali"`, "Hello, Ali!"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q: %q", marker, body)
		}
	}
	match := instancePattern.FindStringSubmatch(body)
	if match == nil || match[1] == id {
		t.Fatalf("full page should carry a new instance id, got %v", match)
	}
}

func TestDashboardUpdateKeepsTextVerbatim(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	id, _ := mountInstance(t, h)
	rr := postText(h, id, "  <b>x</b>  ", true)
	if got := rr.Body.String(); got != `<h2 id="greeting">Hello,   &lt;b&gt;x&lt;/b&gt;  !</h2>` {
		t.Fatalf("body = %q", got)
	}
}

func TestDashboardUnknownInstanceNavigatesToDashboard(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	rr := postText(h, "missing", "A", true)
	if got := rr.Header().Get("HX-Redirect"); got != routepath.Dashboard {
		t.Fatalf("HX-Redirect = %q, want %q", got, routepath.Dashboard)
	}

	rr = postText(h, "missing", "A", false)
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != routepath.Dashboard {
		t.Fatalf("Location = %q, want %q", got, routepath.Dashboard)
	}
}

func TestDashboardUpdateRequiresInstance(t *testing.T) {
	t.Parallel()

	rr := postText(newTestHandler(t, nil), "", "A", true)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestDashboardUpdateRejectsGet(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.DashboardText, nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestDashboardUnmountDiscardsState(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	id, _ := mountInstance(t, h)
	form := url.Values{routepath.FieldInstance: {id}}
	req := httptest.NewRequest(http.MethodPost, routepath.DashboardInstance, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if rr := postText(h, id, "A", true); rr.Header().Get("HX-Redirect") != routepath.Dashboard {
		t.Fatalf("expected unmounted instance to remount, got headers %v", rr.Header())
	}
}

func TestDashboardRemountStartsFresh(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	first, _ := mountInstance(t, h)
	postText(h, first, "Ali", true)
	second, body := mountInstance(t, h)
	if first == second {
		t.Fatal("expected a new instance per mount")
	}
	if !strings.Contains(body, "Hello, !") {
		t.Fatalf("remounted page carries old state: %q", body)
	}
}

func TestDashboardLogsEveryRenderPass(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	h := newTestHandler(t, &logs)
	id, _ := mountInstance(t, h)
	postText(h, id, "A", true)
	postText(h, id, "Al", true)
	if got := strings.Count(logs.String(), "Dashboard client-component"); got != 3 {
		t.Fatalf("render traces = %d, want 3: %q", got, logs.String())
	}
}

func TestDashboardUnknownSubpathNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dashboard/settings", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestDashboardFormPostSurvivesTeardownOfReplacedPage(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	oldID, _ := mountInstance(t, h)

	page := postText(h, oldID, "Ali", false)
	match := instancePattern.FindStringSubmatch(page.Body.String())
	if match == nil {
		t.Fatalf("instance id missing from page: %q", page.Body.String())
	}
	newID := match[1]

	form := url.Values{}
	form.Set(routepath.FieldInstance, oldID)
	req := httptest.NewRequest(http.MethodPost, routepath.DashboardInstance, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("teardown status = %d, want %d", rr.Code, http.StatusNoContent)
	}

	next := postText(h, newID, "Alix", true)
	if got := next.Header().Get("HX-Redirect"); got != "" {
		t.Fatalf("HX-Redirect = %q, want none", got)
	}
	if got := next.Body.String(); got != `<h2 id="greeting">Hello, Alix!</h2>` {
		t.Fatalf("fragment = %q", got)
	}
}

func TestDashboardUnmountRejectsGet(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.DashboardInstance, nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}
