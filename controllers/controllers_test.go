package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"ClinicDesk/authorization"
	"ClinicDesk/mailer"
	"ClinicDesk/notify"
	"ClinicDesk/repository"
	"ClinicDesk/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// missingID is a well-formed object id that no store holds.
const missingID = "64b000000000000000000000"

type fakeMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return nil
}

type testApp struct {
	router *gin.Engine
	svc    *services.Service
	hub    *notify.Hub
	mail   *fakeMailer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return buildTestApp(t, func(*services.Service) Options { return Options{} })
}

// newGuardedApp requires a session cookie on the back-office pages.
func newGuardedApp(t *testing.T) *testApp {
	t.Helper()
	return buildTestApp(t, func(svc *services.Service) Options {
		return Options{Guard: authorization.RequireSession(svc)}
	})
}

func buildTestApp(t *testing.T, options func(*services.Service) Options) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hub := notify.NewHub()
	m := &fakeMailer{}
	svc := services.New(repository.NewMemoryStore(), hub, m, services.Options{
		UploadsDir:    t.TempDir(),
		SessionSecret: "test-secret",
	})
	r := gin.New()
	h := New(svc, options(svc))
	for _, register := range []func(*gin.Engine){
		h.Auth, h.Pages, h.Appointment, h.Patient, h.Invoice, h.Drug,
		h.Feedback, h.Settings, h.Todo, h.Stream,
	} {
		register(r)
	}
	return &testApp{router: r, svc: svc, hub: hub, mail: m}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) form(method, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return a.do(req)
}

func (a *testApp) sendJSON(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return a.do(req)
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func (a *testApp) get(path string) *httptest.ResponseRecorder {
	return a.do(httptest.NewRequest(http.MethodGet, path, nil))
}

// page decodes the JSON fallback body of a rendered view.
func page(t *testing.T, w *httptest.ResponseRecorder) (string, map[string]json.RawMessage) {
	t.Helper()
	var body struct {
		View string                     `json:"view"`
		Data map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.View, body.Data
}

func decode(t *testing.T, raw []byte, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, v))
}
