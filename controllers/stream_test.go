package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"ClinicDesk/models"
	"ClinicDesk/notify"
	"ClinicDesk/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// streamRecorder lets the test read the body while the handler is still
// writing to it.
type streamRecorder struct {
	*httptest.ResponseRecorder
	mu sync.Mutex
}

func newStreamRecorder() *streamRecorder {
	return &streamRecorder{ResponseRecorder: httptest.NewRecorder()}
}

func (r *streamRecorder) Write(b []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ResponseRecorder.Write(b)
}

func (r *streamRecorder) WriteString(s string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ResponseRecorder.WriteString(s)
}

func (r *streamRecorder) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ResponseRecorder.Flush()
}

func (r *streamRecorder) body() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Body.String()
}

// openStream serves path until the returned stop function is called.
func openStream(t *testing.T, app *testApp, path string) (*streamRecorder, func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, path, nil).WithContext(ctx)
	w := newStreamRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		app.router.ServeHTTP(w, req)
	}()
	return w, func() {
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("stream did not stop after cancel")
		}
	}
}

func waitFor(t *testing.T, w *streamRecorder, frame string) {
	t.Helper()
	require.Eventually(t, func() bool { return strings.Contains(w.body(), frame) }, time.Second, 10*time.Millisecond, "missing %q in %q", frame, w.body())
}

func TestStream_MailGreeting(t *testing.T) {
	app := newTestApp(t)
	w, stop := openStream(t, app, "/sse")
	waitFor(t, w, "data:"+util.SSE_WELCOME+"\n\n")

	require.NoError(t, app.hub.Publish(context.Background(), notify.TopicMail, []byte(util.EMAIL_SENT)))
	waitFor(t, w, "data:"+util.EMAIL_SENT+"\n\n")
	stop()

	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
	assert.Eventually(t, func() bool { return app.hub.Subscribers(notify.TopicMail) == 0 }, time.Second, 10*time.Millisecond)
}

func TestStream_ReviewCount(t *testing.T) {
	app := newTestApp(t)
	w, stop := openStream(t, app, "/sse/reviews/count")
	defer stop()
	waitFor(t, w, `data:{"count":0}`)

	_, err := app.svc.SubmitReview(context.Background(), models.ReviewForm{
		Rating: "5", Name: "Maya", Profession: "Engineer", City: "Haifa", Review: "Great care",
	})
	require.NoError(t, err)
	waitFor(t, w, `data:{"count":1}`)
}

func TestStream_NewContacts(t *testing.T) {
	app := newTestApp(t)
	w, stop := openStream(t, app, "/sse/contacts")
	defer stop()
	require.Eventually(t, func() bool { return app.hub.Subscribers(notify.TopicContacts) == 1 }, time.Second, 10*time.Millisecond)

	_, err := app.svc.SubmitContact(context.Background(), models.ContactForm{
		Name: "Avi", Email: "avi@example.com", Tel: "052", Message: "Call me",
	})
	require.NoError(t, err)
	waitFor(t, w, `"name":"Avi"`)
}
