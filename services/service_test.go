package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"ClinicDesk/mailer"
	"ClinicDesk/notify"
	"ClinicDesk/repository"
)

type fakeMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *fakeMailer, *notify.Hub) {
	t.Helper()
	hub := notify.NewHub()
	m := &fakeMailer{}
	svc := New(repository.NewMemoryStore(), hub, m, Options{
		UploadsDir:    t.TempDir(),
		SessionSecret: "test-secret",
	})
	svc.now = func() time.Time { return fixedNow }
	return svc, m, hub
}

func receive(t *testing.T, ch <-chan []byte) string {
	t.Helper()
	select {
	case msg := <-ch:
		return string(msg)
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return ""
	}
}
