package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestSend(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		got = payload["text"]
	}))
	defer srv.Close()

	if err := NewWebhookNotifier(srv.URL, "").Send("hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello" {
		t.Errorf("payload text = %q", got)
	}
}

func TestSend_NoURL(t *testing.T) {
	if err := NewWebhookNotifier("", "").Send("dropped"); err != nil {
		t.Fatalf("unconfigured notifier should drop silently, got %v", err)
	}
}

func TestSendWithRetry_RecoversAfterFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "try again", http.StatusServiceUnavailable)
		}
	}))
	defer srv.Close()

	err := NewWebhookNotifier(srv.URL, "").SendWithRetry(context.Background(), "hello", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestSendWithRetry_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "always failing", http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewWebhookNotifier(srv.URL, "").SendWithRetry(ctx, "hello", 5)
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
