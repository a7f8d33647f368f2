package daemon

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"git.home.luguber.info/inful/siteforge/internal/metrics"
)

func sseConnect(t *testing.T, url string) *bufio.Reader {
	t.Helper()
	ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)
	t.Cleanup(cancel)
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return bufio.NewReader(resp.Body)
}

func readUntil(reader *bufio.Reader, needle string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		if strings.Contains(line, needle) {
			return true
		}
	}
	return false
}

func TestLiveReload_NewClientReceivesCurrentHash(t *testing.T) {
	hub := NewLiveReloadHub(metrics.NoopRecorder{})
	defer hub.Close()

	hub.Broadcast("abc123")

	server := httptest.NewServer(http.HandlerFunc(hub.ServeHTTP))
	defer server.Close()

	reader := sseConnect(t, server.URL)
	if !readUntil(reader, "abc123", 500*time.Millisecond) {
		t.Fatal("did not receive current hash on connect")
	}
}

func TestLiveReload_BroadcastReachesConnectedClient(t *testing.T) {
	hub := NewLiveReloadHub(metrics.NoopRecorder{})
	defer hub.Close()

	server := httptest.NewServer(http.HandlerFunc(hub.ServeHTTP))
	defer server.Close()

	reader := sseConnect(t, server.URL)
	if !readUntil(reader, "connected", 500*time.Millisecond) {
		t.Fatal("did not receive connect comment")
	}

	// The client registers before the handler writes its greeting, so the
	// broadcast below is guaranteed to find it.
	hub.Broadcast("def456")

	if !readUntil(reader, "def456", time.Second) {
		t.Fatal("did not receive broadcast hash")
	}
}

func TestLiveReload_DuplicateHashNotRebroadcast(t *testing.T) {
	hub := NewLiveReloadHub(metrics.NoopRecorder{})
	defer hub.Close()

	server := httptest.NewServer(http.HandlerFunc(hub.ServeHTTP))
	defer server.Close()

	reader := sseConnect(t, server.URL)
	if !readUntil(reader, "connected", 500*time.Millisecond) {
		t.Fatal("did not receive connect comment")
	}

	hub.Broadcast("same")
	if !readUntil(reader, "same", time.Second) {
		t.Fatal("did not receive first broadcast")
	}

	hub.Broadcast("same")
	hub.Broadcast("other")
	if !readUntil(reader, "other", time.Second) {
		t.Fatal("did not receive second distinct broadcast")
	}
}

func TestLiveReload_CloseRejectsNewClients(t *testing.T) {
	hub := NewLiveReloadHub(metrics.NoopRecorder{})
	hub.Close()

	server := httptest.NewServer(http.HandlerFunc(hub.ServeHTTP))
	defer server.Close()

	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 after close, got %d", resp.StatusCode)
	}
}
