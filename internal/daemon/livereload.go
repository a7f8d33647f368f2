package daemon

import (
	"bufio"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"git.home.luguber.info/inful/siteforge/internal/metrics"
)

// LiveReloadHub manages SSE clients for preview-hash-change broadcasts. The
// preview surface listens here and refetches /preview when the hash moves.
type LiveReloadHub struct {
	mu       sync.RWMutex
	nextID   int
	clients  map[int]*lrClient
	recorder metrics.Recorder
	closed   bool
	lastHash string
}

type lrClient struct {
	id   int
	ch   chan string
	done chan struct{}
}

func NewLiveReloadHub(rec metrics.Recorder) *LiveReloadHub {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &LiveReloadHub{clients: map[int]*lrClient{}, recorder: rec}
}

// ServeHTTP implements the SSE endpoint at /livereload
func (h *LiveReloadHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	closed := h.closed
	h.mu.RUnlock()
	if closed {
		http.Error(w, "livereload shutting down", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "stream unsupported", http.StatusInternalServerError)
		return
	}

	client := &lrClient{ch: make(chan string, 8), done: make(chan struct{})}
	h.mu.Lock()
	client.id = h.nextID
	h.nextID++
	h.clients[client.id] = client
	current := h.lastHash
	count := len(h.clients)
	h.mu.Unlock()
	h.recorder.SetPreviewClients(count)

	defer h.dropClient(client.id)

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(": connected\n\n"); err != nil {
		slog.Debug("livereload write", "error", err)
		return
	}
	if current != "" {
		fmt.Fprintf(bw, "event: preview\ndata: %s\n\n", current)
	}
	if err := bw.Flush(); err != nil {
		return
	}
	flusher.Flush()

	heartbeat := time.NewTicker(25 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-client.done:
			return
		case hash := <-client.ch:
			fmt.Fprintf(bw, "event: preview\ndata: %s\n\n", hash)
			if err := bw.Flush(); err != nil {
				return
			}
			flusher.Flush()
		case <-heartbeat.C:
			if _, err := bw.WriteString(": ping\n\n"); err != nil {
				return
			}
			if err := bw.Flush(); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func (h *LiveReloadHub) dropClient(id int) {
	h.mu.Lock()
	if c, ok := h.clients[id]; ok {
		delete(h.clients, id)
		close(c.done)
	}
	count := len(h.clients)
	h.mu.Unlock()
	h.recorder.SetPreviewClients(count)
}

// Broadcast notifies all clients of a new preview hash. Clients that cannot
// keep up are skipped; they will catch up on their next event.
func (h *LiveReloadHub) Broadcast(hash string) {
	h.mu.Lock()
	if h.closed || hash == h.lastHash {
		h.mu.Unlock()
		return
	}
	h.lastHash = hash
	targets := make([]*lrClient, 0, len(h.clients))
	for _, c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.Unlock()

	for _, c := range targets {
		select {
		case c.ch <- hash:
		default:
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *LiveReloadHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close stops accepting clients and disconnects existing ones.
func (h *LiveReloadHub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	targets := make([]*lrClient, 0, len(h.clients))
	for _, c := range h.clients {
		targets = append(targets, c)
	}
	h.clients = map[int]*lrClient{}
	h.mu.Unlock()

	for _, c := range targets {
		close(c.done)
	}
}
