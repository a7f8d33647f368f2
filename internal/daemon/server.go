package daemon

import (
	"context"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"git.home.luguber.info/inful/siteforge/internal/logfields"
	"git.home.luguber.info/inful/siteforge/internal/metrics"
)

// Server exposes the editing daemon over HTTP: the live preview document, the
// generated bundle files, the livereload stream and operational endpoints.
type Server struct {
	daemon *Daemon
	http   *http.Server
}

func NewServer(addr string, d *Daemon) *Server {
	mux := http.NewServeMux()
	s := &Server{daemon: d}

	mux.HandleFunc("GET /preview", s.handlePreview)
	mux.HandleFunc("GET /bundle/", s.handleBundle)
	mux.Handle("GET /livereload", d.hub)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if pr, ok := d.recorder.(*metrics.PrometheusRecorder); ok {
		mux.Handle("GET /metrics", pr.Handler())
	}

	s.http = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// ListenAndServe blocks until the server stops. http.ErrServerClosed is
// returned after a clean Shutdown.
func (s *Server) ListenAndServe() error {
	slog.Info("preview server listening", logfields.Addr(s.http.Addr))
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	html := s.daemon.PreviewHTML()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write([]byte(html)); err != nil {
		slog.Debug("write preview response", logfields.Error(err))
	}
}

func (s *Server) handleBundle(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/bundle/")
	if name == "" || name != path.Base(name) {
		http.NotFound(w, r)
		return
	}
	content, ok := s.daemon.BundleFile(name)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", contentTypeFor(name))
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write([]byte(content)); err != nil {
		slog.Debug("write bundle response", logfields.Error(err), logfields.File(name))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}

func contentTypeFor(name string) string {
	switch path.Ext(name) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "text/javascript; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
