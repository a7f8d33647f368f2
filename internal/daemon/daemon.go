// Package daemon runs the live editing session: it hosts the document model,
// debounces mutation bursts into preview renders, serves the preview and the
// generated bundle over HTTP, journals mutations, watches the business record
// file for external edits and periodically autosaves the project snapshot.
package daemon

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"

	"git.home.luguber.info/inful/siteforge/internal/business"
	"git.home.luguber.info/inful/siteforge/internal/config"
	"git.home.luguber.info/inful/siteforge/internal/document"
	sferrors "git.home.luguber.info/inful/siteforge/internal/errors"
	"git.home.luguber.info/inful/siteforge/internal/events"
	"git.home.luguber.info/inful/siteforge/internal/eventstore"
	"git.home.luguber.info/inful/siteforge/internal/generator"
	"git.home.luguber.info/inful/siteforge/internal/logfields"
	"git.home.luguber.info/inful/siteforge/internal/metrics"
	"git.home.luguber.info/inful/siteforge/internal/preview"
	"git.home.luguber.info/inful/siteforge/internal/workspace"
)

// Daemon wires the editing session together. Construct with New, then Run.
type Daemon struct {
	cfg      *config.Config
	bus      *events.Bus
	model    *document.Model
	project  *document.WebsiteProject
	record   *business.Record
	journal  eventstore.Store
	hub      *LiveReloadHub
	recorder metrics.Recorder
	session  *workspace.Manager

	renderRunning atomic.Bool

	mu          sync.RWMutex
	previewHTML string
	previewHash string
	bundle      map[string]string
}

func New(cfg *config.Config) (*Daemon, error) {
	rec, gaps, err := business.Load(cfg.Record)
	if err != nil {
		return nil, err
	}
	for _, gap := range gaps {
		slog.Warn("business record gap filled", "field", gap.Field, "default", gap.Default)
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if cfg.Preview.Metrics {
		recorder = metrics.NewPrometheusRecorder(nil)
	}

	var journal eventstore.Store
	if cfg.Preview.JournalPath != "" {
		journal, err = eventstore.NewSQLiteStore(cfg.Preview.JournalPath)
		if err != nil {
			return nil, sferrors.JournalError("open", err)
		}
	}

	session := workspace.NewPersistentManager(cfg.Output.Dir, "session")
	if err := session.Create(); err != nil {
		return nil, sferrors.WorkspaceError("create session workspace", err)
	}

	project := document.NewProject(rec.BusinessName)
	model := document.NewModel()
	model.Replace(document.SeedFromRecord(rec), project.Theme)

	d := &Daemon{
		cfg:      cfg,
		bus:      events.NewBus(),
		model:    model,
		project:  project,
		record:   rec,
		journal:  journal,
		recorder: recorder,
		session:  session,
		bundle:   map[string]string{},
	}
	d.hub = NewLiveReloadHub(recorder)
	model.AddObserver(d.onMutation)
	return d, nil
}

// Model exposes the live document model for editor surfaces.
func (d *Daemon) Model() *document.Model { return d.model }

// Bus exposes the event bus for additional subscribers.
func (d *Daemon) Bus() *events.Bus { return d.bus }

// Run starts all daemon components and blocks until ctx is cancelled.
func (d *Daemon) Run(ctx context.Context) error {
	defer d.close()

	if err := d.regenerateBundle(); err != nil {
		return err
	}
	d.renderPreview("startup")

	debouncer, err := NewRenderDebouncer(d.bus, RenderDebouncerConfig{
		QuietWindow:        d.cfg.Preview.QuietWindow,
		MaxDelay:           d.cfg.Preview.MaxDelay,
		CheckRenderRunning: d.renderRunning.Load,
	})
	if err != nil {
		return err
	}

	var publisher *NATSPublisher
	if d.cfg.NATS.URL != "" {
		publisher, err = NewNATSPublisher(d.cfg.NATS.URL, d.cfg.NATS.Subject)
		if err != nil {
			return err
		}
		defer publisher.Close()
		slog.Info("nats publisher connected", "subject", d.cfg.NATS.Subject)
	}

	watcher, err := NewRecordWatcher(d.cfg.Record, d.reloadRecord)
	if err != nil {
		return sferrors.DaemonError("record watcher", err)
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return sferrors.DaemonError("scheduler", err)
	}
	if d.cfg.Preview.AutosaveInterval > 0 {
		_, err = scheduler.NewJob(
			gocron.DurationJob(d.cfg.Preview.AutosaveInterval),
			gocron.NewTask(d.autosave),
			gocron.WithName("autosave"),
		)
		if err != nil {
			return sferrors.DaemonError("autosave job", err)
		}
	}

	server := NewServer(d.cfg.Preview.Addr, d)

	var wg sync.WaitGroup
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := debouncer.Run(runCtx); err != nil {
			slog.Error("render debouncer stopped", logfields.Error(err))
		}
	}()
	<-debouncer.Ready()

	wg.Add(1)
	go func() {
		defer wg.Done()
		d.consumeRenders(runCtx, publisher)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		watcher.Run(runCtx)
	}()

	scheduler.Start()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil && err != http.ErrServerClosed {
			cancel()
			wg.Wait()
			return sferrors.DaemonError("http server", err)
		}
	}

	slog.Info("daemon shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Warn("server shutdown", logfields.Error(err))
	}
	if err := scheduler.Shutdown(); err != nil {
		slog.Warn("scheduler shutdown", logfields.Error(err))
	}
	d.autosave()
	cancel()
	wg.Wait()
	return nil
}

func (d *Daemon) close() {
	d.hub.Close()
	d.bus.Close()
	if d.journal != nil {
		if err := d.journal.Close(); err != nil {
			slog.Warn("close journal", logfields.Error(err))
		}
	}
}

// onMutation is installed as the model observer. It journals the mutation,
// records it and requests a debounced preview render.
func (d *Daemon) onMutation(mut document.Mutation) {
	d.recorder.IncMutation(string(mut.Op), string(mut.Condition))

	if d.journal != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := d.journal.Append(ctx, eventstore.Entry{
			ProjectID: d.project.ID,
			Op:        string(mut.Op),
			SectionID: mut.SectionID,
			BlockID:   mut.BlockID,
			Condition: string(mut.Condition),
			Timestamp: time.Now(),
		})
		cancel()
		if err != nil {
			slog.Warn("journal append failed", logfields.Error(err), logfields.Mutation(string(mut.Op)))
		}
	}

	if mut.Condition == document.ConditionNotFound {
		return
	}
	if err := d.bus.Publish(context.Background(), events.RenderRequested{
		Op:          mut.Op,
		SectionID:   mut.SectionID,
		RequestedAt: time.Now(),
	}); err != nil {
		slog.Warn("publish render request", logfields.Error(err))
	}
}

func (d *Daemon) consumeRenders(ctx context.Context, publisher *NATSPublisher) {
	renderCh, unsubscribe := events.Subscribe[events.RenderNow](d.bus, 16)
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-renderCh:
			if !ok {
				return
			}
			hash, duration := d.renderPreview(ev.DebounceCause)
			if publisher != nil {
				publisher.Publish(PreviewEvent{
					Hash:       hash,
					RenderedAt: time.Now(),
					DurationMS: duration.Milliseconds(),
				})
			}
		}
	}
}

// renderPreview recomputes the preview document from the current model state,
// stores it and broadcasts the new hash to livereload clients.
func (d *Daemon) renderPreview(cause string) (string, time.Duration) {
	d.renderRunning.Store(true)
	defer d.renderRunning.Store(false)

	// Snapshot under the lock; reloadRecord swaps record and model from the
	// watcher goroutine.
	d.mu.RLock()
	sections := d.model.Sections()
	theme := d.model.Theme()
	name := d.record.BusinessName
	d.mu.RUnlock()

	start := time.Now()
	html := preview.Render(sections, theme, name)
	duration := time.Since(start)
	d.recorder.ObserveRenderDuration(duration)

	sum := sha256.Sum256([]byte(html))
	hash := hex.EncodeToString(sum[:8])

	d.mu.Lock()
	d.previewHTML = html
	d.previewHash = hash
	d.mu.Unlock()

	d.hub.Broadcast(hash)
	if err := d.bus.Publish(context.Background(), events.PreviewRendered{
		Hash:       hash,
		RenderedAt: start,
		Duration:   duration,
	}); err != nil {
		slog.Debug("publish preview rendered", logfields.Error(err))
	}
	slog.Debug("preview rendered", "cause", cause, "hash", hash,
		logfields.DurationMS(float64(duration.Milliseconds())))
	return hash, duration
}

// regenerateBundle rebuilds the static bundle served under /bundle/ from the
// current business record.
func (d *Daemon) regenerateBundle() error {
	d.mu.RLock()
	rec := d.record
	d.mu.RUnlock()

	gen := generator.New().SetRecorder(d.recorder)
	templates, err := gen.Generate(rec, generator.Options{
		VariantCount: 1,
		Locale:       d.cfg.Generate.Locale,
		Currency:     d.cfg.Generate.Currency,
	})
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.bundle = templates[0].Files
	d.mu.Unlock()
	return nil
}

// reloadRecord is invoked by the record watcher when the business record file
// changes on disk. The model is re-seeded from the fresh record.
func (d *Daemon) reloadRecord(path string) {
	rec, gaps, err := business.Load(path)
	if err != nil {
		slog.Warn("record reload failed, keeping previous record",
			logfields.Path(path), logfields.Error(err))
		return
	}
	for _, gap := range gaps {
		slog.Debug("business record gap filled", "field", gap.Field)
	}

	d.mu.Lock()
	d.record = rec
	d.model.Replace(document.SeedFromRecord(rec), d.model.Theme())
	d.mu.Unlock()
	if err := d.regenerateBundle(); err != nil {
		slog.Warn("bundle regeneration failed", logfields.Error(err))
	}

	if err := d.bus.Publish(context.Background(), events.RecordReloaded{
		Path:       path,
		ReloadedAt: time.Now(),
	}); err != nil {
		slog.Debug("publish record reloaded", logfields.Error(err))
	}
	if err := d.bus.Publish(context.Background(), events.RenderRequested{
		Op:          "record_reload",
		RequestedAt: time.Now(),
	}); err != nil {
		slog.Warn("publish render request", logfields.Error(err))
	}
	slog.Info("business record reloaded", logfields.Path(path))
}

// autosave persists the current project snapshot into the session workspace.
func (d *Daemon) autosave() {
	d.mu.RLock()
	sections := d.model.Sections()
	theme := d.model.Theme()
	name := d.record.BusinessName
	d.mu.RUnlock()

	d.project.Pages = []document.PageTemplate{{
		ID:       d.project.ID,
		Name:     "Home",
		PageType: "landing",
		Sections: sections,
		SEO:      document.SEOMetadata{Title: name},
		Settings: document.PageSettings{ShowInNavigation: true},
	}}
	d.project.Theme = theme

	path := filepath.Join(d.session.GetPath(), "project.yaml")
	if err := d.project.SaveSnapshot(path); err != nil {
		slog.Warn("autosave failed", logfields.Path(path), logfields.Error(err))
		return
	}
	slog.Debug("project autosaved", logfields.Path(path))
}

// PreviewHTML returns the most recently rendered preview document.
func (d *Daemon) PreviewHTML() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.previewHTML
}

// PreviewHash returns the hash of the current preview document.
func (d *Daemon) PreviewHash() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.previewHash
}

// BundleFile returns a generated bundle file by name.
func (d *Daemon) BundleFile(name string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	content, ok := d.bundle[name]
	return content, ok
}
