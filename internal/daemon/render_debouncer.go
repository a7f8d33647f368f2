package daemon

import (
	"context"
	"sync"
	"time"

	sferrors "git.home.luguber.info/inful/siteforge/internal/errors"
	"git.home.luguber.info/inful/siteforge/internal/events"
)

type RenderDebouncerConfig struct {
	QuietWindow time.Duration
	MaxDelay    time.Duration

	// CheckRenderRunning reports whether a render is currently running.
	// When true, the debouncer will avoid emitting RenderNow and will
	// instead schedule exactly one follow-up render after the running
	// render finishes.
	CheckRenderRunning func() bool

	// PollInterval controls how often the debouncer polls for render
	// completion after it has detected that a render is running.
	PollInterval time.Duration
}

// RenderDebouncer coalesces bursts of RenderRequested events into a single
// RenderNow:
//   - quiet window debounce
//   - max delay (cannot postpone indefinitely, so the preview always
//     converges to the latest model state)
//   - if a render is already running, queue exactly one follow-up
//
// It is safe to run as a single goroutine.
type RenderDebouncer struct {
	bus *events.Bus
	cfg RenderDebouncerConfig

	mu        sync.Mutex
	readyOnce sync.Once
	ready     chan struct{}

	pending         bool
	pendingAfterRun bool
	firstRequestAt  time.Time
	lastRequestAt   time.Time
	requestCount    int
	pollingAfterRun bool
}

func NewRenderDebouncer(bus *events.Bus, cfg RenderDebouncerConfig) (*RenderDebouncer, error) {
	if bus == nil {
		return nil, sferrors.New(sferrors.CategoryDaemon, sferrors.SeverityFatal, "bus is required")
	}
	if cfg.QuietWindow <= 0 {
		return nil, sferrors.New(sferrors.CategoryDaemon, sferrors.SeverityFatal, "quiet window must be > 0")
	}
	if cfg.MaxDelay <= 0 {
		return nil, sferrors.New(sferrors.CategoryDaemon, sferrors.SeverityFatal, "max delay must be > 0")
	}
	if cfg.CheckRenderRunning == nil {
		cfg.CheckRenderRunning = func() bool { return false }
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 50 * time.Millisecond
	}
	return &RenderDebouncer{bus: bus, cfg: cfg, ready: make(chan struct{})}, nil
}

// Ready is closed once Run has fully initialized and subscribed to events.
// This is primarily intended for tests and deterministic startup sequencing.
func (d *RenderDebouncer) Ready() <-chan struct{} {
	return d.ready
}

func (d *RenderDebouncer) Run(ctx context.Context) error {
	reqCh, unsubscribe := events.Subscribe[events.RenderRequested](d.bus, 64)
	defer unsubscribe()

	d.readyOnce.Do(func() { close(d.ready) })

	quietTimer := newStoppedTimer()
	maxTimer := newStoppedTimer()
	pollTimer := newStoppedTimer()

	var (
		quietC <-chan time.Time
		maxC   <-chan time.Time
		pollC  <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case req, ok := <-reqCh:
			if !ok {
				return nil
			}
			d.onRequest(req)

			resetTimer(quietTimer, d.cfg.QuietWindow)
			quietC = quietTimer.C

			if d.shouldStartMaxTimer() {
				resetTimer(maxTimer, d.cfg.MaxDelay)
				maxC = maxTimer.C
			}

		case <-quietC:
			if d.tryEmit(ctx, "quiet") {
				quietC = nil
				maxC = nil
			}
			// else: render running; keep pendingAfterRun until completion.

		case <-maxC:
			if d.tryEmit(ctx, "max_delay") {
				quietC = nil
				maxC = nil
			}

		case <-pollC:
			if d.tryEmitAfterRunning(ctx) {
				pollC = nil
				quietC = nil
				maxC = nil
				continue
			}
			resetTimer(pollTimer, d.cfg.PollInterval)
			pollC = pollTimer.C
		}

		// Start polling only when we have pendingAfterRun.
		if d.shouldPollAfterRun() && pollC == nil {
			resetTimer(pollTimer, d.cfg.PollInterval)
			pollC = pollTimer.C
		}
	}
}

func newStoppedTimer() *time.Timer {
	t := time.NewTimer(time.Hour)
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	return t
}

func resetTimer(t *time.Timer, after time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(after)
}

func (d *RenderDebouncer) onRequest(req events.RenderRequested) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := req.RequestedAt
	if now.IsZero() {
		now = time.Now()
	}
	if !d.pending {
		d.pending = true
		d.firstRequestAt = now
		d.requestCount = 0
	}
	d.lastRequestAt = now
	d.requestCount++
}

func (d *RenderDebouncer) shouldStartMaxTimer() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending && d.requestCount == 1
}

func (d *RenderDebouncer) shouldPollAfterRun() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pendingAfterRun && !d.pollingAfterRun
}

func (d *RenderDebouncer) tryEmit(ctx context.Context, cause string) bool {
	d.mu.Lock()
	pending := d.pending
	first := d.firstRequestAt
	last := d.lastRequestAt
	count := d.requestCount
	if !pending {
		d.mu.Unlock()
		return true
	}

	if d.cfg.CheckRenderRunning() {
		d.pendingAfterRun = true
		d.mu.Unlock()
		return false
	}

	d.pending = false
	d.pendingAfterRun = false
	d.pollingAfterRun = false
	d.mu.Unlock()

	evt := events.RenderNow{
		TriggeredAt:   time.Now(),
		RequestCount:  count,
		FirstRequest:  first,
		LastRequest:   last,
		DebounceCause: cause,
	}
	_ = d.bus.Publish(ctx, evt)
	return true
}

func (d *RenderDebouncer) tryEmitAfterRunning(ctx context.Context) bool {
	d.mu.Lock()
	if !d.pendingAfterRun {
		d.mu.Unlock()
		return true
	}
	d.pollingAfterRun = true
	d.mu.Unlock()

	if d.cfg.CheckRenderRunning() {
		return false
	}

	// Render finished; emit exactly one follow-up.
	return d.tryEmit(ctx, "after_running")
}
