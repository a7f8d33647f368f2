package daemon

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/siteforge/internal/document"
	"git.home.luguber.info/inful/siteforge/internal/events"
)

func startDebouncer(t *testing.T, bus *events.Bus, cfg RenderDebouncerConfig) {
	t.Helper()
	debouncer, err := NewRenderDebouncer(bus, cfg)
	require.NoError(t, err)

	go func() { _ = debouncer.Run(t.Context()) }()

	select {
	case <-debouncer.Ready():
	case <-time.After(250 * time.Millisecond):
		t.Fatal("timed out waiting for debouncer ready")
	}
}

func TestRenderDebouncer_BurstCoalescesToSingleRender(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()

	var running atomic.Bool
	renderNowCh, unsub := events.Subscribe[events.RenderNow](bus, 10)
	defer unsub()

	startDebouncer(t, bus, RenderDebouncerConfig{
		QuietWindow:        25 * time.Millisecond,
		MaxDelay:           200 * time.Millisecond,
		CheckRenderRunning: running.Load,
		PollInterval:       10 * time.Millisecond,
	})

	for range 5 {
		require.NoError(t, bus.Publish(context.Background(), events.RenderRequested{
			Op:          document.OpUpdateSection,
			RequestedAt: time.Now(),
		}))
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case got := <-renderNowCh:
		require.GreaterOrEqual(t, got.RequestCount, 1)
		require.Equal(t, "quiet", got.DebounceCause)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for RenderNow")
	}

	select {
	case <-renderNowCh:
		t.Fatal("expected only one RenderNow for burst")
	case <-time.After(75 * time.Millisecond):
		// ok
	}
}

func TestRenderDebouncer_MaxDelayForcesRender(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()

	var running atomic.Bool
	renderNowCh, unsub := events.Subscribe[events.RenderNow](bus, 10)
	defer unsub()

	startDebouncer(t, bus, RenderDebouncerConfig{
		QuietWindow:        200 * time.Millisecond, // would postpone forever while requests keep coming
		MaxDelay:           60 * time.Millisecond,
		CheckRenderRunning: running.Load,
		PollInterval:       10 * time.Millisecond,
	})

	deadline := time.Now().Add(150 * time.Millisecond)
	for time.Now().Before(deadline) {
		require.NoError(t, bus.Publish(context.Background(), events.RenderRequested{
			Op:          document.OpUpdateTheme,
			RequestedAt: time.Now(),
		}))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case got := <-renderNowCh:
		require.Equal(t, "max_delay", got.DebounceCause)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for max-delay RenderNow")
	}
}

func TestRenderDebouncer_RenderRunningQueuesOneFollowUp(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()

	var running atomic.Bool
	running.Store(true)

	renderNowCh, unsub := events.Subscribe[events.RenderNow](bus, 10)
	defer unsub()

	startDebouncer(t, bus, RenderDebouncerConfig{
		QuietWindow:        20 * time.Millisecond,
		MaxDelay:           50 * time.Millisecond,
		CheckRenderRunning: running.Load,
		PollInterval:       10 * time.Millisecond,
	})

	for range 10 {
		require.NoError(t, bus.Publish(context.Background(), events.RenderRequested{
			Op:          document.OpAddSection,
			RequestedAt: time.Now(),
		}))
	}

	select {
	case <-renderNowCh:
		t.Fatal("expected no RenderNow while a render is running")
	case <-time.After(100 * time.Millisecond):
		// ok
	}

	running.Store(false)

	select {
	case got := <-renderNowCh:
		require.Equal(t, "after_running", got.DebounceCause)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for follow-up RenderNow")
	}

	select {
	case <-renderNowCh:
		t.Fatal("expected exactly one follow-up RenderNow")
	case <-time.After(75 * time.Millisecond):
		// ok
	}
}

func TestRenderDebouncer_RejectsInvalidConfig(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()

	_, err := NewRenderDebouncer(nil, RenderDebouncerConfig{QuietWindow: time.Millisecond, MaxDelay: time.Second})
	require.Error(t, err)

	_, err = NewRenderDebouncer(bus, RenderDebouncerConfig{MaxDelay: time.Second})
	require.Error(t, err)

	_, err = NewRenderDebouncer(bus, RenderDebouncerConfig{QuietWindow: time.Millisecond})
	require.Error(t, err)
}
