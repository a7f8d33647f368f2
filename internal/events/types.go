package events

import (
	"time"

	"git.home.luguber.info/inful/siteforge/internal/document"
)

// RenderRequested indicates the preview should be recomputed soon. Emitted
// once per applied mutation; the RenderDebouncer coalesces bursts.
type RenderRequested struct {
	Op          document.Op
	SectionID   string
	RequestedAt time.Time
}

// RenderNow is emitted by the RenderDebouncer once it decides a render
// should happen. Consumers recompute the preview from the latest model state.
type RenderNow struct {
	TriggeredAt   time.Time
	RequestCount  int
	FirstRequest  time.Time
	LastRequest   time.Time
	DebounceCause string // "quiet" or "max_delay" or "after_running"
}

// PreviewRendered is emitted after the preview document has been recomputed.
type PreviewRendered struct {
	Hash       string
	RenderedAt time.Time
	Duration   time.Duration
}

// RecordReloaded is emitted when the watched business record file changed
// and was re-read successfully.
type RecordReloaded struct {
	Path       string
	ReloadedAt time.Time
}
