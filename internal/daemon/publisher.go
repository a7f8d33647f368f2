package daemon

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"git.home.luguber.info/inful/siteforge/internal/errors"
	"git.home.luguber.info/inful/siteforge/internal/logfields"
)

// PreviewEvent is the JSON payload published to NATS whenever a preview render
// completes. External tooling subscribes to mirror the editing session.
type PreviewEvent struct {
	Hash       string    `json:"hash"`
	RenderedAt time.Time `json:"renderedAt"`
	DurationMS int64     `json:"durationMs"`
}

// NATSPublisher pushes preview events to a NATS subject. It is optional; the
// daemon runs without it when no NATS URL is configured.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
}

func NewNATSPublisher(url, subject string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, errors.DaemonError("connect to nats", err)
	}
	return &NATSPublisher{conn: conn, subject: subject}, nil
}

func (p *NATSPublisher) Publish(ev PreviewEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		slog.Warn("marshal preview event", logfields.Error(err))
		return
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		slog.Warn("publish preview event", logfields.Error(err))
	}
}

func (p *NATSPublisher) Close() {
	p.conn.Drain()
}
