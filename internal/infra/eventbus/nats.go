// Package eventbus publishes domain events to NATS subjects.
package eventbus

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"atlas-hotel/internal/pkg/config"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/usecase/shared"

	"github.com/nats-io/nats.go"
)

const clientName = "atlas-hotel"

var _ shared.EventPublisher = (*Publisher)(nil)

// Publisher is a no-op while NATS_URL is empty.
type Publisher struct {
	conn   *nats.Conn
	prefix string
}

// Connect keeps retrying in the background when the server is down at start,
// so bookings never wait on the bus.
func Connect(cfg config.BusConfig) (*Publisher, func(), error) {
	p := &Publisher{prefix: strings.Trim(cfg.SubjectPrefix, ". ")}
	url := strings.TrimSpace(cfg.NATSURL)
	if url == "" {
		slog.Info("event bus disabled", "reason", "NATS_URL not set")
		return p, func() {}, nil
	}

	conn, err := nats.Connect(url,
		nats.Name(clientName),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				slog.Warn("event bus disconnected", "error", err.Error())
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			slog.Info("event bus reconnected", "url", c.ConnectedUrlRedacted())
		}),
	)
	if err != nil {
		return nil, nil, errs.Wrap(err, "connect to NATS")
	}
	p.conn = conn

	cleanup := func() {
		if err := conn.Drain(); err != nil {
			slog.Warn("event bus drain failed", "error", err.Error())
			conn.Close()
		}
	}
	return p, cleanup, nil
}

func (p *Publisher) Enabled() bool {
	return p.conn != nil
}

// Subject is "<prefix>.<topic>", or the bare topic without a prefix.
func (p *Publisher) Subject(topic string) string {
	if p.prefix == "" {
		return topic
	}
	return p.prefix + "." + topic
}

func (p *Publisher) Publish(ctx context.Context, event shared.Event) error {
	if p.conn == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "publish cancelled")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "encode event")
	}
	if err := p.conn.Publish(p.Subject(event.Topic), data); err != nil {
		return errs.Wrapf(err, "publish %s", event.Topic)
	}
	return nil
}
