package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"

	"taskhub/domain/ports"
	"taskhub/pkg/logger"
)

const taskEventSubject = "tasks.events"

// NATSEventPublisher publishes task lifecycle events on core NATS.
// Delivery is best effort; a publish failure is logged, never returned.
type NATSEventPublisher struct {
	conn *nats.Conn
}

func NewNATSEventPublisher(url string) (*NATSEventPublisher, error) {
	nc, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, err
	}

	logger.Info("NATS connected", "url", url)
	return &NATSEventPublisher{conn: nc}, nil
}

func (p *NATSEventPublisher) Publish(ctx context.Context, event *ports.TaskEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal task event", "kind", event.Kind, "error", err)
		return
	}

	if err := p.conn.Publish(taskEventSubject, data); err != nil {
		logger.Warn("Failed to publish task event",
			"kind", event.Kind,
			"task_id", event.TaskID,
			"error", err,
		)
	}
}

func (p *NATSEventPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

// NoopEventPublisher is used when NATS is not configured.
type NoopEventPublisher struct{}

func (NoopEventPublisher) Publish(ctx context.Context, event *ports.TaskEvent) {}
