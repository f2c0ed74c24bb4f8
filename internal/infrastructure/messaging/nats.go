package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/johnquangdev/engagement-tracker/internal/usecase/engagement"
)

// DefaultSubject is the subject engagement results are published on
const DefaultSubject = "engagement.computed"

// NATSConfig holds the connection settings of the publisher
type NATSConfig struct {
	URL     string
	Token   string
	Subject string
}

// Publisher publishes engagement events to NATS
type Publisher struct {
	conn    *nats.Conn
	subject string
	logger  *zap.Logger

	publish func(subject string, data []byte) error
}

var _ engagement.EventPublisher = (*Publisher)(nil)

// NewPublisher connects to NATS. The connection keeps retrying in the
// background when the server is not reachable yet.
func NewPublisher(cfg NATSConfig, logger *zap.Logger) (*Publisher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []nats.Option{
		nats.Name("engagement-tracker"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
	}
	if cfg.Token != "" {
		opts = append(opts, nats.Token(cfg.Token))
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	p := newPublisher(cfg.Subject, logger, nc.Publish)
	p.conn = nc
	return p, nil
}

func newPublisher(subject string, logger *zap.Logger, publish func(string, []byte) error) *Publisher {
	if subject == "" {
		subject = DefaultSubject
	}
	return &Publisher{subject: subject, logger: logger, publish: publish}
}

// PublishEngagementComputed publishes the scores of a meeting as JSON
func (p *Publisher) PublishEngagementComputed(ctx context.Context, event engagement.ComputedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	if err := p.publish(p.subject, payload); err != nil {
		return fmt.Errorf("publish %s: %w", p.subject, err)
	}

	p.logger.Debug("engagement event published",
		zap.String("subject", p.subject),
		zap.Int64("meeting_id", event.MeetingID),
		zap.Int("participants", len(event.Scores)),
	)
	return nil
}

// Close drains pending messages and closes the connection
func (p *Publisher) Close() {
	if p.conn == nil {
		return
	}
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
	}
}
