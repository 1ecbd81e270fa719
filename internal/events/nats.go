package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

const (
	defaultSubjectPrefix = "betabeer"
	defaultClientName    = "betabeer"
)

// conn is the part of *nats.Conn the publisher uses
type conn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// NATSConfig holds configuration for the NATS publisher
type NATSConfig struct {
	// URL is the NATS server list, e.g. nats://localhost:4222
	URL string

	// SubjectPrefix is prepended to every subject, defaults to "betabeer"
	SubjectPrefix string

	// Name identifies the connection on the server
	Name string
}

// NATSPublisher publishes events as JSON on <prefix>.<group>.<type>
type NATSPublisher struct {
	conn          conn
	subjectPrefix string
}

// NewNATS connects to NATS and returns a publisher
func NewNATS(cfg *NATSConfig) (*NATSPublisher, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.URL == "" {
		return nil, errors.New("NATS URL cannot be empty")
	}

	name := cfg.Name
	if name == "" {
		name = defaultClientName
	}

	opts := []nats.Option{
		nats.Name(name),
		nats.MaxReconnects(10),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				log.WithError(err).Error("NATS disconnected with error")
			} else {
				log.Warn("NATS disconnected")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("NATS reconnected")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.WithError(err).Error("NATS async error")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	log.WithField("servers", cfg.URL).Info("Connected to NATS")
	return newNATSPublisher(nc, cfg.SubjectPrefix), nil
}

func newNATSPublisher(c conn, subjectPrefix string) *NATSPublisher {
	if subjectPrefix == "" {
		subjectPrefix = defaultSubjectPrefix
	}
	return &NATSPublisher{
		conn:          c,
		subjectPrefix: subjectPrefix,
	}
}

// Subject returns the subject an event is published on
func (p *NATSPublisher) Subject(event *Event) string {
	return fmt.Sprintf("%s.%s.%s", p.subjectPrefix, subjectToken(event.GroupID), event.Type)
}

// subjectToken makes an id safe to use as a single subject token
func subjectToken(id string) string {
	if id == "" {
		return "_"
	}
	return strings.NewReplacer(".", "_", "*", "_", ">", "_", " ", "_").Replace(id)
}

// Publish serialises the event and publishes it
func (p *NATSPublisher) Publish(ctx context.Context, event *Event) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := p.Subject(event)
	if err := p.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("failed to publish event to NATS: %w", err)
	}

	log.WithFields(log.Fields{
		"eventType": event.Type,
		"eventID":   event.ID,
		"subject":   subject,
	}).Debug("Published event to NATS")

	return nil
}

// Close drains pending messages and closes the connection
func (p *NATSPublisher) Close() error {
	if err := p.conn.Drain(); err != nil {
		return fmt.Errorf("failed to drain NATS connection: %w", err)
	}
	return nil
}
