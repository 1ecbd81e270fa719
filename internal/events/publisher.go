package events

//go:generate mockgen -package=mocks -destination=mocks/mock_publisher.go github.com/KirkDiggler/betabeer/internal/events Publisher

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Publisher announces committed ledger changes to listeners
type Publisher interface {
	// Publish sends an event. Callers treat failures as non-fatal.
	Publish(ctx context.Context, event *Event) error

	// Close flushes and releases the underlying connection
	Close() error
}

// NoopPublisher drops events. It is used when no message bus is configured.
type NoopPublisher struct{}

// NewNoop creates a publisher that only logs events at debug level
func NewNoop() *NoopPublisher {
	return &NoopPublisher{}
}

// Publish logs the event and returns nil
func (p *NoopPublisher) Publish(_ context.Context, event *Event) error {
	if event == nil {
		return nil
	}
	log.WithFields(log.Fields{
		"eventType": event.Type,
		"groupID":   event.GroupID,
		"betID":     event.BetID,
	}).Debug("Event publishing disabled, dropping event")
	return nil
}

// Close does nothing
func (p *NoopPublisher) Close() error {
	return nil
}
