package nop

import (
	"context"

	"github.com/papercomputeco/rizz/pkg/eventstream"
)

// Publisher is a no-op eventstream publisher used for tests and disabled mode.
type Publisher struct{}

// NewPublisher creates a new no-op eventstream publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// PublishTranslation validates input and otherwise does nothing.
func (p *Publisher) PublishTranslation(_ context.Context, event *eventstream.TranslationEvent) error {
	if event == nil {
		return eventstream.ErrNilTranslationEvent
	}

	return nil
}

// Close is a no-op.
func (p *Publisher) Close() error {
	return nil
}
