// Package eventstream publishes translation events to an event stream backend.
package eventstream

import "context"

// Publisher publishes translation events to an event stream backend.
type Publisher interface {
	PublishTranslation(ctx context.Context, event *TranslationEvent) error
	Close() error
}
