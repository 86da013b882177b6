package eventstream

import (
	"time"

	"github.com/google/uuid"

	"github.com/papercomputeco/rizz/pkg/llm"
)

const (
	// SchemaVersionV1 is the first version of the event payload schema.
	SchemaVersionV1 = 1

	// EventTypeTranslationCompleted is emitted after a translation is extracted.
	EventTypeTranslationCompleted = "rizz.translation.completed"
)

// TranslationEvent is a transport-neutral event payload for a completed
// translation.
type TranslationEvent struct {
	SchemaVersion int           `json:"schema_version"`
	EventType     string        `json:"event_type"`
	EventID       string        `json:"event_id"`
	EmittedAt     time.Time     `json:"emitted_at"`
	Providers     []string      `json:"providers"`
	RequestMeta   RequestMeta   `json:"request_meta"`
	Messages      []llm.Message `json:"messages"`
	Translation   string        `json:"translation"`
}

// RequestMeta captures request lifecycle metadata for the event.
type RequestMeta struct {
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	DurationMs  int64     `json:"duration_ms"`
	HasContext  bool      `json:"has_context"`
	InputChars  int       `json:"input_chars"`
}

// NewTranslationEvent stamps a v1 event with a fresh ID and emission time.
func NewTranslationEvent(providers []string, messages []llm.Message, translation string, meta RequestMeta) *TranslationEvent {
	return &TranslationEvent{
		SchemaVersion: SchemaVersionV1,
		EventType:     EventTypeTranslationCompleted,
		EventID:       uuid.NewString(),
		EmittedAt:     time.Now().UTC(),
		Providers:     providers,
		RequestMeta:   meta,
		Messages:      messages,
		Translation:   translation,
	}
}
