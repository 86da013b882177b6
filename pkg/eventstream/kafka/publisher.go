// Package kafka publishes translation events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/papercomputeco/rizz/pkg/eventstream"
)

const defaultWriteTimeout = 10 * time.Second

// messageWriter is the subset of *kafkago.Writer the publisher relies on.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Config is the Kafka publisher configuration.
type Config struct {
	// Brokers are the bootstrap broker addresses (e.g., "localhost:9092").
	Brokers []string

	// Topic receives one message per translation, keyed by event ID.
	Topic string

	// WriteTimeout bounds a single publish. Defaults to 10s.
	WriteTimeout time.Duration

	// Logger is the provided zap logger
	Logger *zap.Logger
}

// Publisher writes translation events as JSON messages.
type Publisher struct {
	writer       messageWriter
	writeTimeout time.Duration
	logger       *zap.Logger
}

// NewPublisher creates a Kafka publisher for the configured brokers and topic.
func NewPublisher(c Config) (*Publisher, error) {
	if len(c.Brokers) == 0 {
		return nil, errors.New("at least one kafka broker is required")
	}
	if c.Topic == "" {
		return nil, errors.New("kafka topic is required")
	}

	writer := &kafkago.Writer{
		Addr:                   kafkago.TCP(c.Brokers...),
		Topic:                  c.Topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
	}

	return newPublisher(writer, c), nil
}

func newPublisher(writer messageWriter, c Config) *Publisher {
	timeout := c.WriteTimeout
	if timeout == 0 {
		timeout = defaultWriteTimeout
	}

	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Publisher{
		writer:       writer,
		writeTimeout: timeout,
		logger:       logger,
	}
}

// PublishTranslation encodes the event and writes it to the topic.
func (p *Publisher) PublishTranslation(ctx context.Context, event *eventstream.TranslationEvent) error {
	if event == nil {
		return eventstream.ErrNilTranslationEvent
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding translation event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.writeTimeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(event.EventID),
		Value: payload,
		Time:  event.EmittedAt,
	})
	if err != nil {
		return fmt.Errorf("writing translation event: %w", err)
	}

	p.logger.Debug("published translation event",
		zap.String("event_id", event.EventID),
		zap.Int("payload_bytes", len(payload)),
	)

	return nil
}

// Close flushes pending writes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
