package kafka

import (
	"context"
	"encoding/json"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/papercomputeco/rizz/pkg/eventstream"
)

type fakeWriter struct {
	messages []kafkago.Message
	err      error
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

var _ = Describe("Publisher", func() {
	var (
		writer *fakeWriter
		p      *Publisher
	)

	BeforeEach(func() {
		writer = &fakeWriter{}
		p = newPublisher(writer, Config{Topic: "rizz.translations"})
	})

	It("requires brokers", func() {
		_, err := NewPublisher(Config{Topic: "t"})
		Expect(err).To(MatchError(ContainSubstring("broker")))
	})

	It("requires a topic", func() {
		_, err := NewPublisher(Config{Brokers: []string{"localhost:9092"}})
		Expect(err).To(MatchError(ContainSubstring("topic")))
	})

	It("rejects nil events", func() {
		Expect(p.PublishTranslation(context.Background(), nil)).To(MatchError(eventstream.ErrNilTranslationEvent))
		Expect(writer.messages).To(BeEmpty())
	})

	It("writes the event as JSON keyed by event ID", func() {
		event := eventstream.NewTranslationEvent([]string{"openai"}, nil, "Ayy", eventstream.RequestMeta{})
		Expect(p.PublishTranslation(context.Background(), event)).To(Succeed())

		Expect(writer.messages).To(HaveLen(1))
		Expect(string(writer.messages[0].Key)).To(Equal(event.EventID))

		var decoded eventstream.TranslationEvent
		Expect(json.Unmarshal(writer.messages[0].Value, &decoded)).To(Succeed())
		Expect(decoded.Translation).To(Equal("Ayy"))
		Expect(decoded.EventType).To(Equal(eventstream.EventTypeTranslationCompleted))
	})

	It("wraps writer failures", func() {
		writer.err = errors.New("broker down")
		event := eventstream.NewTranslationEvent(nil, nil, "", eventstream.RequestMeta{})
		Expect(p.PublishTranslation(context.Background(), event)).To(MatchError(ContainSubstring("broker down")))
	})

	It("closes the writer", func() {
		Expect(p.Close()).To(Succeed())
		Expect(writer.closed).To(BeTrue())
	})
})
