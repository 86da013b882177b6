package translator_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/papercomputeco/rizz/pkg/eventstream"
	"github.com/papercomputeco/rizz/pkg/eventstream/worker"
	"github.com/papercomputeco/rizz/pkg/gateway"
	"github.com/papercomputeco/rizz/pkg/llm/provider/anthropic"
	"github.com/papercomputeco/rizz/pkg/llm/provider/openai"
	"github.com/papercomputeco/rizz/pkg/translator"
)

// countingDispatcher records every envelope it is asked to send.
type countingDispatcher struct {
	mu        sync.Mutex
	envelopes []gateway.Envelope
	body      []byte
	err       error
}

func (d *countingDispatcher) Dispatch(_ context.Context, envelope gateway.Envelope) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.envelopes = append(d.envelopes, envelope)
	return d.body, d.err
}

func (d *countingDispatcher) calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.envelopes)
}

type capturePublisher struct {
	mu     sync.Mutex
	events []*eventstream.TranslationEvent
}

func (c *capturePublisher) PublishTranslation(_ context.Context, event *eventstream.TranslationEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return nil
}

func (c *capturePublisher) Close() error { return nil }

func fullCredentials() gateway.StaticCredentials {
	return gateway.StaticCredentials{
		openai.CredentialKey:    "sk-openai",
		anthropic.CredentialKey: "sk-anthropic",
	}
}

func strPtr(s string) *string { return &s }

var _ = Describe("Translator", func() {
	var (
		dispatcher *countingDispatcher
		logs       *observer.ObservedLogs
		logger     *zap.Logger
	)

	BeforeEach(func() {
		dispatcher = &countingDispatcher{body: []byte(`{"choices":[{"message":{"content":"Ayy"}}]}`)}

		var core zapcore.Core
		core, logs = observer.New(zapcore.DebugLevel)
		logger = zap.New(core)
	})

	newTranslator := func(creds gateway.CredentialSource, d translator.Dispatcher) *translator.Translator {
		t, err := translator.New(translator.Config{
			Credentials: creds,
			Dispatcher:  d,
			Logger:      logger,
		})
		Expect(err).NotTo(HaveOccurred())
		return t
	}

	It("requires credentials and a dispatcher", func() {
		_, err := translator.New(translator.Config{Dispatcher: dispatcher})
		Expect(err).To(HaveOccurred())

		_, err = translator.New(translator.Config{Credentials: fullCredentials()})
		Expect(err).To(HaveOccurred())
	})

	Context("with empty input", func() {
		It("short-circuits without building or dispatching anything", func() {
			t := newTranslator(fullCredentials(), dispatcher)
			out, err := t.Translate(context.Background(), "", strPtr("ignored"))
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(BeEmpty())
			Expect(dispatcher.calls()).To(BeZero())
		})

		It("short-circuits even when credentials are missing", func() {
			t := newTranslator(gateway.StaticCredentials{}, dispatcher)
			_, err := t.Translate(context.Background(), "", nil)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Context("with input", func() {
		It("dispatches exactly one envelope with both providers", func() {
			t := newTranslator(fullCredentials(), dispatcher)
			out, err := t.Translate(context.Background(), "hello", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("Ayy"))

			Expect(dispatcher.calls()).To(Equal(1))
			Expect(dispatcher.envelopes[0].Providers()).To(Equal([]string{"openai", "anthropic"}))
		})

		It("returns an empty translation when the response has no content", func() {
			dispatcher.body = []byte(`{"choices":[]}`)
			t := newTranslator(fullCredentials(), dispatcher)

			out, err := t.Translate(context.Background(), "hello", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(BeEmpty())
			Expect(logs.FilterMessage("gateway response contained no translation").Len()).To(Equal(1))
		})

		It("fails with a ConfigurationError before dispatching when a key is missing", func() {
			creds := fullCredentials()
			delete(creds, anthropic.CredentialKey)
			t := newTranslator(creds, dispatcher)

			_, err := t.Translate(context.Background(), "hello", nil)
			Expect(gateway.IsConfigurationError(err)).To(BeTrue())
			Expect(dispatcher.calls()).To(BeZero())
		})

		It("propagates gateway errors and logs the status", func() {
			dispatcher.err = &gateway.GatewayError{StatusCode: http.StatusBadGateway}
			t := newTranslator(fullCredentials(), dispatcher)

			out, err := t.Translate(context.Background(), "hello", nil)
			Expect(out).To(BeEmpty())
			Expect(err).To(MatchError(ContainSubstring("502")))

			entries := logs.FilterMessage("gateway returned an error status").All()
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].ContextMap()).To(HaveKeyWithValue("status", int64(http.StatusBadGateway)))
		})
	})

	Context("end to end against a gateway", func() {
		var upstream *httptest.Server

		AfterEach(func() {
			upstream.Close()
		})

		It("renders the first provider's content and logs no errors", func() {
			var received []map[string]any
			upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewDecoder(r.Body).Decode(&received)
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"Ayy what's good"}}]}`)
			}))

			t := newTranslator(fullCredentials(), gateway.NewClient(gateway.Config{URL: upstream.URL, Logger: logger}))
			out, err := t.Translate(context.Background(), "what's good", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("Ayy what's good"))

			Expect(received).To(HaveLen(2))
			Expect(logs.FilterLevelExact(zapcore.ErrorLevel).Len()).To(BeZero())
		})

		It("treats 400 and 500 identically", func() {
			status := http.StatusBadRequest
			upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
			}))
			t := newTranslator(fullCredentials(), gateway.NewClient(gateway.Config{URL: upstream.URL}))

			_, err400 := t.Translate(context.Background(), "hello", nil)
			status = http.StatusInternalServerError
			_, err500 := t.Translate(context.Background(), "hello", nil)

			var gwErr *gateway.GatewayError
			Expect(err400).To(BeAssignableToTypeOf(gwErr))
			Expect(err500).To(BeAssignableToTypeOf(gwErr))
		})
	})

	Context("with an event pool", func() {
		It("publishes one event per completed translation", func() {
			publisher := &capturePublisher{}
			pool, err := worker.NewPool(&worker.Config{Publisher: publisher, Logger: logger})
			Expect(err).NotTo(HaveOccurred())

			t, err := translator.New(translator.Config{
				Credentials: fullCredentials(),
				Dispatcher:  dispatcher,
				Events:      pool,
				Logger:      logger,
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = t.Translate(context.Background(), "hello", strPtr("at brunch"))
			Expect(err).NotTo(HaveOccurred())
			pool.Close()

			Expect(publisher.events).To(HaveLen(1))
			event := publisher.events[0]
			Expect(event.Translation).To(Equal("Ayy"))
			Expect(event.Messages).To(HaveLen(3))
			Expect(event.RequestMeta.HasContext).To(BeTrue())
			Expect(event.Providers).To(Equal([]string{"openai", "anthropic"}))
		})
	})
})
