// Package translator runs the rizz translation pipeline:
//
//	input --> conversation --> envelope --> gateway --> extracted text
//
// Every call is an independent, stateless pipeline run.
package translator

import (
	"context"
	"errors"
	"strconv"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/papercomputeco/rizz/pkg/conversation"
	"github.com/papercomputeco/rizz/pkg/eventstream"
	"github.com/papercomputeco/rizz/pkg/eventstream/worker"
	"github.com/papercomputeco/rizz/pkg/gateway"
	"github.com/papercomputeco/rizz/pkg/llm"
	"github.com/papercomputeco/rizz/pkg/llm/provider"
	"github.com/papercomputeco/rizz/pkg/metrics"
)

// Dispatcher sends an envelope to the gateway and returns the raw response body.
type Dispatcher interface {
	Dispatch(ctx context.Context, envelope gateway.Envelope) ([]byte, error)
}

// Config is the translator configuration.
type Config struct {
	// Providers is the ordered provider set. Defaults to provider.Default().
	Providers []provider.Provider

	// Credentials resolves provider API keys at call time.
	Credentials gateway.CredentialSource

	// Dispatcher performs the single gateway round-trip.
	Dispatcher Dispatcher

	// Events is an optional worker pool completed translations are enqueued on.
	Events *worker.Pool

	// Logger is the provided zap logger
	Logger *zap.Logger
}

// Translator turns slang into rizz.
type Translator struct {
	providers   []provider.Provider
	credentials gateway.CredentialSource
	dispatcher  Dispatcher
	events      *worker.Pool
	logger      *zap.Logger
}

// New creates a new Translator.
func New(c Config) (*Translator, error) {
	if c.Credentials == nil {
		return nil, errors.New("credential source is required")
	}
	if c.Dispatcher == nil {
		return nil, errors.New("dispatcher is required")
	}

	providers := c.Providers
	if len(providers) == 0 {
		providers = provider.Default()
	}

	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Translator{
		providers:   providers,
		credentials: c.Credentials,
		dispatcher:  c.Dispatcher,
		events:      c.Events,
		logger:      logger,
	}, nil
}

// Translate runs the pipeline for input and the optional context text.
//
// An empty input returns "" without building a conversation or calling the
// gateway. An empty result from a successful gateway call is not an error.
// Returned errors are one of *gateway.ConfigurationError,
// *gateway.NetworkError or *gateway.GatewayError, possibly wrapped; their
// detail is for logs only.
func (t *Translator) Translate(ctx context.Context, input string, contextText *string) (string, error) {
	if input == "" {
		metrics.TranslationsTotal.WithLabelValues(metrics.OutcomeSkipped).Inc()
		return "", nil
	}

	startTime := time.Now()
	metrics.InputChars.Observe(float64(utf8.RuneCountInString(input)))

	messages := conversation.Build(input, contextText)

	envelope, err := gateway.Assemble(messages, t.providers, t.credentials)
	if err != nil {
		t.recordError(err)
		return "", err
	}

	dispatchStart := time.Now()
	raw, err := t.dispatcher.Dispatch(ctx, envelope)
	metrics.GatewayDuration.Observe(time.Since(dispatchStart).Seconds())
	if err != nil {
		t.recordError(err, zap.Strings("providers", envelope.Providers()))
		return "", err
	}

	// Only the first provider's result is used.
	translation := gateway.ExtractText(raw)
	if translation == "" {
		metrics.TranslationsTotal.WithLabelValues(metrics.OutcomeEmpty).Inc()
		t.logger.Warn("gateway response contained no translation",
			zap.Strings("providers", envelope.Providers()),
			zap.Int("body_bytes", len(raw)),
		)
	} else {
		metrics.TranslationsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	}

	completed := time.Now()
	t.logger.Debug("translation complete",
		zap.String("primary_provider", envelope.Providers()[0]),
		zap.Int("message_count", len(messages)),
		zap.Duration("duration", completed.Sub(startTime)),
	)

	t.enqueue(envelope, messages, translation, eventstream.RequestMeta{
		StartedAt:   startTime,
		CompletedAt: completed,
		DurationMs:  completed.Sub(startTime).Milliseconds(),
		HasContext:  contextText != nil,
		InputChars:  utf8.RuneCountInString(input),
	})

	return translation, nil
}

// recordError logs err with its diagnostic detail and counts the outcome.
func (t *Translator) recordError(err error, fields ...zap.Field) {
	var (
		cfgErr *gateway.ConfigurationError
		netErr *gateway.NetworkError
		gwErr  *gateway.GatewayError
	)

	switch {
	case errors.As(err, &cfgErr):
		metrics.TranslationsTotal.WithLabelValues(metrics.OutcomeConfigError).Inc()
		t.logger.Error("translation misconfigured", append(fields, zap.String("missing_key", cfgErr.Key))...)
	case errors.As(err, &netErr):
		metrics.TranslationsTotal.WithLabelValues(metrics.OutcomeNetworkErr).Inc()
		t.logger.Error("gateway unreachable", append(fields, zap.Error(netErr.Err))...)
	case errors.As(err, &gwErr):
		metrics.TranslationsTotal.WithLabelValues(metrics.OutcomeGatewayErr).Inc()
		metrics.GatewayErrors.WithLabelValues(strconv.Itoa(gwErr.StatusCode)).Inc()
		t.logger.Error("gateway returned an error status", append(fields, zap.Int("status", gwErr.StatusCode))...)
	default:
		metrics.TranslationsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		t.logger.Error("translation failed", append(fields, zap.Error(err))...)
	}
}

// enqueue hands the completed translation to the event pool, if configured.
func (t *Translator) enqueue(envelope gateway.Envelope, messages []llm.Message, translation string, meta eventstream.RequestMeta) {
	if t.events == nil {
		return
	}

	t.events.Enqueue(worker.Job{
		Event: eventstream.NewTranslationEvent(envelope.Providers(), messages, translation, meta),
	})
}
