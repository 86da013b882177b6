// Package bootstrap wires configuration into a ready translation pipeline
// for the rizz commands.
package bootstrap

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/papercomputeco/rizz/pkg/config"
	"github.com/papercomputeco/rizz/pkg/dotdir"
	"github.com/papercomputeco/rizz/pkg/eventstream"
	"github.com/papercomputeco/rizz/pkg/eventstream/kafka"
	"github.com/papercomputeco/rizz/pkg/eventstream/nop"
	"github.com/papercomputeco/rizz/pkg/eventstream/worker"
	"github.com/papercomputeco/rizz/pkg/gateway"
	"github.com/papercomputeco/rizz/pkg/translator"
)

// LoadConfig loads .env files, resolves viper for the --config-dir
// persistent flag, and binds the command's registered flags so that
// flag > env > config file > default.
func LoadConfig(cmd *cobra.Command, flagKeys []string) (*viper.Viper, error) {
	configDir, _ := cmd.Flags().GetString("config-dir")

	envFiles, err := dotdir.NewManager().EnvFiles(configDir)
	if err != nil {
		return nil, err
	}
	for _, path := range envFiles {
		if err := config.LoadDotEnv(path); err != nil {
			return nil, err
		}
	}

	v, err := config.InitViper(configDir)
	if err != nil {
		return nil, err
	}

	config.BindRegisteredFlags(v, cmd, config.DefaultFlags, flagKeys)
	return v, nil
}

// Pipeline is a translator plus the event resources it owns.
type Pipeline struct {
	Translator *translator.Translator

	pool      *worker.Pool
	publisher eventstream.Publisher
}

// NewPipeline builds the gateway client, the event publisher and worker
// pool, and the translator from v. Missing credentials only produce a
// warning here; each request enforces them before any network call.
func NewPipeline(v *viper.Viper, logger *zap.Logger) (*Pipeline, error) {
	if missing := config.MissingRequired(v); len(missing) > 0 {
		logger.Warn("required configuration is missing, translations will fail until it is set",
			zap.Strings("keys", missing),
		)
	}

	timeout, err := config.GatewayTimeout(v)
	if err != nil {
		return nil, err
	}

	client := gateway.NewClient(gateway.Config{
		URL:     v.GetString(gateway.ConfigKeyURL),
		Timeout: timeout,
		Logger:  logger,
	})

	publisher, err := newPublisher(v, logger)
	if err != nil {
		return nil, err
	}

	pool, err := worker.NewPool(&worker.Config{
		Publisher: publisher,
		Logger:    logger,
	})
	if err != nil {
		_ = publisher.Close()
		return nil, fmt.Errorf("could not create event worker pool: %w", err)
	}

	t, err := translator.New(translator.Config{
		Credentials: config.NewViperCredentials(v),
		Dispatcher:  client,
		Events:      pool,
		Logger:      logger,
	})
	if err != nil {
		pool.Close()
		_ = publisher.Close()
		return nil, err
	}

	return &Pipeline{
		Translator: t,
		pool:       pool,
		publisher:  publisher,
	}, nil
}

// Close drains queued events and closes the publisher.
func (p *Pipeline) Close() error {
	p.pool.Close()
	return p.publisher.Close()
}

func newPublisher(v *viper.Viper, logger *zap.Logger) (eventstream.Publisher, error) {
	brokers := config.KafkaBrokers(v)
	if len(brokers) == 0 {
		return nop.NewPublisher(), nil
	}

	topic := v.GetString("events.kafka_topic")
	if topic == "" {
		return nil, errors.New("events.kafka_topic is required when kafka brokers are set")
	}

	logger.Info("publishing translation events to kafka",
		zap.Strings("brokers", brokers),
		zap.String("topic", topic),
	)

	publisher, err := kafka.NewPublisher(kafka.Config{
		Brokers: brokers,
		Topic:   topic,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create kafka publisher: %w", err)
	}
	return publisher, nil
}
