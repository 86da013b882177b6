package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/papercomputeco/rizz/pkg/dotdir"
)

// envPrefix is prepended to every dotted key when resolving environment
// variables, e.g. server.listen -> RIZZ_SERVER_LISTEN.
const envPrefix = "RIZZ"

// envAliases are the conventional unprefixed variables accepted in addition
// to the RIZZ_ form of each key.
var envAliases = map[string]string{
	"providers.openai_api_key":    "OPENAI_API_KEY",
	"providers.anthropic_api_key": "ANTHROPIC_API_KEY",
	"gateway.url":                 "CLOUDFLARE_AI_GATEWAY_URL",
}

// requiredKeys must be set for a translation to reach the gateway.
var requiredKeys = []string{
	"gateway.url",
	"providers.openai_api_key",
	"providers.anthropic_api_key",
}

// InitViper creates and returns a configured *viper.Viper.
// It sets defaults from NewDefaultConfig(), reads the config.toml file
// (if found via dotdir resolution), and binds environment variables
// with the RIZZ_ prefix.
//
// Config precedence (highest to lowest):
//  1. CLI flags (once bound via BindRegisteredFlags)
//  2. Environment variables (RIZZ_SERVER_LISTEN, OPENAI_API_KEY, etc.)
//  3. config.toml file values
//  4. Defaults from NewDefaultConfig()
func InitViper(configDir string) (*viper.Viper, error) {
	v := viper.New()

	// 1. Register all defaults from NewDefaultConfig().
	setViperDefaults(v)

	// 2. Config file discovery via dotdir resolution.
	v.SetConfigName("config")
	v.SetConfigType("toml")

	ddm := dotdir.NewManager()
	target, err := ddm.Target(configDir)
	if err != nil {
		return nil, fmt.Errorf("resolving config dir: %w", err)
	}

	if target != "" {
		v.AddConfigPath(target)
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found errors are fine, defaults will apply.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	// 3. Environment variables: RIZZ_GATEWAY_URL, RIZZ_EVENTS_KAFKA_TOPIC, etc.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, alias := range envAliases {
		// The prefixed name wins when both are set.
		if err := v.BindEnv(key, envName(key), alias); err != nil {
			return nil, fmt.Errorf("binding env for %s: %w", key, err)
		}
	}

	return v, nil
}

// envName returns the RIZZ_ prefixed environment variable for a dotted key.
func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// LoadDotEnv reads KEY=value pairs from the dotenv file at path into the
// process environment. Variables that are already set are left untouched.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	env := viper.New()
	env.SetConfigFile(path)
	env.SetConfigType("env")
	if err := env.ReadInConfig(); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	for _, key := range env.AllKeys() {
		name := strings.ToUpper(key)
		if _, set := os.LookupEnv(name); set {
			continue
		}
		if err := os.Setenv(name, env.GetString(key)); err != nil {
			return fmt.Errorf("setting %s: %w", name, err)
		}
	}

	return nil
}

// GatewayTimeout returns the configured gateway round-trip timeout.
func GatewayTimeout(v *viper.Viper) (time.Duration, error) {
	d, err := parseTimeout(v.GetString("gateway.timeout"))
	if err != nil {
		return 0, fmt.Errorf("invalid gateway.timeout: %w", err)
	}
	return d, nil
}

// KafkaBrokers returns the configured broker addresses. A comma separated
// string (as supplied through the environment) is split into its parts.
func KafkaBrokers(v *viper.Viper) []string {
	if raw, ok := v.Get("events.kafka_brokers").(string); ok {
		return splitList(raw)
	}
	return v.GetStringSlice("events.kafka_brokers")
}

// MissingRequired returns the required keys that currently resolve to an
// empty value.
func MissingRequired(v *viper.Viper) []string {
	var missing []string
	for _, key := range requiredKeys {
		if v.GetString(key) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// ViperCredentials resolves credentials from viper on every call, so values
// are never cached beyond a single lookup.
type ViperCredentials struct {
	v *viper.Viper
}

// NewViperCredentials creates a credential source backed by v.
func NewViperCredentials(v *viper.Viper) *ViperCredentials {
	return &ViperCredentials{v: v}
}

// Credential returns the value for the dotted key, or "" when unset.
func (c *ViperCredentials) Credential(key string) string {
	return c.v.GetString(key)
}

// setViperDefaults registers defaults from NewDefaultConfig() into viper
// using dotted-key notation. This keeps defaults.go as the single source of truth.
func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetDefault("version", d.Version)

	// Server
	v.SetDefault("server.listen", d.Server.Listen)
	v.SetDefault("server.static_dir", d.Server.StaticDir)
	v.SetDefault("server.mcp", d.Server.MCP)

	// Gateway
	v.SetDefault("gateway.url", d.Gateway.URL)
	v.SetDefault("gateway.timeout", d.Gateway.Timeout)

	// Providers
	v.SetDefault("providers.openai_api_key", d.Providers.OpenAIAPIKey)
	v.SetDefault("providers.anthropic_api_key", d.Providers.AnthropicAPIKey)

	// Events
	v.SetDefault("events.kafka_brokers", d.Events.KafkaBrokers)
	v.SetDefault("events.kafka_topic", d.Events.KafkaTopic)
}
