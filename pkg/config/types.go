package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Config represents the persistent rizz configuration stored as config.toml
// in the .rizz/ directory. The TOML layout uses sections for logical grouping.
type Config struct {
	Version   int             `toml:"version"`
	Server    ServerConfig    `toml:"server"`
	Gateway   GatewayConfig   `toml:"gateway"`
	Providers ProvidersConfig `toml:"providers"`
	Events    EventsConfig    `toml:"events"`
}

// ServerConfig holds web server settings.
type ServerConfig struct {
	Listen    string `toml:"listen,omitempty"`
	StaticDir string `toml:"static_dir,omitempty"`
	MCP       bool   `toml:"mcp,omitempty"`
}

// GatewayConfig holds the AI gateway endpoint settings.
type GatewayConfig struct {
	URL string `toml:"url,omitempty"`

	// Timeout is a Go duration string (e.g. "60s").
	Timeout string `toml:"timeout,omitempty"`
}

// ProvidersConfig holds upstream provider credentials. These are usually
// supplied through the environment rather than written to disk.
type ProvidersConfig struct {
	OpenAIAPIKey    string `toml:"openai_api_key,omitempty"`
	AnthropicAPIKey string `toml:"anthropic_api_key,omitempty"`
}

// EventsConfig holds translation event publishing settings.
// Publishing is disabled while KafkaBrokers is empty.
type EventsConfig struct {
	KafkaBrokers []string `toml:"kafka_brokers,omitempty"`
	KafkaTopic   string   `toml:"kafka_topic,omitempty"`
}

// Credential returns the value stored under the dotted config key, or ""
// when the key is unknown or unset.
func (c *Config) Credential(key string) string {
	info, ok := configKeys[key]
	if !ok {
		return ""
	}
	return info.get(c)
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"server.listen": {
		get: func(c *Config) string { return c.Server.Listen },
		set: func(c *Config, v string) error { c.Server.Listen = v; return nil },
	},
	"server.static_dir": {
		get: func(c *Config) string { return c.Server.StaticDir },
		set: func(c *Config, v string) error { c.Server.StaticDir = v; return nil },
	},
	"server.mcp": {
		get: func(c *Config) string { return strconv.FormatBool(c.Server.MCP) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid value for server.mcp: %w", err)
			}
			c.Server.MCP = b
			return nil
		},
	},
	"gateway.url": {
		get: func(c *Config) string { return c.Gateway.URL },
		set: func(c *Config, v string) error { c.Gateway.URL = v; return nil },
	},
	"gateway.timeout": {
		get: func(c *Config) string { return c.Gateway.Timeout },
		set: func(c *Config, v string) error {
			if _, err := parseTimeout(v); err != nil {
				return fmt.Errorf("invalid value for gateway.timeout: %w", err)
			}
			c.Gateway.Timeout = v
			return nil
		},
	},
	"providers.openai_api_key": {
		get: func(c *Config) string { return c.Providers.OpenAIAPIKey },
		set: func(c *Config, v string) error { c.Providers.OpenAIAPIKey = v; return nil },
	},
	"providers.anthropic_api_key": {
		get: func(c *Config) string { return c.Providers.AnthropicAPIKey },
		set: func(c *Config, v string) error { c.Providers.AnthropicAPIKey = v; return nil },
	},
	"events.kafka_brokers": {
		get: func(c *Config) string { return strings.Join(c.Events.KafkaBrokers, ",") },
		set: func(c *Config, v string) error { c.Events.KafkaBrokers = splitList(v); return nil },
	},
	"events.kafka_topic": {
		get: func(c *Config) string { return c.Events.KafkaTopic },
		set: func(c *Config, v string) error { c.Events.KafkaTopic = v; return nil },
	},
}

// splitList splits a comma separated value, dropping blank entries.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
