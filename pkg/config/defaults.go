package config

const (
	defaultServerListen = ":5000"
	defaultStaticDir    = "static"

	defaultGatewayTimeout = "60s"

	defaultKafkaTopic = "rizz.translations"
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		Server: ServerConfig{
			Listen:    defaultServerListen,
			StaticDir: defaultStaticDir,
		},
		Gateway: GatewayConfig{
			Timeout: defaultGatewayTimeout,
		},
		Events: EventsConfig{
			KafkaTopic: defaultKafkaTopic,
		},
	}
}
