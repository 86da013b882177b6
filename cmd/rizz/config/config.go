// Package configcmder provides the config command for managing persistent
// rizz configuration stored in the .rizz/ directory.
package configcmder

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/rizz/pkg/cliui"
	"github.com/papercomputeco/rizz/pkg/config"
)

const configLongDesc string = `Manage persistent rizz configuration.

Configuration is stored as config.toml in the .rizz/ directory and provides
default values for command flags. CLI flags and environment variables always
take precedence over config file values.

Keys use dotted notation matching the TOML section structure:
  server.listen, server.static_dir, server.mcp,
  gateway.url, gateway.timeout,
  providers.openai_api_key, providers.anthropic_api_key,
  events.kafka_brokers, events.kafka_topic

Use subcommands to get, set, or list configuration values:
  rizz config set <key> <value>    Set a configuration value
  rizz config get <key>            Get a configuration value
  rizz config list                 List all configuration values

Examples:
  rizz config set gateway.url https://gateway.ai.cloudflare.com/v1/<account>/<gateway>
  rizz config set events.kafka_brokers localhost:9092
  rizz config get server.listen
  rizz config list`

const configShortDesc string = "Manage persistent rizz configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}

// displayValue masks credentials so they never land in terminal scrollback.
func displayValue(key, value string) string {
	if config.IsSecretKey(key) {
		return cliui.MaskSecret(value)
	}
	return value
}

// printTarget prints which config file is in use.
func printTarget(out io.Writer, target string) {
	if target != "" {
		fmt.Fprintf(out, "\n  %s %s\n\n",
			cliui.KeyStyle.Render("Config file:"),
			cliui.DimStyle.Render(target),
		)
	} else {
		fmt.Fprintf(out, "\n  %s\n\n", cliui.DimStyle.Render("No config file found. Using defaults."))
	}
}
