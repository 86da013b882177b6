// Package rizzcmder
package rizzcmder

import (
	"github.com/spf13/cobra"

	configcmder "github.com/papercomputeco/rizz/cmd/rizz/config"
	initcmder "github.com/papercomputeco/rizz/cmd/rizz/init"
	servecmder "github.com/papercomputeco/rizz/cmd/rizz/serve"
	translatecmder "github.com/papercomputeco/rizz/cmd/rizz/translate"
	versioncmder "github.com/papercomputeco/rizz/cmd/version"
)

const rizzLongDesc string = `Rizz turns plain English into smooth, Atlanta-flavored slang.

Each translation is fanned out to OpenAI and Anthropic through a single
AI gateway call and the first provider's answer is returned.

Run using:
  rizz serve                 Run the web server
  rizz translate <text>      Translate from the terminal
  rizz init                  Create a local .rizz/ directory
  rizz config                Manage configuration`

const rizzShortDesc string = "Rizz - slang translator"

func NewRizzCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "rizz",
		Short:        rizzShortDesc,
		Long:         rizzLongDesc,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Directory holding config.toml (default: ./.rizz or ~/.rizz)")

	// Add subcommands
	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(translatecmder.NewTranslateCmd())
	cmd.AddCommand(initcmder.NewInitCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
