// Package translatecmder provides the translate command for running a single
// translation from the terminal.
package translatecmder

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/papercomputeco/rizz/cmd/rizz/bootstrap"
	"github.com/papercomputeco/rizz/pkg/cliui"
	"github.com/papercomputeco/rizz/pkg/config"
	"github.com/papercomputeco/rizz/pkg/logger"
)

type translateCommander struct {
	contextText    string
	hasContext     bool
	gatewayURL     string
	gatewayTimeout string
	debug          bool

	viper  *viper.Viper
	logger *zap.Logger
}

var translateFlags = []string{
	config.FlagGatewayURL,
	config.FlagGatewayTimeout,
}

const translateLongDesc string = `Translate plain text into rizz from the terminal.

All arguments are joined with spaces to form the input. Use --context to
describe the situation, e.g. where you are or who you're talking to.

Examples:
  rizz translate "Hey, how's your day going?"
  rizz translate "want to get coffee" --context "at the farmers market"`

const translateShortDesc string = "Translate text into rizz"

func NewTranslateCmd() *cobra.Command {
	cmder := &translateCommander{}

	cmd := &cobra.Command{
		Use:   "translate <text>",
		Short: translateShortDesc,
		Long:  translateLongDesc,
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.viper, err = bootstrap.LoadConfig(cmd, translateFlags)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %w", err)
			}
			cmder.hasContext = cmd.Flags().Changed("context")
			return cmder.run(cmd.Context(), cmd.OutOrStdout(), strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVarP(&cmder.contextText, "context", "c", "", "Situation the text is said in")
	config.AddStringFlag(cmd, config.DefaultFlags, config.FlagGatewayURL, &cmder.gatewayURL)
	config.AddStringFlag(cmd, config.DefaultFlags, config.FlagGatewayTimeout, &cmder.gatewayTimeout)

	return cmd
}

func (c *translateCommander) run(ctx context.Context, out io.Writer, input string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Logs go to stderr so the translation is the only thing on stdout.
	c.logger = logger.New(logger.WithDebug(c.debug), logger.WithWriters(os.Stderr))
	defer func() { _ = c.logger.Sync() }()

	pipeline, err := bootstrap.NewPipeline(c.viper, c.logger)
	if err != nil {
		return err
	}
	defer func() { _ = pipeline.Close() }()

	var contextText *string
	if c.hasContext {
		contextText = &c.contextText
	}

	var translation string
	err = cliui.Step(out, "Adding the rizz", func() error {
		var err error
		translation, err = pipeline.Translator.Translate(ctx, input, contextText)
		return err
	})
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	fmt.Fprintf(out, "\n%s\n", cliui.RenderTranslation(translation))
	return nil
}
