// Package initcmder provides the init command for initializing a local .rizz
// directory in the current working directory.
package initcmder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/rizz/pkg/cliui"
	"github.com/papercomputeco/rizz/pkg/config"
)

const (
	dirName = ".rizz"
)

const initLongDesc string = `Initialize a new .rizz/ directory in the current working directory.

Creates a local .rizz/ directory with a default config.toml. A local
directory takes precedence over the default ~/.rizz/ directory.

Credentials are best supplied through the environment (OPENAI_API_KEY,
ANTHROPIC_API_KEY, CLOUDFLARE_AI_GATEWAY_URL) or a .env file rather
than written to config.toml.

Examples:
  rizz init
  rizz init --force`

const initShortDesc string = "Initialize a local .rizz/ directory"

type initCommander struct {
	force bool
}

func NewInitCmd() *cobra.Command {
	cmder := &initCommander{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: initShortDesc,
		Long:  initLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmder.run(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&cmder.force, "force", false, "Overwrite an existing config.toml with defaults")

	return cmd
}

func (c *initCommander) run(out io.Writer) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	dir := filepath.Join(cwd, dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating .rizz directory: %w", err)
	}

	cfger, err := config.NewConfiger(dir)
	if err != nil {
		return err
	}

	_, err = os.Stat(cfger.GetTarget())
	switch {
	case err == nil && !c.force:
		fmt.Fprintf(out, "  %s Already initialized: %s\n", cliui.SuccessMark, cliui.DimStyle.Render(dir))
		return nil
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("checking config: %w", err)
	}

	if err := cfger.SaveConfig(config.NewDefaultConfig()); err != nil {
		return err
	}

	fmt.Fprintf(out, "  %s Initialized .rizz directory: %s\n", cliui.SuccessMark, cliui.DimStyle.Render(dir))
	return nil
}
