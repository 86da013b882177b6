// Package servecmder provides the serve command for running the rizz web server.
package servecmder

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/papercomputeco/rizz/api"
	"github.com/papercomputeco/rizz/cmd/rizz/bootstrap"
	"github.com/papercomputeco/rizz/pkg/config"
	"github.com/papercomputeco/rizz/pkg/logger"
)

type ServeCommander struct {
	listen         string
	staticDir      string
	mcp            bool
	gatewayURL     string
	gatewayTimeout string
	kafkaBrokers   string
	kafkaTopic     string
	jsonLogs       bool
	debug          bool

	viper  *viper.Viper
	logger *zap.Logger
}

var serveFlags = []string{
	config.FlagListen,
	config.FlagStaticDir,
	config.FlagMCP,
	config.FlagGatewayURL,
	config.FlagGatewayTimeout,
	config.FlagKafkaBrokers,
	config.FlagKafkaTopic,
}

const serveLongDesc string = `Run the rizz web server.

Serves the translation form at /, static assets under /static, robots.txt,
ads.txt, /healthz and Prometheus metrics at /metrics. With --mcp the
translate tool is also exposed over MCP at /mcp.

Provider credentials and the gateway URL are read from the environment
(OPENAI_API_KEY, ANTHROPIC_API_KEY, CLOUDFLARE_AI_GATEWAY_URL), a .env file
in the working directory, or config.toml.`

const serveShortDesc string = "Run the rizz web server"

func NewServeCmd() *cobra.Command {
	cmder := &ServeCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.viper, err = bootstrap.LoadConfig(cmd, serveFlags)
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %w", err)
			}
			return cmder.run()
		},
	}

	config.AddStringFlag(cmd, config.DefaultFlags, config.FlagListen, &cmder.listen)
	config.AddStringFlag(cmd, config.DefaultFlags, config.FlagStaticDir, &cmder.staticDir)
	config.AddBoolFlag(cmd, config.DefaultFlags, config.FlagMCP, &cmder.mcp)
	config.AddStringFlag(cmd, config.DefaultFlags, config.FlagGatewayURL, &cmder.gatewayURL)
	config.AddStringFlag(cmd, config.DefaultFlags, config.FlagGatewayTimeout, &cmder.gatewayTimeout)
	config.AddStringFlag(cmd, config.DefaultFlags, config.FlagKafkaBrokers, &cmder.kafkaBrokers)
	config.AddStringFlag(cmd, config.DefaultFlags, config.FlagKafkaTopic, &cmder.kafkaTopic)
	cmd.Flags().BoolVar(&cmder.jsonLogs, "json-logs", false, "Emit structured JSON logs")

	return cmd
}

func (c *ServeCommander) run() error {
	c.logger = logger.New(logger.WithDebug(c.debug), logger.WithJSON(c.jsonLogs))
	defer func() { _ = c.logger.Sync() }()

	pipeline, err := bootstrap.NewPipeline(c.viper, c.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := pipeline.Close(); err != nil {
			c.logger.Error("closing event publisher", zap.Error(err))
		}
	}()

	server, err := api.NewServer(api.Config{
		StaticDir: c.viper.GetString("server.static_dir"),
		EnableMCP: c.viper.GetBool("server.mcp"),
	}, pipeline.Translator, c.logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	addr := c.viper.GetString("server.listen")
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	return c.serve(server, listener, sigChan)
}

// serve runs server on listener until it fails or a signal arrives on stop.
func (c *ServeCommander) serve(server *api.Server, listener net.Listener, stop <-chan os.Signal) error {
	errChan := make(chan error, 1)
	go func() {
		if err := server.RunWithListener(listener); err != nil {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case err := <-errChan:
		return err
	case sig := <-stop:
		c.logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		return server.Shutdown()
	}
}
