package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/payref/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for payment references and barcodes.

The API provides endpoints for:
  - POST /api/v1/references/domestic  - Generate national reference
  - POST /api/v1/references/iso       - Generate RF reference
  - POST /api/v1/references/validate  - Validate any reference
  - POST /api/v1/barcode              - Encode virtual barcode
  - POST /api/v1/barcode/decode       - Decode virtual barcode
  - GET  /health                      - Health check

Settings come from the config file and PAYREF_ environment variables;
flags given on the command line take precedence.

Examples:
  # Start server on default port
  payref serve

  # Start on custom port in debug mode
  payref serve --address :9090 --debug`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 30*time.Second, "HTTP write timeout")
}

func serverConfig(cmd *cobra.Command) *server.Config {
	config := &server.Config{
		Address:      cfg.Server.Address,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Debug:        cfg.Server.Debug,
		Logger:       logger,
	}

	flags := cmd.Flags()
	if flags.Changed("address") {
		config.Address = serverAddr
	}
	if flags.Changed("debug") {
		config.Debug = serverDebug
	}
	if flags.Changed("read-timeout") {
		config.ReadTimeout = readTimeout
	}
	if flags.Changed("write-timeout") {
		config.WriteTimeout = writeTimeout
	}
	return config
}

func runServe(cmd *cobra.Command, args []string) error {
	srv := server.NewServer(serverConfig(cmd))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
