package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/payref/internal/config"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
	configPath   string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "payref",
	Short: "Finnish payment references and virtual barcodes",
	Long: `payref generates and validates creditor references used on Finnish
payment slips and encodes the 54-digit virtual barcode.

Supports:
  - Finnish national references (7-3-1 check digit)
  - ISO 11649 RF creditor references (MOD 97-10)
  - Virtual barcode versions 4 (national) and 5 (RF)

Examples:
  # Generate a national reference
  payref domestic 1234

  # Generate an RF reference
  payref iso C2H5OH

  # Validate references of either kind
  payref validate "RF18 5390 0754 7034" 105523

  # Encode a virtual barcode
  payref barcode --iban "FI79 4405 2020 0360 82" --reference 868516259619897 --amount 4883.15 --due 2010-06-12`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json, table)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file (env: PAYREF_CONFIG)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		configPath = os.Getenv("PAYREF_CONFIG")
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	if verbose {
		cfg.Logger.Level = "debug"
	}
	logger = cfg.Logger.NewLogger(cmd.ErrOrStderr())

	switch outputFormat {
	case "json", "table":
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
	return nil
}
