package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/leafx/procurement-service/config"
	"github.com/leafx/procurement-service/internal/catalog"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "procurement-service",
	Short: "Procurement Service CLI - sustainable procurement pipeline tool",
	Long: `A CLI tool for running the procurement sustainability pipeline against
local files: extract line items from procurement documents, match them to
sustainable catalog alternatives, and assemble draft orders with quotes.`,
	PersistentPreRunE: persistentPreRun,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml or ./config.yaml)")
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// Config is optional for some commands, don't fail here
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}
}

// persistentPreRun runs before each command and initializes dependencies
func persistentPreRun(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" || cmd.Name() == "completion" {
		return nil
	}

	logger = initLogger()
	return nil
}

func initLogger() *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.WarnLevel
	if cfg != nil && cfg.Logging.Level != "" {
		if parsedLevel, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
			level = parsedLevel
		}
	}

	// Always use console format for CLI
	var output io.Writer
	if cfg != nil && cfg.Logging.Format == "json" {
		output = os.Stderr
	} else {
		noColor := false
		if cfg != nil {
			noColor = cfg.Logging.NoColor
		}
		output = zerolog.ConsoleWriter{Out: os.Stderr, NoColor: noColor}
	}

	log := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zlog.Logger = log
	return &log
}

// loadSnapshot loads the catalog for commands that need matching or pricing.
func loadSnapshot() (*catalog.Snapshot, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config required to locate catalog data")
	}

	return catalog.Load(context.Background(), cfg.Catalog.ProductsPath, cfg.Catalog.InventoryPath, catalog.SnapshotOptions{
		DefaultOnHand: cfg.Catalog.DefaultOnHand,
		DefaultMOQ:    cfg.Catalog.DefaultMOQ,
		BulkDiscount:  cfg.Catalog.BulkDiscount,
	})
}

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
