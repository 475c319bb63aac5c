package main

import (
	"fmt"
	"kamion-client/internal/adapters/kamion"
	"kamion-client/internal/adapters/memory"
	"kamion-client/internal/adapters/repositories"
	"kamion-client/internal/config"
	"kamion-client/internal/platform/logging"
	"kamion-client/internal/ports"
	"kamion-client/internal/store"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	configPath string
	baseURL    string
	verbose    bool
	timeout    time.Duration
	offline    bool
	seedPath   string

	cfg       *config.Config
	logger    *zap.Logger
	flushLogs func()
)

// gateway is everything the store needs from a backend.
type gateway interface {
	ports.AuthGateway
	ports.ShipmentGateway
}

var rootCmd = &cobra.Command{
	Use:   "kamion",
	Short: "Kamion freight client",
	Long: `kamion is a terminal client for the Kamion freight platform.

Run without arguments to start the interactive screens: sign in, browse
and search your loads, and open a load's details.`,
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if flushLogs != nil {
			flushLogs()
		}
	},
	RunE: runInteractive,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the client version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "kamion %s\n", version)
	},
}

func init() {
	rootCmd.PersistentPreRunE = setup

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Backend base URL (or set KAMION_BASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", config.DefaultTimeout, "Per-request timeout")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "Serve requests from a fixture file instead of the backend")
	rootCmd.PersistentFlags().StringVar(&seedPath, "seed", "data/seeds/kamion.json", "Fixture file used with --offline")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(loadsCmd)
	rootCmd.AddCommand(loadCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration and installs the logger. The interactive
// screens own the terminal, so their log goes to the configured file.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnvFile(); err != nil {
		return err
	}

	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.API.Timeout = timeout
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logFile := ""
	if cmd == rootCmd {
		logFile = cfg.Logging.File
	}
	logger, flushLogs, err = logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		File:    logFile,
		Verbose: verbose,
	})
	return err
}

func newGateway() (gateway, error) {
	if offline {
		seed, err := repositories.ReadSeed(seedPath)
		if err != nil {
			return nil, fmt.Errorf("offline mode: %w", err)
		}
		logger.Info("offline mode", zap.String("seed", seedPath), zap.Int("shipments", len(seed.Shipments)))
		return memory.NewGateway(memory.FromSeed(seed)), nil
	}

	client, err := kamion.NewClient(kamion.Options{
		BaseURL:       cfg.API.BaseURL,
		Timeout:       cfg.API.Timeout,
		RetryAttempts: cfg.API.RetryAttempts,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("backend configured", zap.String("base_url", cfg.API.BaseURL))
	return client, nil
}

// newStore wires the store to the configured backend and restores a
// saved session token when there is one.
func newStore() (*store.Store, error) {
	gw, err := newGateway()
	if err != nil {
		return nil, err
	}

	st := store.New(gw, gw, cfg.Search.PerPage)
	if cfg.Session.Token != "" {
		st.Auth.SetToken(cfg.Session.Token)
		logger.Info("session restored from configuration")
	}
	return st, nil
}
