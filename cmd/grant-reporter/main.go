// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the grant-reporter CLI. It hosts
// the MCP server and exposes the same grant-search operations as plain
// subcommands for direct use.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/grant-reporter/internal/history"
	"github.com/pdiddy/grant-reporter/internal/reporter"
	"github.com/pdiddy/grant-reporter/internal/secrets"
	"github.com/pdiddy/grant-reporter/internal/tools"
	"github.com/pdiddy/grant-reporter/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds values loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the grant-reporter CLI.
var rootCmd = &cobra.Command{
	Use:   "grant-reporter",
	Short: "Search and summarize NIH RePORTER grant metadata",
	Long: `grant-reporter exposes the NIH RePORTER projects search API as a set of
callable tools: a quick preview, an exhaustive summary, a project-number
listing, and a per-project detail fetch.

Run "grant-reporter serve" to host the tools over the Model Context Protocol
for an LLM client, or use the search, summary, ids, and project subcommands
directly.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./grant-reporter.yaml or ~/.config/grant-reporter/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("grant-reporter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "grant-reporter"))
		}
	}

	viper.SetEnvPrefix("GRANT_REPORTER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the configuration from viper with defaults.
func loadConfig(cmd *cobra.Command) types.Config {
	cfg := types.Config{
		Reporter: types.ReporterConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("reporter.timeout"),
				UserAgent: viper.GetString("reporter.user_agent"),
			},
			MaxRetries: viper.GetInt("reporter.max_retries"),
		},
		Server: types.ServerConfig{
			Addr:            viper.GetString("server.addr"),
			AuthTokenSecret: viper.GetString("server.auth_token_secret"),
		},
		History: types.HistoryConfig{
			Path:       viper.GetString("history.path"),
			MaxEntries: viper.GetInt("history.max_entries"),
		},
		Debug: viper.GetBool("debug"),
	}

	if cfg.Reporter.Timeout <= 0 {
		cfg.Reporter.Timeout = 60 * time.Second
	}
	if cfg.Reporter.UserAgent == "" {
		cfg.Reporter.UserAgent = "grant-reporter/" + version
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Debug = true
	}

	return cfg
}

// newLogger builds a production logger writing to stderr, so stdout
// stays clean for JSON output and the stdio MCP transport.
func newLogger(cfg types.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	if cfg.Debug {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zc.Build()
}

// newService wires the RePORTER client, optional invocation log, and
// tool service. The returned closer releases the history store.
func newService(cfg types.Config, logger *zap.Logger, progress reporter.Progress) (*tools.Service, func(), error) {
	client := &reporter.Client{
		HTTP:       &http.Client{Timeout: cfg.Reporter.Timeout},
		UserAgent:  cfg.Reporter.UserAgent,
		MaxRetries: cfg.Reporter.MaxRetries,
		Logger:     logger.Named("reporter"),
		Progress:   progress,
	}

	svc := &tools.Service{Client: client, Logger: logger}
	closer := func() {}

	if cfg.History.Path != "" {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening invocation history: %w", err)
		}
		svc.Recorder = store
		closer = func() { store.Close() }
	}

	return svc, closer, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
