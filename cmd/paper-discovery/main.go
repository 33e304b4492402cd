// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-discovery CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-discovery/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the paper-discovery CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-discovery",
	Short: "Discover, filter, and store research papers",
	Long: `paper-discovery fetches candidate papers from academic APIs, runs them
through a processing pipeline (validation, deduplication, quality scoring,
enrichment), and stores the survivors in a local SQLite database.

Use discover to fetch and process papers from arXiv, or process to run the
pipeline over a local batch file.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-discovery.yaml or ~/.config/paper-discovery/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "path to the paper database (overrides config)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-discovery")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-discovery"))
		}
	}

	viper.SetEnvPrefix("PAPER_DISCOVERY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig materializes the full configuration from viper, applying
// built-in defaults and the persistent --db override.
func loadConfig(cmd *cobra.Command) (types.Config, error) {
	cfg := types.Config{
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   30 * time.Second,
				UserAgent: "paper-discovery/0.1",
			},
			MaxPerQuery: 50,
			RatePeriod:  3 * time.Second,
			MaxRetries:  3,
		},
		Pipeline: types.DefaultPipelineConfig(),
		Storage: types.StorageConfig{
			DBPath: filepath.Join("data", "papers.db"),
		},
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing configuration: %w", err)
	}

	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.Storage.DBPath = db
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
