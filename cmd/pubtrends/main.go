// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubtrends CLI.
//
// pubtrends is a one-shot bibliometric analysis tool: it collects records
// from the OpenAlex Works API for a configurable topic catalog, dedupes
// and aggregates them, writes CSV/PNG/SQLite/YAML outputs plus a text
// report, and exits.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubtrends/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds values loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when non-empty, else the secret value for
// key if one was loaded.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the pubtrends CLI.
var rootCmd = &cobra.Command{
	Use:   "pubtrends",
	Short: "Collect and analyze publication trends from OpenAlex",
	Long: `pubtrends collects bibliographic records from the OpenAlex Works API for a
configurable catalog of search terms, deduplicates them, and produces annual
statistics, CSV exports, charts, and a text report describing publication
trends for a topic area.

Run modes are subcommands: analyze (everything), collect (papers CSV and
overview chart), report (text summary), and quicktest (single-query check).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubtrends.yaml or ~/.config/pubtrends/config.yaml)")
	rootCmd.PersistentFlags().String("email", "", "contact email sent as the OpenAlex mailto parameter")
	rootCmd.PersistentFlags().String("out", "", "output directory (default: output)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubtrends")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubtrends"))
		}
	}

	viper.SetEnvPrefix("PUBTRENDS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
