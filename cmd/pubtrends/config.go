// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubtrends/internal/httputil"
	"github.com/pdiddy/pubtrends/internal/openalex"
	"github.com/pdiddy/pubtrends/pkg/types"
)

// Defaults for the collection window and pacing.
const (
	defaultTitleYearStart  = 2004
	defaultTitleYearEnd    = 2025
	defaultTargetYearStart = 2020
	defaultTargetYearEnd   = 2025
	defaultTimeout         = 30 * time.Second
	defaultInterQueryDelay = time.Second
	defaultOutputDir       = "output"
	defaultTopic           = "Energy Hub Research"
)

// defaultCatalog is the built-in term catalog, used when the config file
// does not define one.
var defaultCatalog = types.TermCatalog{
	Core: []string{
		"energy hub",
		"energy hubs",
		"energy hub optimization",
		"energy hub modeling",
	},
	Related: []string{
		"multi-energy system",
		"integrated energy system",
		"multi-carrier energy",
		"energy system integration",
		"multi-energy hub",
		"energy nexus",
	},
	Abstract: []string{
		"energy hub",
		"multi-energy system",
		"integrated energy system",
	},
}

// loadConfig resolves the run configuration from viper, flags, secrets, and
// built-in defaults, in that order of increasing precedence for the email
// (flag > secret > config file).
func loadConfig(cmd *cobra.Command) types.AnalysisConfig {
	cfg := types.AnalysisConfig{
		Collect: types.CollectConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("collect.timeout"),
				UserAgent: viper.GetString("collect.user_agent"),
			},
			Email:                 viper.GetString("collect.email"),
			TitleYearStart:        viper.GetInt("collect.title_year_start"),
			TitleYearEnd:          viper.GetInt("collect.title_year_end"),
			TargetYearStart:       viper.GetInt("collect.target_year_start"),
			TargetYearEnd:         viper.GetInt("collect.target_year_end"),
			PageRequestsPerSecond: viper.GetFloat64("collect.page_requests_per_second"),
			InterQueryDelay:       viper.GetDuration("collect.inter_query_delay"),
		},
		Catalog: types.TermCatalog{
			Core:     viper.GetStringSlice("catalog.core"),
			Related:  viper.GetStringSlice("catalog.related"),
			Abstract: viper.GetStringSlice("catalog.abstract"),
		},
		Output: types.OutputConfig{
			Dir:   viper.GetString("output.dir"),
			Topic: viper.GetString("output.topic"),
		},
	}

	if email, _ := cmd.Flags().GetString("email"); email != "" {
		cfg.Collect.Email = email
	} else {
		cfg.Collect.Email = secretDefault("openalex-email", cfg.Collect.Email)
	}
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		cfg.Output.Dir = out
	}

	if cfg.Collect.Timeout == 0 {
		cfg.Collect.Timeout = defaultTimeout
	}
	if cfg.Collect.UserAgent == "" {
		cfg.Collect.UserAgent = "pubtrends/" + version
	}
	if cfg.Collect.TitleYearStart == 0 {
		cfg.Collect.TitleYearStart = defaultTitleYearStart
	}
	if cfg.Collect.TitleYearEnd == 0 {
		cfg.Collect.TitleYearEnd = defaultTitleYearEnd
	}
	if cfg.Collect.TargetYearStart == 0 {
		cfg.Collect.TargetYearStart = defaultTargetYearStart
	}
	if cfg.Collect.TargetYearEnd == 0 {
		cfg.Collect.TargetYearEnd = defaultTargetYearEnd
	}
	if cfg.Collect.PageRequestsPerSecond == 0 {
		cfg.Collect.PageRequestsPerSecond = httputil.DefaultRequestsPerSecond
	}
	if cfg.Collect.InterQueryDelay == 0 {
		cfg.Collect.InterQueryDelay = defaultInterQueryDelay
	}
	if len(cfg.Catalog.Core) == 0 && len(cfg.Catalog.Related) == 0 && len(cfg.Catalog.Abstract) == 0 {
		cfg.Catalog = defaultCatalog
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = defaultOutputDir
	}
	if cfg.Output.Topic == "" {
		cfg.Output.Topic = defaultTopic
	}
	return cfg
}

// newClient builds the OpenAlex client from the collection settings.
func newClient(cfg types.CollectConfig) *openalex.Client {
	return &openalex.Client{
		HTTP:      httputil.NewClient(cfg.Timeout, cfg.PageRequestsPerSecond),
		Email:     cfg.Email,
		UserAgent: cfg.UserAgent,
	}
}

// ensureOutputDir creates the output directory if needed.
func ensureOutputDir(cfg types.OutputConfig) error {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", cfg.Dir, err)
	}
	return nil
}
