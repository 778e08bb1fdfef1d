// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package app provides the entry point for the gwcconf command-line application.
package app

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/geowebcache/gwcconf/pkg/config"
	"github.com/geowebcache/gwcconf/pkg/fileutils"
	"github.com/geowebcache/gwcconf/pkg/logger"
)

// EnvPrefix is the prefix of the environment variables bound to global flags.
const EnvPrefix = "GWC"

// Global flag names, also used as viper keys.
const (
	flagConfigDir    = "config-dir"
	flagRelativePath = "relative-path"
	flagBaseDir      = "base-dir"
	flagStrict       = "strict"
	flagDebug        = "debug"
	flagMetricsFile  = "metrics-file"
)

// NewRootCmd creates a new root command for the gwcconf CLI.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:               "gwcconf",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Short:             "gwcconf inspects and edits the GeoWebCache tile layer configuration",
		Long: `gwcconf locates geowebcache.xml, upgrades legacy documents to the current schema,
validates it against the bundled schema and lists, adds, modifies or removes tile layers.

The configuration directory is taken from --config-dir, then --relative-path under --base-dir,
then the file cache root, then the standard paths under --base-dir, then the user config directory.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if v.GetBool(flagDebug) {
				viper.Set(flagDebug, true)
				logger.Initialize()
			}
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			path := v.GetString(flagMetricsFile)
			if path == "" {
				return nil
			}
			if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
				return fmt.Errorf("failed to write metrics: %w", err)
			}
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			// If no subcommand is provided, print help
			if err := cmd.Help(); err != nil {
				logger.Errorf("Error displaying help: %v", err)
			}
		},
	}

	// Add persistent flags
	flags := rootCmd.PersistentFlags()
	flags.String(flagConfigDir, "", "Directory holding geowebcache.xml (env GWC_CONFIG_DIR)")
	flags.String(flagRelativePath, "", "Configuration directory relative to the base directory (env GWC_RELATIVE_PATH)")
	flags.String(flagBaseDir, ".", "Application base directory (env GWC_BASE_DIR)")
	flags.Bool(flagStrict, false, "Fail when the document violates the schema (env GWC_STRICT)")
	flags.Bool(flagDebug, false, "Enable debug mode (env GWC_DEBUG)")
	flags.String(flagMetricsFile, "", "Write pipeline counters in Prometheus text format to this file (env GWC_METRICS_FILE)")
	if err := v.BindPFlags(flags); err != nil {
		logger.Errorf("failed to bind flags: %v", err)
	}

	// Add subcommands
	rootCmd.AddCommand(newIdentifierCmd(v))
	rootCmd.AddCommand(newValidateCmd(v))
	rootCmd.AddCommand(newMigrateCmd(v))
	rootCmd.AddCommand(newLayersCmd(v))

	return rootCmd
}

// newConfiguration builds the pipeline from the bound flags and environment.
func newConfiguration(v *viper.Viper) (*config.XMLConfiguration, error) {
	opts := []config.Option{
		config.WithBaseDir(v.GetString(flagBaseDir)),
		config.WithStrictValidation(v.GetBool(flagStrict)),
		config.WithUserConfigFallback(true),
		config.WithLogger(logger.ForComponent("config")),
		config.WithMetrics(prometheus.DefaultRegisterer),
	}
	if dir := v.GetString(flagConfigDir); dir != "" {
		if !fileutils.IsDir(dir) {
			logger.Warnf("configuration directory %s does not exist", dir)
		}
		opts = append(opts, config.WithAbsolutePath(dir))
	}
	if rel := v.GetString(flagRelativePath); rel != "" {
		opts = append(opts, config.WithRelativePath(rel))
	}
	logger.Debugf("building configuration with base directory %s", v.GetString(flagBaseDir))
	return config.New(opts...)
}

// loadConfiguration builds the pipeline and loads the layers.
func loadConfiguration(v *viper.Viper) (*config.XMLConfiguration, error) {
	c, err := newConfiguration(v)
	if err != nil {
		return nil, err
	}
	if _, err := c.GetTileLayers(false); err != nil {
		return nil, err
	}
	return c, nil
}
