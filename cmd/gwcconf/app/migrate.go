// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newMigrateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Rewrite geowebcache.xml in the current schema",
		Long: `Load the configuration file, converting a legacy document if needed, and write it
back in the current schema. Dimension details are not written back.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadConfiguration(v)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			report, err := c.Save(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to write configuration: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %s\n", report.Path)
			if len(report.DroppedDimensions) > 0 {
				fmt.Fprintf(out, "Dimension details were not written for: %s\n",
					strings.Join(report.DroppedDimensions, ", "))
			}
			return nil
		},
	}
}
