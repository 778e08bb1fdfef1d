// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newValidateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate geowebcache.xml against the bundled schema",
		Long: `Load the configuration file, upgrading it in memory if it uses the legacy schema,
and report every schema violation. With --strict any violation makes the command fail.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadConfiguration(v)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			out := cmd.OutOrStdout()
			result := c.Validation()
			if result.Valid() {
				fmt.Fprintln(out, "Configuration is valid")
				return nil
			}
			for _, violation := range result.Violations {
				fmt.Fprintln(out, violation.String())
			}
			fmt.Fprintf(out, "%d schema violation(s), configuration is still usable\n", len(result.Violations))
			return nil
		},
	}
}
