// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newIdentifierCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "identifier",
		Short: "Print the resolved configuration directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newConfiguration(v)
			if err != nil {
				return err
			}
			id := c.Identifier()
			if id == "" {
				return errors.New("unable to determine configuration directory")
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}
