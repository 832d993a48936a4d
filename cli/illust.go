// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package cli

import (
	"github.com/spf13/cobra"
)

func newIllustCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "illust <illustration-id>",
		Short: "Fetch a single illustration's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			work, err := root.Client().GetIllustration(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), work)
		},
	}
}
