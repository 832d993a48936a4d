// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package cli

import (
	"github.com/spf13/cobra"

	"codeberg.org/pixivcli/pixivcli/core"
)

func newUserWorksCommand(root *RootCommand) *cobra.Command {
	var (
		perPage int
		page    int
	)

	cmd := &cobra.Command{
		Use:   "user-works <user-id>",
		Short: "Fetch a user's illustrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			works, err := root.Client().GetUserIllustrations(cmd.Context(), args[0], perPage, page)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), works)
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", core.DefaultUserWorksPerPage, "Number of illustrations per page")
	cmd.Flags().IntVar(&page, "page", core.DefaultPage, "Page to fetch")

	return cmd
}
