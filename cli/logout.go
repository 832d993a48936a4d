// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"codeberg.org/pixivcli/pixivcli/config"
	"codeberg.org/pixivcli/pixivcli/core/session"
)

func newLogoutCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := session.NewStore(config.Global.Session.FilePath)

			if err := store.Delete(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Session removed.")

			return nil
		},
	}
}
