// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"codeberg.org/pixivcli/pixivcli/config"
	"codeberg.org/pixivcli/pixivcli/core/session"
)

func newSessionCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show the stored session's status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := session.NewStore(config.Global.Session.FilePath)
			out := cmd.OutOrStdout()

			rec, ok := store.Load()
			if !ok {
				fmt.Fprintln(out, "No session stored.")

				return nil
			}

			fmt.Fprintf(out, "Session for user %s stored at %s\n", rec.UserID, store.Path())

			fmt.Fprint(out, "Checking session...")

			if session.NewValidator().CheckExpired(cmd.Context(), rec) == session.Valid {
				fmt.Fprintln(out, " [VALID]")
			} else {
				fmt.Fprintln(out, " [EXPIRED]")
			}

			return nil
		},
	}
}
