// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authenticate with pixiv",
		Long: `Authenticate with pixiv using username and password.

A stored session is checked first; a fresh login is only performed when it
is missing or expired. Credentials are persisted to the session file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := root.Client().Manager()

			if err := manager.Init(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as user %s\n", manager.UserID())

			return nil
		},
	}
}
