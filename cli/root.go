// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package cli provides the command-line interface for pixivcli: the cobra
command tree and the interactive credential prompter.
*/
package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"codeberg.org/pixivcli/pixivcli/config"
	"codeberg.org/pixivcli/pixivcli/core"
	"codeberg.org/pixivcli/pixivcli/core/audit"
	"codeberg.org/pixivcli/pixivcli/core/session"
)

// Version is set at build time via ldflags.
var Version = "dev"

// RootCommand represents the root CLI command.
type RootCommand struct {
	cmd    *cobra.Command
	client *core.Client

	configFilePath string
	timeout        time.Duration
}

// NewRootCommand creates the command tree.
func NewRootCommand() *RootCommand {
	r := &RootCommand{}

	r.cmd = &cobra.Command{
		Use:   "pixivcli",
		Short: "pixivcli - read-only client for pixiv's public-api v1",
		Long: `pixivcli authenticates against pixiv, keeps the session credentials in a
local file, and fetches illustration metadata as JSON.

To get started, run:
  pixivcli login              - Authenticate with your pixiv account
  pixivcli ranking            - Fetch today's ranking`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.initialize(cmd)
		},
	}

	// Global flags
	r.cmd.PersistentFlags().StringVar(&r.configFilePath, "config", "", "Path to a pixivcli configuration file in YAML format")
	r.cmd.PersistentFlags().DurationVar(&r.timeout, "timeout", 0, "Request timeout for all subsequent calls (e.g. 30s)")

	r.cmd.AddCommand(newLoginCommand(r))
	r.cmd.AddCommand(newLogoutCommand(r))
	r.cmd.AddCommand(newSessionCommand(r))
	r.cmd.AddCommand(newUserWorksCommand(r))
	r.cmd.AddCommand(newIllustCommand(r))
	r.cmd.AddCommand(newRankingCommand(r))

	return r
}

// initialize loads configuration and wires the client.
func (r *RootCommand) initialize(cmd *cobra.Command) error {
	audit.SetDefaultLogger()

	if err := config.Global.LoadConfig(r.configFilePath); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if r.timeout > 0 {
		config.Global.SetTimeout(r.timeout)
	}

	r.client = core.NewClient(NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()))

	return nil
}

// Client returns the wired API client.
func (r *RootCommand) Client() *core.Client {
	return r.client
}

// Execute runs the root command.
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Execute is the main entry point for the CLI.
func Execute() {
	root := NewRootCommand()

	if err := root.Execute(); err != nil {
		// A declined retry is a clean, deliberate exit, not a failure report.
		if errors.Is(err, session.ErrLoginAborted) {
			fmt.Fprintln(os.Stderr, "Aborted.")
			os.Exit(0)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
