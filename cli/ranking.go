// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package cli

import (
	"github.com/spf13/cobra"

	"codeberg.org/pixivcli/pixivcli/core"
)

func newRankingCommand(root *RootCommand) *cobra.Command {
	var (
		mode    string
		date    string
		perPage int
		page    int
	)

	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Fetch a ranked illustration list",
		Long: `Fetch one of pixiv's illustration leaderboards.

Modes: daily, weekly, monthly, male, female, rookie, daily_r18, weekly_r18,
male_r18, female_r18, r18g. Without --date the current ranking period is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ranked, err := root.Client().GetRankingIllustrations(cmd.Context(), mode, date, perPage, page)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), ranked)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", core.RankingDefaultMode, "Ranking category")
	cmd.Flags().StringVar(&date, "date", core.RankingDefaultDate, "Ranking period in YYYY-MM-DD form")
	cmd.Flags().IntVar(&perPage, "per-page", core.DefaultRankingPerPage, "Number of entries per page")
	cmd.Flags().IntVar(&page, "page", core.DefaultPage, "Page to fetch")

	return cmd
}
