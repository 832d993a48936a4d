// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	RankingDefaultMode = "daily"
	RankingDefaultDate = "" // RankingDefaultDate is effectively an alias for the current ranking period.

	rankingDateFormat = "2006-01-02"
)

var (
	errInvalidRankingMode   = errors.New("invalid ranking mode")
	errInvalidRankingDate   = errors.New("invalid ranking date")
	errUnmarshalRankingData = errors.New("failed to unmarshal ranking data")
)

// rankingModes is the fixed set of leaderboard categories the service accepts.
var rankingModes = map[string]struct{}{
	"daily":      {},
	"weekly":     {},
	"monthly":    {},
	"male":       {},
	"female":     {},
	"rookie":     {},
	"daily_r18":  {},
	"weekly_r18": {},
	"male_r18":   {},
	"female_r18": {},
	"r18g":       {},
}

// IsValidRankingMode reports whether mode names a known ranking category.
func IsValidRankingMode(mode string) bool {
	_, ok := rankingModes[mode]

	return ok
}

// GetRankingIllustrations fetches a ranked illustration list.
//
// mode must be a known ranking category. date, when non-empty, must be in
// 2006-01-02 form and selects the ranking period; when empty the service's
// current period is used and no date parameter is sent. perPage and page
// fall back to DefaultRankingPerPage and DefaultPage when non-positive.
func (c *Client) GetRankingIllustrations(
	ctx context.Context,
	mode, date string,
	perPage, page int,
) ([]Illustration, error) {
	if mode == "" {
		mode = RankingDefaultMode
	}

	if !IsValidRankingMode(mode) {
		return nil, fmt.Errorf("%w: %s", errInvalidRankingMode, mode)
	}

	if date != "" {
		if _, err := time.Parse(rankingDateFormat, date); err != nil {
			return nil, fmt.Errorf("%w %s: %w", errInvalidRankingDate, date, err)
		}
	}

	if perPage <= 0 {
		perPage = DefaultRankingPerPage
	}

	if page <= 0 {
		page = DefaultPage
	}

	payload, err := c.fetchEnvelope(ctx, GetRankingURL(mode, date, perPage, page))
	if err != nil {
		return nil, err
	}

	var ranked []Illustration
	if err := json.Unmarshal(payload, &ranked); err != nil {
		return nil, fmt.Errorf("%w: %w", errUnmarshalRankingData, err)
	}

	return ranked, nil
}
