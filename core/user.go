// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var errUnmarshalWorksData = errors.New("failed to unmarshal works data")

// GetUserIllustrations fetches a user's illustrations.
//
// perPage and page fall back to DefaultUserWorksPerPage and DefaultPage
// when non-positive.
func (c *Client) GetUserIllustrations(ctx context.Context, userID string, perPage, page int) ([]Illustration, error) {
	if perPage <= 0 {
		perPage = DefaultUserWorksPerPage
	}

	if page <= 0 {
		page = DefaultPage
	}

	payload, err := c.fetchEnvelope(ctx, GetUserWorksURL(userID, perPage, page))
	if err != nil {
		return nil, err
	}

	var works []Illustration
	if err := json.Unmarshal(payload, &works); err != nil {
		return nil, fmt.Errorf("%w: %w", errUnmarshalWorksData, err)
	}

	return works, nil
}
