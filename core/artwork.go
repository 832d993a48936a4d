// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	errUnmarshalIllustData = errors.New("failed to unmarshal illustration data")
	errEmptyIllustPayload  = errors.New("illustration payload was empty")
)

// GetIllustration fetches a single illustration's metadata.
//
// The remote service returns a single-element collection for this endpoint;
// the element is unwrapped here.
func (c *Client) GetIllustration(ctx context.Context, illustID string) (Illustration, error) {
	url := GetIllustURL(illustID)

	payload, err := c.fetchEnvelope(ctx, url)
	if err != nil {
		return Illustration{}, err
	}

	var works []Illustration
	if err := json.Unmarshal(payload, &works); err != nil {
		return Illustration{}, fmt.Errorf("%w: %w", errUnmarshalIllustData, err)
	}

	if len(works) == 0 {
		return Illustration{}, fmt.Errorf("%w (url: %s)", errEmptyIllustPayload, url)
	}

	return works[0], nil
}
