// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package session

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"codeberg.org/pixivcli/pixivcli/core/audit"
	"codeberg.org/pixivcli/pixivcli/core/requests"
)

// SessionProbeURL is a low-cost authenticated endpoint used to decide
// whether stored credentials are still accepted.
const SessionProbeURL = "https://public-api.secure.pixiv.net/v1/ios_magazine_banner.json"

// Validity is the outcome of a session probe.
type Validity int

// Possible Validity values.
const (
	Expired Validity = iota
	Valid
)

// Validator probes whether a stored session is still usable.
type Validator struct {
	// ProbeURL is overridable for tests; defaults to SessionProbeURL.
	ProbeURL string
}

// NewValidator creates a validator against the real probe endpoint.
func NewValidator() *Validator {
	return &Validator{ProbeURL: SessionProbeURL}
}

// CheckExpired issues a single probe request using the record's credentials
// and classifies the outcome.
//
// Valid iff the HTTP status is one of 200, 301, 302 AND the body parses as
// an envelope whose status discriminator is "success". Every other outcome,
// including transport failure and unparseable bodies, is Expired. Exactly
// one round trip; retry policy belongs to the caller.
func (v *Validator) CheckExpired(ctx context.Context, rec Record) Validity {
	resp, body, err := requests.Do(ctx, requests.RequestOptions{
		Method:      http.MethodGet,
		URL:         v.ProbeURL,
		Destination: audit.ToPixiv,
		Credentials: rec.Credentials(),
	})
	if err != nil {
		log.Debug().Err(err).Msg("Session probe failed")

		return Expired
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusMovedPermanently, http.StatusFound:
	default:
		return Expired
	}

	if !gjson.ValidBytes(body) {
		return Expired
	}

	if gjson.GetBytes(body, "status").String() != "success" {
		return Expired
	}

	return Valid
}
