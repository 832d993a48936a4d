// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package requests

import (
	"net/url"

	"codeberg.org/pixivcli/pixivcli/core/audit"
)

// Credentials carries the bearer token and paired session cookie presented
// on authenticated requests. The zero value means "not authenticated" and
// produces a request without Authorization or Cookie headers.
type Credentials struct {
	AccessToken string
	SessionID   string
}

// IsZero reports whether no credentials are held.
func (c Credentials) IsZero() bool {
	return c.AccessToken == "" && c.SessionID == ""
}

// RequestOptions are parameters for Do.
type RequestOptions struct {
	Method      string
	URL         string
	Destination audit.TrafficDestination
	Form        url.Values // form-encoded POST body, nil for GET
	Credentials Credentials
}
