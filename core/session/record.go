// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package session implements the session lifecycle: persisting credentials,
probing whether a stored session is still usable, exchanging a username and
password for fresh credentials, and guaranteeing a valid credential before
any data call.
*/
package session

import (
	"codeberg.org/pixivcli/pixivcli/core/requests"
)

// Record is the unit of persisted session state.
//
// A record is usable only when all three fields are non-empty; anything
// else is treated as "no session". It is overwritten wholesale on every
// successful login and never deleted automatically.
type Record struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	SessionID   string `json:"session_id"`
}

// Usable reports whether the record can back authenticated requests.
func (r Record) Usable() bool {
	return r.AccessToken != "" && r.UserID != "" && r.SessionID != ""
}

// Credentials converts the record into the form the request layer attaches
// to outbound requests.
func (r Record) Credentials() requests.Credentials {
	return requests.Credentials{
		AccessToken: r.AccessToken,
		SessionID:   r.SessionID,
	}
}
