// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package session

// CredentialProvider supplies user credentials and retry decisions during
// the login flow. The interactive implementation lives in package cli;
// tests substitute non-interactive ones.
type CredentialProvider interface {
	// RequestCredentials obtains a (username, password) pair, or fails when
	// none can be collected.
	RequestCredentials() (username, password string, err error)

	// ConfirmRetry asks whether a failed login should be attempted again.
	ConfirmRetry() bool
}
