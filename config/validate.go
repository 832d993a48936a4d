// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
)

// validation errors.
var (
	errUserAgentRequired    = errors.New("client.userAgent cannot be empty")
	errClientIDRequired     = errors.New("client.clientId cannot be empty")
	errClientSecretRequired = errors.New("client.clientSecret cannot be empty")
	errSessionFileRequired  = errors.New("session.filePath cannot be empty")
	errTimeoutNotPositive   = errors.New("request.timeout must be positive")
)

// validate checks the client configuration for values that cannot work.
func (cfg *ClientConfig) validate() error {
	if cfg.Client.UserAgent == "" {
		return errUserAgentRequired
	}

	if cfg.Client.ClientID == "" {
		return errClientIDRequired
	}

	if cfg.Client.ClientSecret == "" {
		return errClientSecretRequired
	}

	if cfg.Session.FilePath == "" {
		return errSessionFileRequired
	}

	if cfg.Request.Timeout <= 0 {
		return fmt.Errorf("%w, got %s", errTimeoutNotPositive, cfg.Request.Timeout)
	}

	return nil
}
