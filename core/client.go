// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"codeberg.org/pixivcli/pixivcli/config"
	"codeberg.org/pixivcli/pixivcli/core/audit"
	"codeberg.org/pixivcli/pixivcli/core/requests"
	"codeberg.org/pixivcli/pixivcli/core/session"
)

// Client bundles the session manager with the query operations. One client
// owns the session state for the process lifetime.
type Client struct {
	manager *session.Manager
}

// NewClient wires a client from the global configuration and the given
// credential provider.
func NewClient(provider session.CredentialProvider) *Client {
	store := session.NewStore(config.Global.Session.FilePath)

	return &Client{
		manager: session.NewManager(
			store,
			session.NewValidator(),
			session.NewAuthenticator(store),
			provider,
		),
	}
}

// NewClientWithManager injects a preassembled session manager. Used by
// tests and by callers that need custom endpoints.
func NewClientWithManager(manager *session.Manager) *Client {
	return &Client{manager: manager}
}

// Manager exposes the session manager for lifecycle operations.
func (c *Client) Manager() *session.Manager {
	return c.manager
}

// fetchEnvelope guarantees a valid credential, issues a single GET, and
// extracts the result envelope's payload.
//
// A 401-style response invalidates the session and the request is retried
// once after re-authentication, so a token that expired mid-session heals
// without surfacing an error.
func (c *Client) fetchEnvelope(ctx context.Context, url string) ([]byte, error) {
	if err := c.manager.EnsureReady(ctx); err != nil {
		return nil, err
	}

	resp, body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	if requests.IsAuthFailureStatus(resp.StatusCode) {
		log.Warn().Int("status_code", resp.StatusCode).Str("url", url).
			Msg("Credential rejected mid-session, re-authenticating")

		c.manager.Invalidate()

		if err := c.manager.EnsureReady(ctx); err != nil {
			return nil, err
		}

		if _, body, err = c.get(ctx, url); err != nil {
			return nil, err
		}
	}

	return requests.ParseEnvelope(url, body)
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, []byte, error) {
	return requests.Do(ctx, requests.RequestOptions{
		Method:      http.MethodGet,
		URL:         url,
		Destination: audit.ToPixiv,
		Credentials: c.manager.Credentials(),
	})
}
