// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package session

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"codeberg.org/pixivcli/pixivcli/core/requests"
)

// State is the session manager's position in its lifecycle.
type State int

// Manager states.
const (
	Uninitialized State = iota
	NoSession
	StateValid
	StateExpired
	Authenticating
	Aborted
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case NoSession:
		return "no_session"
	case StateValid:
		return "valid"
	case StateExpired:
		return "expired"
	case Authenticating:
		return "authenticating"
	case Aborted:
		return "aborted"
	}

	return ""
}

// ErrLoginAborted reports that the user declined to retry a failed login.
// Data calls must not proceed once this is returned.
var ErrLoginAborted = errors.New("login aborted by user")

// Manager orchestrates store, validator, and authenticator to guarantee a
// valid credential is available before any data call.
type Manager struct {
	store     *Store
	validator *Validator
	auth      *Authenticator
	provider  CredentialProvider

	state  State
	record Record
}

// NewManager wires the session components together. Nothing touches the
// network until Init or EnsureReady is called.
func NewManager(store *Store, validator *Validator, auth *Authenticator, provider CredentialProvider) *Manager {
	return &Manager{
		store:     store,
		validator: validator,
		auth:      auth,
		provider:  provider,
		state:     Uninitialized,
	}
}

// Init loads the persisted record, validates it, and re-authenticates when
// it is absent or expired.
func (m *Manager) Init(ctx context.Context) error {
	rec, ok := m.store.Load()
	if !ok {
		m.state = NoSession

		return m.loginRequired(ctx)
	}

	m.record = rec

	log.Info().Msg("Checking session")

	if m.validator.CheckExpired(ctx, rec) == Valid {
		log.Info().Str("user_id", rec.UserID).Msg("Session valid")

		m.state = StateValid

		return nil
	}

	log.Info().Msg("Session expired")

	// The token is known to be invalid; it must never be presented again.
	m.record.AccessToken = ""
	m.state = StateExpired

	return m.loginRequired(ctx)
}

// EnsureReady guarantees the manager holds a valid credential, prompting
// for login when it does not. Calling it repeatedly while the session is
// valid performs no network calls.
func (m *Manager) EnsureReady(ctx context.Context) error {
	switch m.state {
	case StateValid:
		return nil
	case Uninitialized:
		return m.Init(ctx)
	case Aborted:
		return ErrLoginAborted
	default:
		return m.loginRequired(ctx)
	}
}

// Invalidate discards the in-memory token, forcing the next EnsureReady to
// re-authenticate. Called when a data query's response indicates the
// credential was rejected mid-session.
func (m *Manager) Invalidate() {
	m.record.AccessToken = ""
	m.state = StateExpired
}

// loginRequired obtains credentials from the provider and attempts a login,
// looping while the user confirms retry after a failure.
func (m *Manager) loginRequired(ctx context.Context) error {
	for {
		m.state = Authenticating

		username, password, err := m.provider.RequestCredentials()
		if err != nil {
			m.state = Aborted

			return err
		}

		rec, err := m.auth.Login(ctx, username, password)
		if err == nil {
			m.record = rec
			m.state = StateValid

			return nil
		}

		log.Error().Err(err).Msg("Login failed")

		if !m.provider.ConfirmRetry() {
			m.state = Aborted

			return ErrLoginAborted
		}
	}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	return m.state
}

// UserID returns the authenticated user's id, empty when not logged in.
func (m *Manager) UserID() string {
	return m.record.UserID
}

// Credentials returns the current credentials for the request layer.
func (m *Manager) Credentials() requests.Credentials {
	return m.record.Credentials()
}
