// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package session

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"codeberg.org/pixivcli/pixivcli/config"
	"codeberg.org/pixivcli/pixivcli/core/audit"
	"codeberg.org/pixivcli/pixivcli/core/requests"
)

// AuthTokenURL is the OAuth password-grant exchange endpoint.
const AuthTokenURL = "https://oauth.secure.pixiv.net/auth/token"

// phpSessIDPattern extracts the session cookie value from a Set-Cookie header.
var phpSessIDPattern = regexp.MustCompile(`PHPSESSID=(.*?);`)

// Authenticator exchanges a username and password for fresh credentials and
// persists them.
type Authenticator struct {
	// TokenURL is overridable for tests; defaults to AuthTokenURL.
	TokenURL string

	store *Store
}

// NewAuthenticator creates an authenticator that persists through the given store.
func NewAuthenticator(store *Store) *Authenticator {
	return &Authenticator{TokenURL: AuthTokenURL, store: store}
}

// Login performs the password-grant exchange.
//
// Any response status outside {200, 301, 302} is an *requests.AuthError
// carrying the status code. On success the bearer token, numeric user id
// (coerced to string), and PHPSESSID cookie are extracted, persisted via
// the store, and returned. The raw password is never logged or persisted.
func (a *Authenticator) Login(ctx context.Context, username, password string) (Record, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	form.Set("grant_type", "password")
	form.Set("client_id", config.Global.Client.ClientID)
	form.Set("client_secret", config.Global.Client.ClientSecret)

	resp, body, err := requests.Do(ctx, requests.RequestOptions{
		Method:      http.MethodPost,
		URL:         a.TokenURL,
		Destination: audit.ToOAuth,
		Form:        form,
	})
	if err != nil {
		return Record{}, fmt.Errorf("auth exchange failed: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusMovedPermanently, http.StatusFound:
	default:
		return Record{}, requests.NewAuthStatusError(resp.StatusCode)
	}

	result := gjson.ParseBytes(body)

	accessToken := result.Get("response.access_token").String()
	if accessToken == "" {
		return Record{}, requests.NewAuthFieldError("response.access_token")
	}

	userID := result.Get("response.user.id")
	if !userID.Exists() {
		return Record{}, requests.NewAuthFieldError("response.user.id")
	}

	sessionID := scanSessionCookie(resp.Header)
	if sessionID == "" {
		return Record{}, requests.NewAuthFieldError("PHPSESSID cookie")
	}

	rec := Record{
		AccessToken: accessToken,
		UserID:      userID.String(),
		SessionID:   sessionID,
	}

	if err := a.store.Save(rec); err != nil {
		return Record{}, err
	}

	log.Info().Str("user_id", rec.UserID).Msg("Logged in")

	return rec, nil
}

// scanSessionCookie scans the response's Set-Cookie headers for a
// `PHPSESSID=<value>;` pattern.
func scanSessionCookie(header http.Header) string {
	for _, cookie := range header.Values("Set-Cookie") {
		if match := phpSessIDPattern.FindStringSubmatch(cookie); match != nil {
			return match[1]
		}
	}

	return ""
}
