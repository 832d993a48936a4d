// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package requests_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/pixivcli/pixivcli/config"
	"codeberg.org/pixivcli/pixivcli/core/audit"
	"codeberg.org/pixivcli/pixivcli/core/requests"
)

func TestMain(m *testing.M) {
	config.Global.SetDefaults()

	os.Exit(m.Run())
}

func TestParseEnvelope(t *testing.T) {
	t.Parallel()

	const requestURL = "https://example.test/v1/works/1.json"

	t.Run("success payload returned unchanged", func(t *testing.T) {
		t.Parallel()

		payload, err := requests.ParseEnvelope(requestURL, []byte(`{"status":"success","response":[{"id":1}]}`))
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":1}]`, string(payload))
	})

	t.Run("failure status", func(t *testing.T) {
		t.Parallel()

		_, err := requests.ParseEnvelope(requestURL, []byte(`{"status":"failure"}`))

		var fetchErr *requests.FetchError

		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, requestURL, fetchErr.URL)
		assert.Equal(t, "failure", fetchErr.Status)
	})

	t.Run("missing status", func(t *testing.T) {
		t.Parallel()

		_, err := requests.ParseEnvelope(requestURL, []byte(`{"response":[]}`))

		var fetchErr *requests.FetchError

		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, requestURL, fetchErr.URL)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		t.Parallel()

		_, err := requests.ParseEnvelope(requestURL, []byte(`<html>`))

		var fetchErr *requests.FetchError

		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, requestURL, fetchErr.URL)
	})
}

// TestDoSetsFixedHeaders verifies every request carries the fixed client
// headers, and that credentials add the bearer token and session cookie.
func TestDoSetsFixedHeaders(t *testing.T) {
	t.Parallel()

	var got http.Header

	var gotCookie string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()

		if c, err := r.Cookie("PHPSESSID"); err == nil {
			gotCookie = c.Value
		}

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, _, err := requests.Do(context.Background(), requests.RequestOptions{
		Method:      http.MethodGet,
		URL:         server.URL,
		Destination: audit.ToPixiv,
		Credentials: requests.Credentials{AccessToken: "tok", SessionID: "abc123"},
	})
	require.NoError(t, err)

	assert.Equal(t, config.Global.Client.Referer, got.Get("Referer"))
	assert.Equal(t, config.Global.Client.UserAgent, got.Get("User-Agent"))
	assert.Equal(t, "application/x-www-form-urlencoded", got.Get("Content-Type"))
	assert.Equal(t, "Bearer tok", got.Get("Authorization"))
	assert.Equal(t, "abc123", gotCookie)
}

// TestDoWithoutCredentials verifies unauthenticated requests omit the
// Authorization header and session cookie entirely.
func TestDoWithoutCredentials(t *testing.T) {
	t.Parallel()

	var got http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, _, err := requests.Do(context.Background(), requests.RequestOptions{
		Method:      http.MethodGet,
		URL:         server.URL,
		Destination: audit.ToPixiv,
	})
	require.NoError(t, err)

	assert.Empty(t, got.Get("Authorization"))
	assert.Empty(t, got.Get("Cookie"))
}

func TestIsAuthFailureStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code     int
		expected bool
	}{
		{http.StatusOK, false},
		{http.StatusFound, false},
		{http.StatusUnauthorized, true},
		{http.StatusForbidden, true},
		{http.StatusNotFound, false},
		{http.StatusInternalServerError, false},
	}

	for _, tc := range cases {
		if got := requests.IsAuthFailureStatus(tc.code); got != tc.expected {
			t.Errorf("IsAuthFailureStatus(%d) = %v, want %v", tc.code, got, tc.expected)
		}
	}
}
