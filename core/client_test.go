// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/pixivcli/pixivcli/config"
	"codeberg.org/pixivcli/pixivcli/core/requests"
	"codeberg.org/pixivcli/pixivcli/core/session"
)

func TestMain(m *testing.M) {
	config.Global.SetDefaults()

	os.Exit(m.Run())
}

const illustPayload = `[{"id":1,"title":"first","user":{"id":7,"name":"someone"}},{"id":2,"title":"second"}]`

type staticProvider struct {
	calls int
}

func (p *staticProvider) RequestCredentials() (string, string, error) {
	p.calls++

	return "alice", "hunter2", nil
}

func (p *staticProvider) ConfirmRetry() bool {
	return false
}

// newTestClient points the query layer at a scripted data server and wires
// a session manager whose auth and probe endpoints are also local. The
// returned counter tracks completed login exchanges.
func newTestClient(t *testing.T, dataHandler http.HandlerFunc) (*Client, *atomic.Int64, *url.URL) {
	t.Helper()

	dataServer := httptest.NewServer(dataHandler)
	t.Cleanup(dataServer.Close)

	oldBase := publicAPIBase
	publicAPIBase = dataServer.URL
	t.Cleanup(func() { publicAPIBase = oldBase })

	loginCalls := &atomic.Int64{}

	authServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loginCalls.Add(1)
		w.Header().Set("Set-Cookie", "PHPSESSID=fresh; Path=/")
		_, _ = w.Write([]byte(`{"response":{"access_token":"fresh-tok","user":{"id":42}}}`))
	}))
	t.Cleanup(authServer.Close)

	probeServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","response":[]}`))
	}))
	t.Cleanup(probeServer.Close)

	store := session.NewStore(filepath.Join(t.TempDir(), "session"))
	require.NoError(t, store.Save(session.Record{AccessToken: "tok", UserID: "42", SessionID: "abc"}))

	validator := session.NewValidator()
	validator.ProbeURL = probeServer.URL

	auth := session.NewAuthenticator(store)
	auth.TokenURL = authServer.URL

	manager := session.NewManager(store, validator, auth, &staticProvider{})

	base, err := url.Parse(dataServer.URL)
	require.NoError(t, err)

	return NewClientWithManager(manager), loginCalls, base
}

// TestGetUserIllustrationsReturnsPayload checks the envelope contract: a
// success envelope yields the parsed payload, and the outgoing request
// carries the expected parameters.
func TestGetUserIllustrationsReturnsPayload(t *testing.T) {
	var gotURL atomic.Pointer[url.URL]

	client, loginCalls, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		u := *r.URL
		gotURL.Store(&u)

		_, _ = w.Write([]byte(`{"status":"success","response":` + illustPayload + `}`))
	})

	works, err := client.GetUserIllustrations(context.Background(), "11", 0, 0)
	require.NoError(t, err)

	require.Len(t, works, 2)
	assert.Equal(t, 1, works[0].ID)
	assert.Equal(t, "first", works[0].Title)
	assert.Equal(t, 7, works[0].User.ID)

	requested := gotURL.Load()
	require.NotNil(t, requested)
	assert.Equal(t, "/users/11/works.json", requested.Path)
	assert.Equal(t, "9999", requested.Query().Get("per_page"))
	assert.Equal(t, "1", requested.Query().Get("page"))

	// A valid stored session means no login exchange happened.
	assert.EqualValues(t, 0, loginCalls.Load())
}

func TestQueryFailureEnvelope(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"failure"}`))
	})

	_, err := client.GetUserIllustrations(context.Background(), "11", 0, 0)

	var fetchErr *requests.FetchError

	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.URL, "/users/11/works.json")
	assert.Equal(t, "failure", fetchErr.Status)
}

func TestGetIllustrationUnwrapsSingleElement(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","response":[{"id":12345,"title":"only"}]}`))
	})

	work, err := client.GetIllustration(context.Background(), "12345")
	require.NoError(t, err)

	assert.Equal(t, 12345, work.ID)
	assert.Equal(t, "only", work.Title)
}

func TestGetIllustrationEmptyPayload(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","response":[]}`))
	})

	_, err := client.GetIllustration(context.Background(), "12345")
	require.Error(t, err)
}

func TestGetRankingIllustrationsDateParameter(t *testing.T) {
	var gotURL atomic.Pointer[url.URL]

	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		u := *r.URL
		gotURL.Store(&u)

		_, _ = w.Write([]byte(`{"status":"success","response":` + illustPayload + `}`))
	})

	_, err := client.GetRankingIllustrations(context.Background(), "daily", "2015-04-01", 0, 0)
	require.NoError(t, err)

	requested := gotURL.Load()
	require.NotNil(t, requested)
	assert.Equal(t, "2015-04-01", requested.Query().Get("date"))

	_, err = client.GetRankingIllustrations(context.Background(), "daily", "", 0, 0)
	require.NoError(t, err)

	requested = gotURL.Load()
	assert.False(t, requested.Query().Has("date"))
}

func TestGetRankingIllustrationsValidation(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued for invalid parameters")
	})

	_, err := client.GetRankingIllustrations(context.Background(), "hourly", "", 0, 0)
	require.Error(t, err)

	_, err = client.GetRankingIllustrations(context.Background(), "daily", "01-04-2015", 0, 0)
	require.Error(t, err)
}

// TestReactiveReauthentication verifies that a 401 from a data call
// invalidates the session, triggers one re-login, and retries the request.
func TestReactiveReauthentication(t *testing.T) {
	var dataCalls atomic.Int64

	client, loginCalls, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if dataCalls.Add(1) == 1 {
			w.WriteHeader(http.StatusUnauthorized)

			return
		}

		assert.Equal(t, "Bearer fresh-tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"status":"success","response":` + illustPayload + `}`))
	})

	works, err := client.GetUserIllustrations(context.Background(), "11", 0, 0)
	require.NoError(t, err)
	require.Len(t, works, 2)

	assert.EqualValues(t, 2, dataCalls.Load())
	assert.EqualValues(t, 1, loginCalls.Load())
}
