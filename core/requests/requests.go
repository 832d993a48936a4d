// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package requests holds the shared plumbing for outbound HTTP: one tuned
client owned for the process lifetime, fixed pixiv headers, credential
injection, and result-envelope processing.
*/
package requests

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"codeberg.org/pixivcli/pixivcli/config"
	"codeberg.org/pixivcli/pixivcli/core/audit"
	"codeberg.org/pixivcli/pixivcli/core/idgen"
)

const (
	// clientSessionCacheSize defines the size of the TLS session cache.
	clientSessionCacheSize = 20

	// maxIdleConnsPerHost defines maximum idle connections to keep per host.
	maxIdleConnsPerHost = 20

	// bufferSize defines the read and write buffer size in bytes (32KB).
	bufferSize = 32 * 1024
)

// HTTPClient is a pre-configured http.Client shared by every request.
// Created once, reused for the process lifetime, reclaimed at exit.
var HTTPClient = &http.Client{
	Transport: &http.Transport{
		TLSClientConfig: &tls.Config{
			ClientSessionCache: tls.NewLRUClientSessionCache(clientSessionCacheSize),
			MinVersion:         tls.VersionTLS12,
		},
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        0,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		WriteBufferSize:     bufferSize,
		ReadBufferSize:      bufferSize,
	},
}

// Do sends an HTTP request and returns the raw *http.Response and the
// response body as a byte slice.
//
// The configured request timeout is applied here; it is the only
// cancellation mechanism. The `Body` field of the returned *http.Response
// is already consumed, so callers should use the byte slice directly.
//
// This function does not check for non-OK status codes, leaving that task
// to the caller.
func Do(ctx context.Context, opts RequestOptions) (*http.Response, []byte, error) {
	if timeout := config.Global.Timeout(); timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := newRequest(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	return sendRequest(ctx, req, opts.Destination)
}

// GetEnvelope performs an authenticated GET and extracts the result
// envelope's payload.
//
// Returns a *FetchError if the body is not valid JSON or the envelope's
// status discriminator is anything other than "success".
func GetEnvelope(ctx context.Context, url string, creds Credentials) ([]byte, error) {
	_, body, err := Do(ctx, RequestOptions{
		Method:      http.MethodGet,
		URL:         url,
		Destination: audit.ToPixiv,
		Credentials: creds,
	})
	if err != nil {
		return nil, err
	}

	return ParseEnvelope(url, body)
}

// ParseEnvelope parses a raw `{status, response}` envelope body.
//
// The payload is returned only when the status discriminator is "success";
// any other outcome is a *FetchError carrying the request URL so a
// misleading payload can never reach the caller.
func ParseEnvelope(url string, body []byte) ([]byte, error) {
	if !gjson.ValidBytes(body) {
		return nil, &FetchError{URL: url, Err: errInvalidJSON}
	}

	result := gjson.ParseBytes(body)

	if status := result.Get("status").String(); status != "success" {
		return nil, &FetchError{URL: url, Status: status, Err: errEnvelopeNonSuccess}
	}

	return []byte(result.Get("response").Raw), nil
}

// IsAuthFailureStatus reports whether an HTTP status from a data query
// indicates the session credential was rejected.
func IsAuthFailureStatus(statusCode int) bool {
	return statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden
}

// newRequest constructs an *http.Request from RequestOptions.
//
// Every request carries the fixed Referer, User-Agent, and Content-Type;
// credentials, when present, add the bearer token and session cookie.
func newRequest(ctx context.Context, opts RequestOptions) (*http.Request, error) {
	var reqBody io.Reader

	if opts.Method == http.MethodPost && opts.Form != nil {
		reqBody = strings.NewReader(opts.Form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, opts.URL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Referer", config.Global.Client.Referer)
	req.Header.Set("User-Agent", config.Global.Client.UserAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if !opts.Credentials.IsZero() {
		req.Header.Set("Authorization", "Bearer "+opts.Credentials.AccessToken)
		req.AddCookie(&http.Cookie{Name: "PHPSESSID", Value: opts.Credentials.SessionID})
	}

	return req, nil
}

// sendRequest executes the HTTP request, reads the body, and logs an audit
// span. The returned response's Body is already drained.
func sendRequest(
	ctx context.Context,
	req *http.Request,
	destination audit.TrafficDestination,
) (_ *http.Response, _ []byte, err error) {
	span := audit.Span{
		Destination: destination,
		RequestID:   idgen.Make(),
		Method:      req.Method,
		URL:         req.URL.String(),
	}

	defer func() { span.Error = err }()

	_ = span.Begin(ctx)
	defer span.End() // in case of error

	resp, err := HTTPClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	span.StatusCode = resp.StatusCode

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	span.Body = body

	span.End()
	span.Log()

	return resp, body, nil
}
