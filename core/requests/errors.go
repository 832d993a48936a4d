// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package requests

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errInvalidJSON       = errors.New("response contained invalid JSON")
	errEnvelopeNonSuccess = errors.New("API response indicated error")
	errAuthRejected      = errors.New("auth exchange rejected")
	errAuthFieldMissing  = errors.New("auth response missing required field")
)

// AuthError represents a failed login exchange: either the endpoint rejected
// the request with a bad status, or the response was missing a field the
// client needs (token, user id, or the PHPSESSID cookie).
type AuthError struct {
	// StatusCode is the HTTP status code from the response.
	// Zero when the exchange succeeded at the HTTP level but the response
	// shape was unexpected.
	StatusCode int

	// Missing names the field absent from an otherwise successful response.
	Missing string

	// Err is the underlying error cause.
	Err error
}

// NewAuthStatusError builds an AuthError for a rejected exchange.
func NewAuthStatusError(statusCode int) *AuthError {
	return &AuthError{StatusCode: statusCode, Err: errAuthRejected}
}

// NewAuthFieldError builds an AuthError for a missing response field.
func NewAuthFieldError(field string) *AuthError {
	return &AuthError{Missing: field, Err: errAuthFieldMissing}
}

// Error returns a formatted error message including the status code or missing field.
func (e *AuthError) Error() string {
	var b strings.Builder

	b.WriteString(e.Err.Error())

	if e.Missing != "" {
		b.WriteString(": ")
		b.WriteString(e.Missing)
	}

	if e.StatusCode != 0 {
		b.WriteString(fmt.Sprintf(" (status code: %d)", e.StatusCode))
	}

	return b.String()
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// FetchError represents a data query whose result envelope did not indicate
// success. It carries the request URL so callers can tell which query failed.
type FetchError struct {
	// URL is the full request URL of the failed query.
	URL string

	// Status is the envelope's status discriminator, empty when the body
	// was not parseable at all.
	Status string

	// Err is the underlying error cause.
	Err error
}

// Error returns a formatted error message including the envelope status and request URL.
func (e *FetchError) Error() string {
	var b strings.Builder

	b.WriteString(e.Err.Error())

	if e.Status != "" {
		b.WriteString(": status ")
		b.WriteString(e.Status)
	}

	b.WriteString(" (url: ")
	b.WriteString(e.URL)
	b.WriteString(")")

	return b.String()
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *FetchError) Unwrap() error {
	return e.Err
}
