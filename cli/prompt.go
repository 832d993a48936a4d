// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package cli

import (
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
)

// Prompter collects credentials and retry decisions at the terminal.
// It implements session.CredentialProvider.
type Prompter struct {
	in  io.Reader
	out io.Writer
}

// NewPrompter creates a terminal prompter.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// RequestCredentials prompts for a username (echoed) and password (masked).
func (p *Prompter) RequestCredentials() (string, string, error) {
	fmt.Fprintln(p.out, "Please login")

	var username string
	if err := survey.AskOne(&survey.Input{
		Message: "username:",
	}, &username, survey.WithValidator(survey.Required)); err != nil {
		return "", "", fmt.Errorf("failed to read username: %w", err)
	}

	var password string
	if err := survey.AskOne(&survey.Password{
		Message: "password:",
	}, &password, survey.WithValidator(survey.Required)); err != nil {
		return "", "", fmt.Errorf("failed to read password: %w", err)
	}

	return username, password, nil
}

// ConfirmRetry asks whether a failed login should be attempted again.
func (p *Prompter) ConfirmRetry() bool {
	retry := false

	if err := survey.AskOne(&survey.Confirm{
		Message: "Retry?",
		Default: false,
	}, &retry); err != nil {
		return false
	}

	return retry
}
