// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package session_test

import (
	"os"
	"testing"

	"codeberg.org/pixivcli/pixivcli/config"
)

func TestMain(m *testing.M) {
	// The request layer reads headers and OAuth client credentials from the
	// global configuration.
	config.Global.SetDefaults()

	os.Exit(m.Run())
}
