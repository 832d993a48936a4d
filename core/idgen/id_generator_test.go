// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package idgen

import (
	"testing"
	"time"
)

func TestMake(t *testing.T) {
	t.Parallel()

	id := Make()

	// 6 byte timestamp plus 4 characters of base64-encoded entropy.
	if len(id) != 10 {
		t.Errorf("Make() = %q, want 10 characters", id)
	}

	if _, err := time.Parse("150405", id[:6]); err != nil {
		t.Errorf("Make() time part %q does not parse: %v", id[:6], err)
	}
}
