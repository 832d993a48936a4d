// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
pixivcli is a small read-only client for pixiv's public-api v1.
*/
package main

import (
	"codeberg.org/pixivcli/pixivcli/cli"
)

// main is the entry point of the application.
func main() {
	cli.Execute()
}
