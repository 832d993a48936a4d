// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "time"

const (
	// defaultTimeoutSeconds is the default per-request timeout.
	defaultTimeoutSeconds = 10

	// Application credentials for the iOS app's OAuth client.
	defaultClientID     = "bYGKuGVw91e0NMfPGp44euvGt59s"
	defaultClientSecret = "HP3RmkgAmEGro0gn1x9ioawQE8WMfvLXDz3ZqxpK"
)

// SetDefaults populates the configuration with default values.
func (cfg *ClientConfig) SetDefaults() {
	cfg.Client.UserAgent = "PixivIOSApp/5.8.3"
	cfg.Client.Referer = "http://www.pixiv.net/"
	cfg.Client.ClientID = defaultClientID
	cfg.Client.ClientSecret = defaultClientSecret
	cfg.Client.ImageSizes = []string{"px_128x128", "px_480mw", "small", "medium", "large"}
	cfg.Client.ProfileImageSizes = []string{"px_170x170", "px_50x50"}

	cfg.Session.FilePath = "session"

	cfg.Request.Timeout = defaultTimeoutSeconds * time.Second

	cfg.Log.Level = "info"

	cfg.Development.SaveResponses = false
	cfg.Development.ResponseSaveLocation = "/tmp/pixivcli"
}
