// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"codeberg.org/pixivcli/pixivcli/core/audit"
)

// Global exposes the client configuration.
var Global ClientConfig

// ClientConfig holds the application configuration.
//
// Everything except the request timeout is immutable for the process's
// lifetime once LoadConfig returns.
type ClientConfig struct {
	Client struct {
		// UserAgent identifies the client to pixiv. The public-api endpoints
		// gate on app version strings, so this defaults to a known-good one.
		UserAgent string `env:"PIXIVCLI_USER_AGENT,overwrite" yaml:"userAgent"`
		Referer   string `env:"PIXIVCLI_REFERER,overwrite" yaml:"referer"`

		// OAuth application credentials, not user credentials.
		ClientID     string `env:"PIXIVCLI_CLIENT_ID,overwrite" yaml:"clientId"`
		ClientSecret string `env:"PIXIVCLI_CLIENT_SECRET,overwrite" yaml:"clientSecret"`

		ImageSizes        []string `env:"PIXIVCLI_IMAGE_SIZES,overwrite" yaml:"imageSizes"`
		ProfileImageSizes []string `env:"PIXIVCLI_PROFILE_IMAGE_SIZES,overwrite" yaml:"profileImageSizes"`
	} `yaml:"client"`

	Session struct {
		FilePath string `env:"PIXIVCLI_SESSION_FILE,overwrite" yaml:"filePath"`
	} `yaml:"session"`

	Request struct {
		Timeout time.Duration `env:"PIXIVCLI_TIMEOUT,overwrite" yaml:"timeout"`
	} `yaml:"request"`

	Log struct {
		Level string `env:"PIXIVCLI_LOG_LEVEL,overwrite" yaml:"logLevel"`
	} `yaml:"log"`

	Development struct {
		SaveResponses        bool   `env:"PIXIVCLI_SAVE_RESPONSES,overwrite" yaml:"saveResponses"`
		ResponseSaveLocation string `env:"PIXIVCLI_RESPONSE_SAVE_LOCATION,overwrite" yaml:"responseSaveLocation"`
	} `yaml:"development"`
}

// liveTimeout holds the request timeout currently in effect, in nanoseconds.
// SetTimeout may be called at any point after LoadConfig and affects
// subsequently issued requests only.
var liveTimeout atomic.Int64

// LoadConfig loads the configuration from various sources.
//
// configFilePath comes from the command line; when empty, the
// PIXIVCLI_CONFIGFILE environment variable is consulted, then the default
// ./config.yaml (which may be absent).
func (cfg *ClientConfig) LoadConfig(configFilePath string) error {
	if configFilePath == "" {
		if envVar := os.Getenv("PIXIVCLI_CONFIGFILE"); envVar != "" {
			configFilePath = envVar
		} else {
			configFilePath = "./config.yaml"
		}
	}

	cfg.SetDefaults()

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	liveTimeout.Store(int64(cfg.Request.Timeout))

	cfg.setupAudit()

	cfg.print()

	return nil
}

// Timeout returns the request timeout currently in effect.
func (cfg *ClientConfig) Timeout() time.Duration {
	d := time.Duration(liveTimeout.Load())
	if d <= 0 {
		// LoadConfig was skipped (tests); fall back to the configured value.
		return cfg.Request.Timeout
	}

	return d
}

// SetTimeout replaces the request timeout used by all subsequent requests.
// Non-positive values are ignored.
func (cfg *ClientConfig) SetTimeout(d time.Duration) {
	if d <= 0 {
		return
	}

	liveTimeout.Store(int64(d))
}

// setupAudit applies logging and response-saving settings.
func (cfg *ClientConfig) setupAudit() {
	audit.SetLogLevel(cfg.Log.Level)

	audit.SaveResponses = cfg.Development.SaveResponses
	audit.ResponseDirectory = cfg.Development.ResponseSaveLocation
}
