// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

const redactedValue = "[redacted]"

func (cfg *ClientConfig) print() {
	// Redact sensitive fields using a shallow copy of the config.
	printableConfig := *cfg

	printableConfig.Client.ClientSecret = redactedValue

	// Marshal the processed config to indented YAML.
	configYAML, err := yaml.Marshal(printableConfig)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal config to YAML for printing")

		return
	}

	log.Debug().
		Str("config", string(configYAML)).
		Msg("Loaded configuration")
}
