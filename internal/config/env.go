// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables via the `env` and
// `envPrefix` tags on [StructuredConfig]. Values are trimmed first, so a
// stray space copied into a shell profile does not break duration parsing.
func parseEnv(cfg *StructuredConfig) error {
	opts := env.Options{Environment: trimmedEnviron()}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func trimmedEnviron() map[string]string {
	vars := env.ToMap(os.Environ())
	for k, v := range vars {
		vars[k] = strings.TrimSpace(v)
	}
	return vars
}
