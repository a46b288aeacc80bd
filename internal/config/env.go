// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment via the `env` and
// `envPrefix` tags of [StructuredConfig].
func parseEnv(cfg any) error {
	return parseEnvFrom(cfg, env.ToMap(os.Environ()))
}

// parseEnvFrom is parseEnv over an explicit variable set.
func parseEnvFrom(cfg any, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
