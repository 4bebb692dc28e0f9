// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from environment variables such as APP_TOKEN_SIGN_KEY
// through the `env` and `envPrefix` tags. Unset variables leave the field untouched.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading environment config: %w", err)
	}

	return nil
}
