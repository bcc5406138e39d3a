// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"sync"

	"github.com/joho/godotenv"
)

var dotEnvLoaded sync.Once

// loadDotEnv copies variables from a .env file in the working directory into
// the process environment once. Variables that are already set keep their
// values, and a missing file is not an error.
func loadDotEnv() {
	dotEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})
}
