package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnv collects every environment variable that starts with prefix into a
// Config, with the prefix stripped (TORUS_K becomes "k"). The given dotenv
// files are loaded first; variables already set in the process win over them.
func LoadEnv(prefix string, dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) > 0 {
		if err := godotenv.Load(dotenvFiles...); err != nil {
			return nil, fmt.Errorf("config: loading dotenv: %w", err)
		}
	}

	c := New()

	for _, kv := range os.Environ() {
		key, value, found := strings.Cut(kv, "=")
		if !found || !strings.HasPrefix(key, prefix) {
			continue
		}

		c.Set(strings.TrimPrefix(key, prefix), value)
	}

	return c, nil
}
