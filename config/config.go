// Package config provides the key-value configuration that topologies read
// their parameters from.
package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
)

// ErrKeyNotFound indicates that a requested key is absent.
var ErrKeyNotFound = errors.New("config: key not found")

// ErrNotInteger indicates that a value exists but cannot be read as an int.
var ErrNotInteger = errors.New("config: value is not an integer")

// Configuration is the lookup interface consumed by network builders.
type Configuration interface {
	GetInt(key string) (int, error)
}

// Config is a flat key-value store. Keys are case-insensitive.
type Config struct {
	lock   sync.RWMutex
	values map[string]any
}

// New creates an empty Config.
func New() *Config {
	return &Config{values: make(map[string]any)}
}

// FromMap creates a Config holding a copy of values.
func FromMap(values map[string]any) *Config {
	c := New()
	for k, v := range values {
		c.Set(k, v)
	}

	return c
}

// Set stores a value, replacing any previous value under the same key.
func (c *Config) Set(key string, value any) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.values[normalizeKey(key)] = value
}

// Has reports whether key is present.
func (c *Config) Has(key string) bool {
	c.lock.RLock()
	defer c.lock.RUnlock()

	_, found := c.values[normalizeKey(key)]

	return found
}

// Merge copies every entry of other into c. Entries of other win.
func (c *Config) Merge(other *Config) {
	other.lock.RLock()
	defer other.lock.RUnlock()

	for k, v := range other.values {
		c.Set(k, v)
	}
}

// GetInt returns the integer stored under key.
func (c *Config) GetInt(key string) (int, error) {
	c.lock.RLock()
	v, found := c.values[normalizeKey(key)]
	c.lock.RUnlock()

	if !found {
		return 0, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	i, ok := toInt(v)
	if !ok {
		return 0, fmt.Errorf("%w: %q = %v", ErrNotInteger, key, v)
	}

	return i, nil
}

// GetString returns the value stored under key formatted as a string.
func (c *Config) GetString(key string) (string, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	v, found := c.values[normalizeKey(key)]
	if !found {
		return "", fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	return fmt.Sprint(v), nil
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case uint64:
		if x > math.MaxInt {
			return 0, false
		}

		return int(x), true
	case float64:
		if x != math.Trunc(x) || math.Abs(x) > math.MaxInt32 {
			return 0, false
		}

		return int(x), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(x))
		return i, err == nil
	default:
		return 0, false
	}
}
