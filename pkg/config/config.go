// Package config resolves the server configuration from the environment
package config

import (
	"errors"
	"fmt"
	"strconv"
)

// DefaultPort is used when PORT is unset or empty
const DefaultPort = "3000"

// ErrInvalidPort is returned when the port is not a number in 0-65535
var ErrInvalidPort = errors.New("invalid port")

// Config holds everything the server reads from its environment.
// It is resolved once at startup and passed to the server.
type Config struct {
	Port  string
	Debug bool

	// DevContainer is true only when DEVCONTAINER is exactly "true".
	DevContainer bool
	// DevContainerSet is true when DEVCONTAINER has any non-empty value.
	DevContainerSet bool
}

// LookupFunc has the signature of os.LookupEnv
type LookupFunc func(key string) (string, bool)

// Override returns a lookup that reports value for key and defers to
// lookup for every other key
func Override(lookup LookupFunc, key, value string) LookupFunc {
	return func(k string) (string, bool) {
		if k == key {
			return value, true
		}
		return lookup(k)
	}
}

// Load resolves the configuration using lookup
func Load(lookup LookupFunc) (*Config, error) {
	port, err := ParsePort(getEnv(lookup, "PORT", DefaultPort))
	if err != nil {
		return nil, err
	}

	devContainer := getEnv(lookup, "DEVCONTAINER", "")

	// an unparsable DEBUG leaves debug logging off
	debug, _ := strconv.ParseBool(getEnv(lookup, "DEBUG", "false"))

	return &Config{
		Port:            port,
		Debug:           debug,
		DevContainer:    devContainer == "true",
		DevContainerSet: devContainer != "",
	}, nil
}

// ParsePort validates a port value and returns it in canonical form
func ParsePort(value string) (string, error) {
	n, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		return "", fmt.Errorf("%w %q", ErrInvalidPort, value)
	}

	return strconv.FormatUint(n, 10), nil
}

// Addr returns the listen address for the configured port
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(lookup LookupFunc, key, defaultValue string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return defaultValue
}
