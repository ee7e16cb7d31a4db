// Package util provides small helpers shared across packages.
package util

import (
	"os"
	"strconv"
	"strings"
)

// ParseBoolEnv parses an environment variable as a boolean, returning the
// default when unset or unparsable. Accepts 1/0, t/f, true/false, y/n,
// yes/no, on/off in any case.
func ParseBoolEnv(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	case "0", "f", "false", "n", "no", "off":
		return false
	default:
		return def
	}
}

// ParseInt64Env parses an environment variable as an int64, returning the
// default when unset or unparsable.
func ParseInt64Env(key string, def int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return def
	}
	return n
}
