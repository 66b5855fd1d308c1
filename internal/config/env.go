package config

import (
	"os"
	"strconv"
	"strings"
)

// LoadEnv loads KEY=VALUE pairs from the nearest .env file into the
// process environment. Variables already set win over file values.
// A missing file is not an error.
func LoadEnv() {
	for _, path := range []string{".env", "../.env", "../../.env"} {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			key, value, ok := cut(line, "=")
			if !ok {
				continue
			}
			if os.Getenv(key) == "" {
				os.Setenv(key, strings.Trim(value, `"`))
			}
		}
		return
	}
}

// cut splits line around the first sep, trimming whitespace from both
// halves.
func cut(line, sep string) (key, value string, ok bool) {
	idx := strings.Index(line, sep)
	if idx <= 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+len(sep):]), true
}

// GetEnv returns an environment variable or a default.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt returns an integer environment variable or a default.
func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// GetEnvBool returns a boolean environment variable or a default.
// Accepts true/false, 1/0, yes/no, on/off.
func GetEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	}
	return defaultValue
}
