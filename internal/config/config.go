// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config holds the settings a host reads from the environment. A .env file
// is loaded by the binary through godotenv/autoload before Load runs.
type Config struct {
	LogLevel logrus.Level
	// Seed fixes the shuffle when non-zero.
	Seed int64
	// Rules are initial rule values keyed by rule name.
	Rules map[string]interface{}

	// RedisAddr enables the message outbox when set.
	RedisAddr    string
	RedisDB      int
	OutboxPrefix string
}

// Load reads configuration from environment variables:
//   - UNO_LOG_LEVEL (default "info")
//   - UNO_SEED (optional)
//   - UNO_RULES, e.g. "Decks=2;Must Play=true"
//   - REDIS_ADDR (optional, outbox disabled when empty)
//   - REDIS_DB (default 0)
//   - UNO_OUTBOX_PREFIX (default "uno")
func Load() (Config, error) {
	level, err := logrus.ParseLevel(getEnv("UNO_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("UNO_LOG_LEVEL: %w", err)
	}
	rules, err := ParseRules(os.Getenv("UNO_RULES"))
	if err != nil {
		return Config{}, fmt.Errorf("UNO_RULES: %w", err)
	}
	return Config{
		LogLevel:     level,
		Seed:         int64(getEnvInt("UNO_SEED", 0)),
		Rules:        rules,
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		RedisDB:      getEnvInt("REDIS_DB", 0),
		OutboxPrefix: getEnv("UNO_OUTBOX_PREFIX", "uno"),
	}, nil
}

// ParseRules turns "Name=value;Name=value" into values accepted by
// RuleSet.Update. Values are integers or true/false.
func ParseRules(s string) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, raw, ok := strings.Cut(pair, "=")
		name, raw = strings.TrimSpace(name), strings.TrimSpace(raw)
		if !ok || name == "" {
			return nil, fmt.Errorf("malformed rule %q", pair)
		}
		if b, err := strconv.ParseBool(raw); err == nil && !isDigits(raw) {
			out[name] = b
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("rule %q: value %q is not a number or boolean", name, raw)
		}
		out[name] = v
	}
	return out, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt parses an environment variable as an integer, else returns def.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
