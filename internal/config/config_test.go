// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"UNO_LOG_LEVEL", "UNO_SEED", "UNO_RULES", "REDIS_ADDR", "REDIS_DB", "UNO_OUTBOX_PREFIX"} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Zero(t, cfg.Seed)
	assert.Empty(t, cfg.Rules)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, "uno", cfg.OutboxPrefix)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("UNO_LOG_LEVEL", "debug")
	t.Setenv("UNO_SEED", "42")
	t.Setenv("UNO_RULES", "Decks=2; Must Play=true")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("UNO_OUTBOX_PREFIX", "table9")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, map[string]interface{}{"Decks": 2, "Must Play": true}, cfg.Rules)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "table9", cfg.OutboxPrefix)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("UNO_LOG_LEVEL", "loud")
	_, err := Load()
	assert.ErrorContains(t, err, "UNO_LOG_LEVEL")

	t.Setenv("UNO_LOG_LEVEL", "")
	t.Setenv("UNO_RULES", "Decks")
	_, err = Load()
	assert.ErrorContains(t, err, "UNO_RULES")
}

func TestParseRules(t *testing.T) {
	got, err := ParseRules("Initial Cards=5;Callouts=0;Draws Skip=false;;")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"Initial Cards": 5,
		"Callouts":      0,
		"Draws Skip":    false,
	}, got)

	_, err = ParseRules("Decks=many")
	assert.Error(t, err)
	_, err = ParseRules("=3")
	assert.Error(t, err)
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("UNO_TEST_INT", "x")
	assert.Equal(t, 7, getEnvInt("UNO_TEST_INT", 7))
	t.Setenv("UNO_TEST_INT", "12")
	assert.Equal(t, 12, getEnvInt("UNO_TEST_INT", 7))
}
