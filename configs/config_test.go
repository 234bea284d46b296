package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, ":8888", cfg.AppPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
	assert.Contains(t, cfg.DSN(), "dbname=feed_db")
	assert.Empty(t, cfg.KafkaBrokers, "events are off unless brokers are configured")
}

func TestLoadConfig_PortForms(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	assert.Equal(t, ":9999", LoadConfig().AppPort)

	t.Setenv("APP_PORT", ":7777")
	assert.Equal(t, ":7777", LoadConfig().AppPort)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "feed_prod")

	cfg := LoadConfig()
	assert.Contains(t, cfg.DSN(), "host=db.internal")
	assert.Contains(t, cfg.DSN(), "dbname=feed_prod")
}
