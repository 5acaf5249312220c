package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("NOTIFY_WORKERS", "")

	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTTTL)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, 2, cfg.NotifyWorkers)
	assert.Equal(t, int64(5), cfg.MaxUploadMB)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("NOTIFY_WORKERS", "4")
	t.Setenv("ALLOW_ORIGINS", "https://a.example,https://b.example")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 4, cfg.NotifyWorkers)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowOrigins)
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("NOTIFY_QUEUE", "lots")
	t.Setenv("S3_PRESIGN_TTL", "-5m")

	cfg := Load()

	assert.Equal(t, 256, cfg.NotifyQueue)
	assert.Equal(t, 24*time.Hour, cfg.S3PresignTTL)
}
