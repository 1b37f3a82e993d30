package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("STORAGE_DRIVER", "s3")
	t.Setenv("S3_REGION", "eu-west-1")
	t.Setenv("LEDGER_NETWORK_ID", "mainnet")
	t.Setenv("NOTIFICATION_DWELL_SEC", "3")
	t.Setenv("CONTENT_LINK_TTL_SEC", "60")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Storage.MinIO.UseSSL)
	assert.Equal(t, "s3", cfg.Storage.Driver)
	assert.Equal(t, "eu-west-1", cfg.Storage.S3.Region)
	assert.Equal(t, "https://explorer.mainnet.near.org/accounts", cfg.Ledger.ExplorerURL)
	assert.Equal(t, 3*time.Second, cfg.Canvas.NotificationDwell)
	assert.Equal(t, time.Minute, cfg.Storage.LinkTTL)
}

func TestLoad_CanvasDefaults(t *testing.T) {
	for _, k := range []string{"CANVAS_ID", "CANVAS_WIDTH", "CANVAS_HEIGHT", "IPFS_GATEWAY_URL", "NOTIFICATION_DWELL_SEC", "MAX_TILE_PIXELS"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, 1, cfg.Canvas.ID)
	assert.Equal(t, 1240, cfg.Canvas.Width)
	assert.Equal(t, 920, cfg.Canvas.Height)
	assert.Equal(t, 4096*4096, cfg.Canvas.MaxPixels)
	assert.Equal(t, "https://ipfs.infura.io/ipfs/", cfg.Canvas.GatewayURL)
	assert.Equal(t, 11*time.Second, cfg.Canvas.NotificationDwell)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
