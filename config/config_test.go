package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "local", cfg.Blob.Backend)
	assert.Equal(t, "91", cfg.Intake.CountryCode)
	assert.Equal(t, 12*time.Hour, cfg.JWT.AccessExpiry)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "http://localhost:8080/admin", cfg.Server.SignInURL())
}

func TestServerConfig_SignInURL(t *testing.T) {
	assert.Equal(t, "https://reddy.example/admin", ServerConfig{PublicURL: "https://reddy.example/"}.SignInURL())
	assert.Equal(t, "/admin", ServerConfig{}.SignInURL())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("REDDY_SERVER_PORT", "9090")
	t.Setenv("REDDY_DATABASE_DRIVER", "sqlite")
	t.Setenv("REDDY_JWT_ACCESS_EXPIRY", "30m")
	t.Setenv("REDDY_BLOB_BACKEND", "gcs")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, "gcs", cfg.Blob.Backend)
}

func TestIntakeConfig_Location(t *testing.T) {
	assert.Equal(t, "Asia/Kolkata", IntakeConfig{Timezone: "Asia/Kolkata"}.Location().String())
	assert.Equal(t, time.UTC, IntakeConfig{Timezone: "Not/AZone"}.Location())
}

func TestLoadNumberService(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("MONGO_URI", "mongodb://db:27017")

	cfg := LoadNumberService()
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "s3cret", cfg.AdminPassword)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "reddy", cfg.MongoDatabase)
}
