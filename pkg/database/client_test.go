package database

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edu-cockpit/cockpit/test/util"
)

// newTestClient wraps the shared test database in the production Client
// type so pool accessors and health checks run against a real pool.
func newTestClient(t *testing.T) *Client {
	entClient, db := util.SetupTestDatabase(t)
	return NewClientFromEnt(entClient, db)
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		Port:     5433,
		User:     "cockpit",
		Password: "s3cret",
		Database: "edu_cockpit",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=cockpit password=s3cret dbname=edu_cockpit sslmode=require",
		cfg.DSN())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE"} {
			t.Setenv(key, "")
		}

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "cockpit", cfg.User)
		assert.Equal(t, "edu_cockpit", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
		assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
		assert.Equal(t, 5*time.Minute, cfg.ConnMaxIdleTime)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DB_HOST", "pg.example")
		t.Setenv("DB_PORT", "6432")
		t.Setenv("DB_MAX_OPEN_CONNS", "25")
		t.Setenv("DB_CONN_MAX_LIFETIME_MINUTES", "10")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "pg.example", cfg.Host)
		assert.Equal(t, 6432, cfg.Port)
		assert.Equal(t, 25, cfg.MaxOpenConns)
		assert.Equal(t, 10*time.Minute, cfg.ConnMaxLifetime)
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Setenv("DB_PORT", "not-a-port")
		_, err := LoadConfigFromEnv()
		assert.ErrorContains(t, err, "DB_PORT")

		t.Setenv("DB_PORT", "5432")
		t.Setenv("DB_CONN_MAX_IDLE_MINUTES", "soon")
		_, err = LoadConfigFromEnv()
		assert.ErrorContains(t, err, "DB_CONN_MAX_IDLE_MINUTES")
	})
}

func TestHasEmbeddedMigrations(t *testing.T) {
	has, err := hasEmbeddedMigrations()
	require.NoError(t, err)
	assert.True(t, has, "migration files must be embedded in the binary")
}

func TestHealthStatus_JSONMilliseconds(t *testing.T) {
	payload, err := json.Marshal(HealthStatus{Status: "healthy", PingMillis: 12})
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"response_time_ms":12`)
	assert.Contains(t, string(payload), `"status":"healthy"`)
}
