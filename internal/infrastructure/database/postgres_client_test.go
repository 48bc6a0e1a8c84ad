package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresOptionsFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL"} {
			t.Setenv(k, "")
		}
		opts := PostgresOptionsFromEnv()
		assert.Equal(t, DefaultPostgresHost, opts.Host)
		assert.Equal(t, DefaultPostgresPort, opts.Port)
		assert.Equal(t, DefaultPostgresUser, opts.User)
		assert.Equal(t, DefaultPostgresDB, opts.DBName)
		assert.False(t, opts.SSLEnabled)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DB_HOST", "db")
		t.Setenv("DB_PORT", "6543")
		t.Setenv("DB_SSL", "true")
		opts := PostgresOptionsFromEnv()
		assert.Equal(t, "db", opts.Host)
		assert.Equal(t, 6543, opts.Port)
		assert.True(t, opts.SSLEnabled)
	})

	t.Run("bad port falls back", func(t *testing.T) {
		t.Setenv("DB_PORT", "not-a-port")
		assert.Equal(t, DefaultPostgresPort, PostgresOptionsFromEnv().Port)
	})
}

func TestNewDynamoDBConfigFromEnv(t *testing.T) {
	t.Setenv("AWS_REGION", "sa-east-1")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	cfg, err := NewDynamoDBConfigFromEnv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, creds.AccessKeyID)
}
