package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Equal(t, "backoffice.db", cfg.SQLitePath)
	assert.Equal(t, "./uploads", cfg.UploadDir)
	assert.Equal(t, PolicyAllow, cfg.ReferencePolicy)
	assert.False(t, cfg.AuthRequired)
	assert.Equal(t, "aini:12345,john:password,jane:abc123", cfg.AuthCredentials)
	assert.Equal(t, 24*time.Hour, cfg.AuthTokenTTL)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", " SQLite ")
	t.Setenv("REFERENCE_POLICY", "Restrict")
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("AUTH_TOKEN_TTL", "90m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, PolicyRestrict, cfg.ReferencePolicy)
	assert.True(t, cfg.AuthRequired)
	assert.Equal(t, 90*time.Minute, cfg.AuthTokenTTL)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	cases := map[string]map[string]string{
		"driver":   {"STORE_DRIVER": "mongo"},
		"policy":   {"REFERENCE_POLICY": "cascade"},
		"ttl":      {"AUTH_TOKEN_TTL": "0s"},
		"bool":     {"AUTH_REQUIRED": "maybe"},
		"duration": {"AUTH_TOKEN_TTL": "tomorrow"},
	}
	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range vars {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}
