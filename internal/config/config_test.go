package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsAndEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("SMTP_USE_TLS", "true")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 7, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.SMTP.UseTLS)
	assert.Equal(t, "sitehub", cfg.Database.DBName)
	assert.Equal(t, "https://admission.hed.gkp.pk/", cfg.Site.ApplicationRedirectURL)
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  port: \"7000\"\n  timezone: UTC\nsite:\n  name: Test College\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "Test College", cfg.Site.Name)
	assert.Equal(t, "UTC", cfg.Location().String())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing jwt secret", env: map[string]string{"JWT_SECRET": ""}},
		{name: "bad timezone", env: map[string]string{"JWT_SECRET": "x", "SERVER_TIMEZONE": "Mars/Olympus"}},
		{name: "bad expiration", env: map[string]string{"JWT_SECRET": "x", "JWT_ACCESS_TOKEN_EXPIRATION": "soon"}},
		{name: "bad integer", env: map[string]string{"JWT_SECRET": "x", "DB_MAX_OPEN_CONNS": "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
			assert.Error(t, err)
		})
	}
}
