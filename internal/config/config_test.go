package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		check   func(t *testing.T, cfg *Config)
		wantErr string
	}{
		{
			name: "defaults",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ":8080", cfg.Server.Addr())
				assert.Equal(t, "release", cfg.Server.Mode)
				assert.Equal(t, "./static", cfg.Server.StaticDir)
				assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
				assert.Equal(t, "https://api.github.com", cfg.GitHub.APIURL)
				assert.Empty(t, cfg.GitHub.Token)
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"PORT":             "9000",
				"HOST":             "127.0.0.1",
				"GITHUB_API_URL":   "http://localhost:3000",
				"GITHUB_TOKEN":     "***",
				"SHUTDOWN_TIMEOUT": "3",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr())
				assert.Equal(t, "http://localhost:3000", cfg.GitHub.APIURL)
				assert.Equal(t, "***", cfg.GitHub.Token)
				assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
			},
		},
		{
			name: "bad timeout falls back",
			env:  map[string]string{"SHUTDOWN_TIMEOUT": "soon"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
			},
		},
		{
			name:    "bad port",
			env:     map[string]string{"PORT": "http"},
			wantErr: `configuration validation failed: PORT must be a number between 0 and 65535, got "http"`,
		},
		{
			name:    "relative api url",
			env:     map[string]string{"GITHUB_API_URL": "api.github.com"},
			wantErr: `configuration validation failed: GITHUB_API_URL must be an absolute URL, got "api.github.com"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"PORT", "HOST", "GIN_MODE", "STATIC_DIR", "SHUTDOWN_TIMEOUT", "GITHUB_API_URL", "GITHUB_TOKEN"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
