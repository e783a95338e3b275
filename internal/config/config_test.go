package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerco/ore/internal/constants"
	"github.com/eigerco/ore/pkg/log"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		check   func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name:    "default config",
			envVars: map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "ore-ledger", cfg.DBPath)
				assert.False(t, cfg.InMemory)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.True(t, cfg.GenesisAdmin.IsZero())
			},
		},
		{
			name: "custom config",
			envVars: map[string]string{
				"ORE_IN_MEMORY":     "true",
				"ORE_LOG_LEVEL":     "debug",
				"ORE_LOG_FORMAT":    "json",
				"ORE_GENESIS_ADMIN": constants.ProgramID.String(),
			},
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.InMemory)
				assert.Equal(t, constants.ProgramID, cfg.GenesisAdmin)
				opts := cfg.LogOptions()
				assert.Equal(t, zerolog.DebugLevel, opts.LogLevel)
				assert.Equal(t, log.JSONLogger, opts.Type)
			},
		},
		{
			name:    "invalid log level",
			envVars: map[string]string{"ORE_LOG_LEVEL": "loud"},
			wantErr: true,
		},
		{
			name:    "invalid log format",
			envVars: map[string]string{"ORE_LOG_FORMAT": "xml"},
			wantErr: true,
		},
		{
			name:    "invalid admin",
			envVars: map[string]string{"ORE_GENESIS_ADMIN": "not-base58!"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"ORE_DB_PATH", "ORE_IN_MEMORY", "ORE_LOG_LEVEL", "ORE_LOG_FORMAT", "ORE_GENESIS_ADMIN"} {
				t.Setenv(key, "")
			}
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := Load("")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("ORE_LOG_LEVEL", "warn")
	t.Setenv("ORE_DB_PATH", "")
	require.NoError(t, os.Unsetenv("ORE_DB_PATH"))
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ORE_DB_PATH=/var/lib/ore\nORE_LOG_LEVEL=debug\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/ore", cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadMissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
