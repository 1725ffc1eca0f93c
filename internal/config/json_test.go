package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")

	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"password_hash_cost": 12,
			"version": "2.0.0"
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s",
			"cors_allowed_origins": ["http://ui.test"]
		},
		"storage": {
			"db": { "dsn": "sqlite://jobs.db" }
		},
		"client": {
			"server_address": "http://localhost:8080",
			"request_timeout": 1000000000,
			"token": "t"
		}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)
	assert.Equal(t, "2.0.0", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://ui.test"}, cfg.Server.CORSAllowedOrigins)

	assert.Equal(t, "sqlite://jobs.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "http://localhost:8080", cfg.Client.ServerAddress)
	assert.Equal(t, time.Second, cfg.Client.RequestTimeout)
	assert.Equal(t, "t", cfg.Client.Token)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		body    string
		missing bool
	}{
		{name: "missing file", missing: true},
		{name: "malformed json", body: "{not valid json"},
		{name: "bad duration", body: `{"app":{"token_duration":"a week"}}`},
		{name: "duration of wrong type", body: `{"app":{"token_duration":true}}`},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filepath.Join(dir, "cfg"+string(rune('a'+i))+".json")
			if !tt.missing {
				require.NoError(t, os.WriteFile(p, []byte(tt.body), 0o600))
			}

			cfg, err := parseJSON(p)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	out, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(out))
}
