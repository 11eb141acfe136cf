package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		APIBaseURL:            "https://api.bloodlink.example.com/v1",
		RequestTimeoutSeconds: 15,
		Auth: AuthConfig{
			AuthURL:        "https://auth.bloodlink.example.com/oauth/authorize",
			TokenURL:       "https://auth.bloodlink.example.com/oauth/token",
			ClientID:       "bloodlink-admin",
			PublishableKey: "pk_test_abc",
			TokenTemplate:  "default",
		},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	err := Validate(validConfig())
	assert.NoError(t, err)
}

func TestValidate_MissingAPIBaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.APIBaseURL = ""

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_InvalidURL(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.TokenURL = "not-a-valid-url"

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_MissingClientID(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.ClientID = ""

	err := Validate(cfg)
	assert.Error(t, err)
}

func TestLoadFromPath_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bloodlink.yaml")
	content := `
apiBaseURL: https://api.bloodlink.example.com/v1
requestTimeoutSeconds: 20
auth:
  authURL: https://auth.bloodlink.example.com/oauth/authorize
  tokenURL: https://auth.bloodlink.example.com/oauth/token
  clientID: bloodlink-admin
  publishableKey: pk_test_abc
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.bloodlink.example.com/v1", cfg.APIBaseURL)
	assert.Equal(t, 20*time.Second, cfg.RequestTimeout())
	assert.Equal(t, "bloodlink-admin", cfg.Auth.ClientID)
	assert.Equal(t, "default", cfg.Auth.TokenTemplate, "token template should default")
}

func TestLoadFromPath_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bloodlink.yaml")
	content := `
apiBaseURL: https://api.bloodlink.example.com/v1
auth:
  authURL: https://auth.bloodlink.example.com/oauth/authorize
  tokenURL: https://auth.bloodlink.example.com/oauth/token
  clientID: bloodlink-admin
  publishableKey: pk_from_file
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv(EnvAPIURL, "https://staging-api.bloodlink.example.com/v1")
	t.Setenv(EnvPublishableKey, "pk_from_env")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "https://staging-api.bloodlink.example.com/v1", cfg.APIBaseURL)
	assert.Equal(t, "pk_from_env", cfg.Auth.PublishableKey)
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bloodlink.yaml")
	require.NoError(t, os.WriteFile(path, []byte("apiBaseURL: [broken"), 0644))

	_, err := LoadFromPath(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
