package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/did-nostr/pkg/keys"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, keys.SigningKeyPath, cfg.Keys.SigningPath)
	assert.Equal(t, keys.UpdateKeyPath, cfg.Keys.UpdatePath)
	assert.Equal(t, CommitmentHash, cfg.Commitment)
	assert.Len(t, cfg.Relays, 3)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := writeConfig(t, `
relays:
  - wss://nos.lol
commitment: placeholder
log_level: debug
keys:
  mnemonic_words: 24
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"wss://nos.lol"}, cfg.Relays)
	assert.Equal(t, CommitmentPlaceholder, cfg.Commitment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 24, cfg.Keys.MnemonicSize)
	// Unset keys keep their defaults
	assert.Equal(t, keys.SigningKeyPath, cfg.Keys.SigningPath)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, "commitment: hash\n")
	t.Setenv("DIDNOSTR_RELAYS", "wss://a, wss://b,,")
	t.Setenv("DIDNOSTR_COMMITMENT", "placeholder")
	t.Setenv("DIDNOSTR_LOG_LEVEL", "warn")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"wss://a", "wss://b"}, cfg.Relays)
	assert.Equal(t, CommitmentPlaceholder, cfg.Commitment)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":       "relays: [",
		"bad commitment": "commitment: sha3\n",
		"bad path":       "keys:\n  signing_path: 44/0\n",
		"same paths":     "keys:\n  update_path: \"m/44'/1237'/0'/0/0'\"\n",
		"bad word count": "keys:\n  mnemonic_words: 11\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
