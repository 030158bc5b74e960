package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/did-nostr/pkg/keys"
)

// Commitment schemes accepted in the config
const (
	CommitmentHash        = "hash"
	CommitmentPlaceholder = "placeholder"
)

// Config holds all configuration for the did-nostr CLI
type Config struct {
	Relays     []string   `yaml:"relays"`
	Keys       KeysConfig `yaml:"keys"`
	Commitment string     `yaml:"commitment"`
	LogLevel   string     `yaml:"log_level"`
}

// KeysConfig contains the HD derivation paths
type KeysConfig struct {
	SigningPath  string `yaml:"signing_path"`
	UpdatePath   string `yaml:"update_path"`
	MnemonicSize int    `yaml:"mnemonic_words"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Relays: []string{
			"wss://relay.damus.io",
			"wss://relay.snort.social",
			"wss://brb.io",
		},
		Keys: KeysConfig{
			SigningPath:  keys.SigningKeyPath,
			UpdatePath:   keys.UpdateKeyPath,
			MnemonicSize: 12,
		},
		Commitment: CommitmentHash,
		LogLevel:   "info",
	}
}

// DefaultConfigPath returns ~/.did-nostr/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".did-nostr", "config.yaml")
}

// LoadConfig loads configuration from file, then applies environment variables.
// A missing file at the default path is not an error; a missing file that
// was asked for explicitly is.
func LoadConfig(cfgFile string) (*Config, error) {
	cfg := DefaultConfig()

	path := cfgFile
	if path == "" {
		path = DefaultConfigPath()
	}

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		case os.IsNotExist(err) && cfgFile == "":
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Override with environment variables
	if val := os.Getenv("DIDNOSTR_RELAYS"); val != "" {
		cfg.Relays = splitList(val)
	}
	if val := os.Getenv("DIDNOSTR_COMMITMENT"); val != "" {
		cfg.Commitment = val
	}
	if val := os.Getenv("DIDNOSTR_LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that cannot be checked at parse time
func (c *Config) Validate() error {
	switch c.Commitment {
	case CommitmentHash, CommitmentPlaceholder:
	default:
		return fmt.Errorf("unknown commitment scheme: %q", c.Commitment)
	}

	if _, err := keys.ParsePath(c.Keys.SigningPath); err != nil {
		return fmt.Errorf("invalid signing path: %w", err)
	}
	if _, err := keys.ParsePath(c.Keys.UpdatePath); err != nil {
		return fmt.Errorf("invalid update path: %w", err)
	}
	if c.Keys.SigningPath == c.Keys.UpdatePath {
		return fmt.Errorf("signing and update paths must differ")
	}

	if _, err := keys.MnemonicBits(c.Keys.MnemonicSize); err != nil {
		return err
	}

	return nil
}

func splitList(val string) []string {
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
