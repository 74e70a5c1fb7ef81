// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; database credentials live in the
// credential file and, optionally, the OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"recbrowse/cli/internal/xdg"
)

// Environment variables consulted when resolving the credential file.
const (
	CredentialsEnv = "RECBROWSE_CREDENTIALS"
)

// Defaults applied when the config file or a field is missing.
const (
	DefaultLogLevel     = "info"
	DefaultTable        = "customers"
	DefaultFetchTimeout = 30 * time.Second
	credentialsFileName = "credentials.ini"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	LogLevel        string `json:"log_level"`
	Table           string `json:"table"`
	FetchTimeout    string `json:"fetch_timeout"`
	CredentialsPath string `json:"credentials_path,omitempty"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		LogLevel:     DefaultLogLevel,
		Table:        DefaultTable,
		FetchTimeout: DefaultFetchTimeout.String(),
	}
}

// Load reads configuration; missing file returns defaults. Fields left empty
// in the file also take their defaults.
func Load() (Config, error) {
	c := Default()
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = DefaultLogLevel
	}
	if strings.TrimSpace(c.Table) == "" {
		c.Table = DefaultTable
	}
	if strings.TrimSpace(c.FetchTimeout) == "" {
		c.FetchTimeout = DefaultFetchTimeout.String()
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// Timeout parses FetchTimeout. Invalid or non-positive values yield the default.
func (c Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil || d <= 0 {
		return DefaultFetchTimeout
	}
	return d
}

// ResolveCredentialsPath picks the credential file location. Precedence:
// explicit flag value, RECBROWSE_CREDENTIALS, credentials_path from the
// config file, then credentials.ini in the XDG config dir.
func (c Config) ResolveCredentialsPath(flagValue string) (string, error) {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v, nil
	}
	if v := strings.TrimSpace(os.Getenv(CredentialsEnv)); v != "" {
		return v, nil
	}
	if v := strings.TrimSpace(c.CredentialsPath); v != "" {
		return v, nil
	}
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, credentialsFileName), nil
}
