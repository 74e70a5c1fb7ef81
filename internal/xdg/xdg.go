// Package xdg provides helpers to resolve XDG Base Directory paths for recbrowse.
// It falls back to ~/.config when XDG_CONFIG_HOME is unset and keeps the
// directory private, since it may hold a credential file.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "recbrowse"

// ConfigDir returns the XDG config directory for recbrowse.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/recbrowse when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
