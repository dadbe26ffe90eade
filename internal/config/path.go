package config

import (
	"os"
	"path/filepath"
)

// DefaultPath returns ~/.config/folio/site.yaml (or a cwd fallback).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		return filepath.Join(home, ".config", "folio", "site.yaml")
	}
	cwd, _ := os.Getwd()
	return filepath.Join(cwd, "folio-site.yaml")
}
