// Package config reads per-user defaults for the floppy tools, such as the
// media type to create.
package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Floppy returns the configuration directory of the floppy tools.
//
// Typically ~/.config/floppy on Linux
// Typically ~/Library/Application\ Support/floppy on macOS/Darwin
func Floppy() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userConfigDir, "floppy"), nil
}

// ReadFile returns the whitespace-trimmed contents of configBaseName in the
// configuration directory.
func ReadFile(configBaseName string) (string, error) {
	dir, err := Floppy()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(filepath.Join(dir, configBaseName))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// fallbackMedia is used when media.txt does not exist.
const fallbackMedia = "720k"

// DefaultMedia returns the media type configured in media.txt, e.g. "360k"
// or "0xF8". The value is parsed by the caller.
func DefaultMedia() string {
	m, err := ReadFile("media.txt")
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("reading media.txt: %v", err)
		}
		return fallbackMedia
	}
	if m == "" {
		return fallbackMedia
	}
	return m
}
