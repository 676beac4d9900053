package entities

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrRCFileNotFound is returned by FindRCFile when no rc file exists.
var ErrRCFileNotFound = errors.New("rc file not found in default locations")

// FindRCFile searches for a generator rc file in standard locations and
// returns the first match.
func FindRCFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{"."}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	return findRCFileIn(locations)
}

func findRCFileIn(locations []string) (string, error) {
	patterns := []string{
		".scaffolderrc.yaml",
		".scaffolderrc.yml",
		"scaffolderrc.yaml",
		"scaffolderrc.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", ErrRCFileNotFound
}
