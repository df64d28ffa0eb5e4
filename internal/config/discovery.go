package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoConfigFile is returned when no recognized configuration file exists
// in the searched directory.
var ErrNoConfigFile = errors.New("no dev-commands.yaml file found")

// ConfigFileNames lists the recognized configuration file names, probed in
// order. The first existing file wins.
var ConfigFileNames = []string{
	".dev-cheat.yaml",
	".dev-cheat.yml",
	"dev-commands.yaml",
	"dev-commands.yml",
}

// Find returns the path of the first recognized configuration file in dir.
// An empty dir means the current working directory.
func Find(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w in %s", ErrNoConfigFile, dir)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
