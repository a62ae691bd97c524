package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName marks a project-local configuration.
const ConfigFileName = ".haste.yaml"

// FindConfig looks upwards from startDir for a .haste.yaml file and returns
// its absolute path.
func FindConfig(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if isFile(filepath.Join(dir, ConfigFileName)) {
			return filepath.Join(dir, ConfigFileName), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%s not found", ConfigFileName)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
