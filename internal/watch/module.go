package watch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ErrNoModule is returned when no go.mod encloses the start directory.
var ErrNoModule = errors.New("no go.mod found")

// FindModuleRoot walks up from dir to the directory holding go.mod and
// returns it together with the declared module path.
func FindModuleRoot(dir string) (root, modulePath string, err error) {
	dir, err = filepath.Abs(dir)
	if err != nil {
		return "", "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")

		data, err := os.ReadFile(goModPath)
		if err == nil {
			parsed, err := modfile.Parse(goModPath, data, nil)
			if err != nil {
				return "", "", fmt.Errorf("parsing %s: %w", goModPath, err)
			}

			if parsed.Module == nil {
				return "", "", fmt.Errorf("%s declares no module", goModPath)
			}

			return dir, parsed.Module.Mod.Path, nil
		}

		if !errors.Is(err, os.ErrNotExist) {
			return "", "", err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", ErrNoModule
		}

		dir = parent
	}
}
