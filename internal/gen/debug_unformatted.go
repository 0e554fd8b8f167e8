package gen

import (
	"os"
	"path/filepath"
)

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. This is best-effort and should never make generation fail
// harder.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}
	// Not a .go file: the sidecar must never end up in the package build.
	p := filepath.Join(outDir, filename+".unformatted")

	return os.WriteFile(p, content, filePerm)
}
