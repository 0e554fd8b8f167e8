package gen

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/zhouyinchun6/bundleWrite-processor/internal/diagnostic"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ArtifactWriter persists generated files.
type ArtifactWriter interface {
	Write(file GeneratedFile) error
}

// FileWriter writes files into their package directory on disk.
// Files whose content did not change are left untouched.
type FileWriter struct{}

// Write implements ArtifactWriter.
func (FileWriter) Write(file GeneratedFile) error {
	if file.Dir == "" {
		return fmt.Errorf("no output directory for %s", file.Owner)
	}

	if existing, err := os.ReadFile(file.Path()); err == nil && bytes.Equal(existing, file.Content) {
		return nil
	}

	if err := os.MkdirAll(file.Dir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(file.Path(), file.Content, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	return nil
}

// MemoryWriter keeps files in memory, keyed by their full path.
type MemoryWriter struct {
	mu    sync.Mutex
	files map[string][]byte
}

// NewMemoryWriter creates an empty MemoryWriter.
func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{files: make(map[string][]byte)}
}

// Write implements ArtifactWriter.
func (w *MemoryWriter) Write(file GeneratedFile) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.files[file.Path()] = bytes.Clone(file.Content)

	return nil
}

// Get returns the content stored for path.
func (w *MemoryWriter) Get(path string) ([]byte, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	content, ok := w.files[path]

	return content, ok
}

// Paths returns the stored paths in sorted order.
func (w *MemoryWriter) Paths() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	paths := make([]string, 0, len(w.files))
	for p := range w.files {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	return paths
}

// WriteFiles hands every file to w. A failed write is recorded in diags and
// logged, and the remaining files are still written. Nothing is retried.
// It returns the number of files written.
func WriteFiles(w ArtifactWriter, files []GeneratedFile, diags *diagnostic.Diagnostics, logger *slog.Logger) int {
	if logger == nil {
		logger = slog.Default()
	}

	written := 0

	for _, file := range files {
		if err := w.Write(file); err != nil {
			diags.Errorf(diagnostic.CodeWriteFailed, file.Owner.String(), "", "%v", err)
			logger.Error("failed to write generated file", "file", file.Path(), "owner", file.Owner, "error", err)

			continue
		}

		logger.Info("generated", "file", file.Path())
		written++
	}

	return written
}
