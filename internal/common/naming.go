package common

import (
	"strings"
	"unicode"
)

// GeneratedFileSuffix is the filename suffix of every companion file the
// generator writes. The loader type-checks files with this suffix by
// signature only, so a stale companion never breaks the next pass.
const GeneratedFileSuffix = ".bundleinit.go"

// IsGeneratedFile reports whether filename is a generated companion file.
func IsGeneratedFile(filename string) bool {
	return strings.HasSuffix(filename, GeneratedFileSuffix)
}

// UpperFirst returns s with its first rune upper-cased.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
