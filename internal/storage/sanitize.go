package storage

import (
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename reduces an uploaded name to a filesystem-safe basename.
// Path components are stripped, anything outside [A-Za-z0-9._-] collapses
// to "_", and leading dots are removed so the result can never escape the
// target directory or hide itself. Returns "" when nothing usable remains.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	// Uploads from Windows clients can carry backslash-separated paths.
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	if name == "." || name == ".." || name == "/" {
		return ""
	}
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, ".")
	return name
}
