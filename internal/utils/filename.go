package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

// unsafeFilenameChars matches every character that is not allowed to appear
// in a stored upload filename. Everything outside [A-Za-z0-9_.-] is replaced.
var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename reduces an arbitrary client-supplied filename to a form
// that is safe to join onto the upload directory.
//
// It strips any directory components (both / and \ separators), replaces
// whitespace and all characters outside [A-Za-z0-9_.-] with underscores, and
// collapses leading dots so the result can never traverse upwards or hide as
// a dotfile.
//
// Returns the empty string when nothing usable remains, e.g. for inputs
// consisting entirely of separators or dots. Callers must treat an empty
// result as "no file".
func SanitizeFilename(name string) string {
	// Drop directory components regardless of the client's path separator.
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(filepath.Clean("/" + name))

	name = strings.TrimSpace(name)
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, ".")

	if name == "" || name == "/" || strings.Trim(name, "_") == "" {
		return ""
	}

	return name
}
