package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// MaxFilenameLength is the maximum length for a filename
const MaxFilenameLength = 200

// invalidCharsRegex matches invalid filename characters
var invalidCharsRegex = regexp.MustCompile(`[<>:"|?*\\/]`)

// multipleDashesRegex matches runs of separator characters
var multipleDashesRegex = regexp.MustCompile(`[-_\s]+`)

// SanitizeFilename sanitizes a string for use as a filename. Plugin names
// and manifest ids come from plugin authors and may contain path separators
// or other hostile characters.
func SanitizeFilename(name string) string {
	name = invalidCharsRegex.ReplaceAllString(name, "-")
	name = multipleDashesRegex.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-. ")

	if len(name) > MaxFilenameLength {
		name = name[:MaxFilenameLength]
	}

	if name == "" {
		name = "untitled"
	}

	return name
}

// EnsureDir ensures the parent directory of path exists, creating it if necessary
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// WriteJSONFile marshals value with stable indentation and writes it to path.
// Identical inputs always produce identical bytes, which keeps rewrites
// idempotent.
func WriteJSONFile(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}

	if err := EnsureDir(path); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	return path
}
