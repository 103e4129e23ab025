package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// maxPathLength bounds paths accepted on the command line.
const maxPathLength = 4096

// ValidateOutputPath validates a file path given for rendered output.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must name a file, not a directory (no trailing separator)
//
// The special path "-" (standard output) is accepted.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	if path == "-" {
		return nil
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path must name a file: %q", path)
	}

	return nil
}

// sceneFormats maps accepted scene file extensions to their format name.
var sceneFormats = map[string]string{
	".toml": "toml",
	".json": "json",
}

// SceneFormat returns the scene format ("toml" or "json") for a file name,
// judged by its extension (case-insensitive).
func SceneFormat(filename string) (string, error) {
	if filename == "" {
		return "", New(ErrCodeInvalidInput, "scene filename cannot be empty")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	format, ok := sceneFormats[ext]
	if !ok {
		return "", New(ErrCodeInvalidFormat, "unsupported scene file %q (must be .toml or .json)", filepath.Base(filename))
	}
	return format, nil
}
