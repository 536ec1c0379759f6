package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// MaxItems bounds the number of buttons accepted in a single render request.
const MaxItems = 1000

// ValidateViewport checks that a viewport is finite and non-negative.
// A zero-sized viewport is valid and yields zero-sized buttons.
func ValidateViewport(width, height float64) error {
	for _, v := range []float64{width, height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidViewport, "viewport dimensions must be finite")
		}
		if v < 0 {
			return New(ErrCodeInvalidViewport, "viewport dimensions cannot be negative (got %gx%g)", width, height)
		}
	}
	return nil
}

// ValidateItemCount rejects requests with an unreasonable number of buttons.
func ValidateItemCount(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "item count cannot be negative")
	}
	if n > MaxItems {
		return New(ErrCodeInvalidInput, "too many items (max %d)", MaxItems)
	}
	return nil
}

// ValidateItemID validates a button identifier used in selection and drag requests.
func ValidateItemID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "item id cannot be empty")
	}
	if len(id) > 256 {
		return New(ErrCodeInvalidInput, "item id too long (max 256 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "item id contains invalid control characters")
		}
	}
	return nil
}

// maxPathLength bounds a file reference inside a strip file.
const maxPathLength = 500

// ValidatePath checks a file reference stored in a strip file, such as its
// settings path. References must stay inside the strip's directory: they
// are relative, use forward slashes and never climb out with "..".
func ValidatePath(path string) error {
	switch {
	case path == "":
		return New(ErrCodeInvalidPath, "path cannot be empty")
	case len(path) > maxPathLength:
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	case strings.ContainsFunc(path, unicode.IsControl):
		return New(ErrCodeInvalidPath, "path contains control characters")
	case strings.Contains(path, "\\"):
		return New(ErrCodeInvalidPath, "path %q must use forward slashes", path)
	case !filepath.IsLocal(path):
		return New(ErrCodeInvalidPath, "path %q must be relative to the strip file", path)
	}
	return nil
}
