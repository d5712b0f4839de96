package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxTypeKeyLength bounds reuse identifiers; they are map keys, not content.
const maxTypeKeyLength = 128

// ValidateTypeKey validates a cell type key used for pool registration.
//
// Rules:
//   - No empty keys
//   - No control characters or surrounding whitespace
//   - Maximum length of 128 characters
func ValidateTypeKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "type key cannot be empty")
	}

	if len(key) > maxTypeKeyLength {
		return New(ErrCodeInvalidInput, "type key too long (max %d characters)", maxTypeKeyLength)
	}

	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "type key contains invalid control characters")
		}
	}

	if strings.TrimSpace(key) != key {
		return New(ErrCodeInvalidInput, "type key has leading or trailing whitespace: %q", key)
	}

	return nil
}

// ValidateFinite rejects NaN and infinite values for the named quantity.
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number, got %v", name, v)
	}
	return nil
}

// ValidateNonNegative rejects values that are negative or not finite.
func ValidateNonNegative(name string, v float64) error {
	if err := ValidateFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s cannot be negative, got %v", name, v)
	}
	return nil
}

// ValidateItemSize validates a size returned by a delegate for the item at index.
// Sizes must be finite and non-negative in both dimensions.
func ValidateItemSize(index int, w, h float64) error {
	for _, v := range [...]float64{w, h} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return New(ErrCodeInvalidSize, "item %d has invalid size %vx%v", index, w, h)
		}
	}
	return nil
}

// ValidateSpacing validates the inter-item spacing of a layout.
func ValidateSpacing(spacing float64) error {
	if err := ValidateNonNegative("spacing", spacing); err != nil {
		return Wrap(ErrCodeInvalidConfig, err, "invalid spacing")
	}
	return nil
}

// ValidateContentExtent validates the size of the virtual coordinate space.
// It must be strictly positive so recentering has room to work.
func ValidateContentExtent(extent float64) error {
	if err := ValidateFinite("content extent", extent); err != nil {
		return Wrap(ErrCodeInvalidConfig, err, "invalid content extent")
	}
	if extent <= 0 {
		return New(ErrCodeInvalidConfig, "content extent must be positive, got %v", extent)
	}
	return nil
}

// ValidatePath validates a scenario or output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
