package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// profileNameRegex matches profile and theme identifiers.
var profileNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidateProfileName validates a deployment profile name.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - Lowercase letters, digits, dash and underscore only
//   - Maximum length of 64 characters
func ValidateProfileName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidProfile, "profile name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidProfile, "profile name too long (max 64 characters)")
	}
	if !profileNameRegex.MatchString(name) {
		return New(ErrCodeInvalidProfile, "invalid profile name: %q", name)
	}
	return nil
}

// ValidateThemeID validates a background theme identifier used in configuration.
func ValidateThemeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidConfig, "theme id cannot be empty")
	}
	if !profileNameRegex.MatchString(id) {
		return New(ErrCodeInvalidConfig, "invalid theme id: %q", id)
	}
	return nil
}

// ValidateRange checks that a numeric configuration field is finite and within [lo, hi].
func ValidateRange(field string, v, lo, hi float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfig, "%s must be a finite number", field)
	}
	if v < lo || v > hi {
		return New(ErrCodeInvalidConfig, "%s out of range: %g (must be between %g and %g)", field, v, lo, hi)
	}
	return nil
}

// ValidateCacheControl validates a Cache-Control header value.
// It rejects empty values and anything that could split the header.
func ValidateCacheControl(v string) error {
	if strings.TrimSpace(v) == "" {
		return New(ErrCodeInvalidConfig, "cache_control cannot be empty")
	}
	for _, r := range v {
		if r == '\r' || r == '\n' || unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "cache_control contains invalid control characters")
		}
	}
	return nil
}

// ValidateConfigPath validates a configuration file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateConfigPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidConfig, "config path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidConfig, "config path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "config path contains invalid characters")
		}
	}
	return nil
}
