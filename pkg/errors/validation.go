package errors

import (
	"strings"
	"unicode"
)

// ValidatePath validates a user-supplied input file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
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

// ValidateAddr validates a listen address of the form "host:port" or ":port".
func ValidateAddr(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidConfig, "listen address cannot be empty")
	}
	i := strings.LastIndex(addr, ":")
	if i < 0 || i == len(addr)-1 {
		return New(ErrCodeInvalidConfig, "listen address must include a port: %q", addr)
	}
	for _, r := range addr[i+1:] {
		if r < '0' || r > '9' {
			return New(ErrCodeInvalidConfig, "invalid port in listen address: %q", addr)
		}
	}
	return nil
}

// ValidateOneOf checks that value is one of the allowed choices.
// The returned error uses code and names the offending field.
func ValidateOneOf(code Code, field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return New(code, "invalid %s: %q (must be one of %s)", field, value, strings.Join(allowed, ", "))
}
