package common

import (
	"strconv"
	"strings"
)

// ParsePositiveInt parses positive integers with fallback.
func ParsePositiveInt(value string, fallback int) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, false
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback, false
	}
	return parsed, true
}

// ParseOptionalBool parses query booleans; nil when absent or malformed.
func ParseOptionalBool(value string) *bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil
	}
	return &parsed
}

// IntPtr returns pointer helper for ints.
func IntPtr(v int) *int {
	return &v
}

// IntPtrValue returns value or zero.
func IntPtrValue(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
