package cloud

import (
	"fmt"
	"net/url"
	"strings"
)

// NonEmpty trims value and rejects empty strings.
func NonEmpty(name, value string) (string, error) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return "", fmt.Errorf("%s must be a non-empty string", name)
	}
	return cleaned, nil
}

// IntInRange rejects values outside [minimum, maximum].
func IntInRange(name string, value, minimum, maximum int) (int, error) {
	if value < minimum || value > maximum {
		return 0, fmt.Errorf("%s must be between %d and %d", name, minimum, maximum)
	}
	return value, nil
}

// ValidURL rejects anything that is not an absolute http or https URL.
func ValidURL(value string) (string, error) {
	cleaned, err := NonEmpty("url", value)
	if err != nil {
		return "", err
	}
	parsed, err := url.Parse(cleaned)
	if err != nil {
		return "", fmt.Errorf("url is not valid: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("url must start with http:// or https://")
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("url must include a host")
	}
	return cleaned, nil
}

// MaybeURL validates an optional URL; empty input passes through unchanged.
func MaybeURL(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	return ValidURL(value)
}

// MaybeStripped normalizes an optional string. Whitespace-only input
// collapses to empty.
func MaybeStripped(value string) string {
	return strings.TrimSpace(value)
}

// OneOf rejects values outside the allowed set.
func OneOf(name, value string, allowed []string) (string, error) {
	for _, candidate := range allowed {
		if value == candidate {
			return value, nil
		}
	}
	return "", fmt.Errorf("%s must be one of: %s", name, strings.Join(allowed, ", "))
}
