package identity

import (
	"errors"
	"regexp"
	"strings"
)

// User identifiers are restricted to a small charset so they can double as
// map keys in the ledger document and as query parameters without escaping.
const (
	MaxLen = 40
	MinLen = 3

	// DefaultUserID is substituted when lenient normalization empties the input.
	DefaultUserID = "default"
)

var (
	ErrInvalidIdentifier = errors.New("userId must be 3-40 chars: a-z, 0-9, _, -")

	validPattern = regexp.MustCompile(`^[a-z0-9_-]{3,40}$`)
	stripPattern = regexp.MustCompile(`[^a-z0-9_-]`)
)

// Normalize coerces any input into a valid identifier: trims, lower-cases,
// strips disallowed characters, truncates to MaxLen and falls back to
// DefaultUserID when nothing remains. It never fails.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = stripPattern.ReplaceAllString(s, "")
	if len(s) > MaxLen {
		s = s[:MaxLen]
	}
	if s == "" {
		return DefaultUserID
	}
	return s
}

// Parse resolves a raw identifier under the selected policy. Strict mode
// rejects anything outside the canonical pattern; lenient mode coerces via
// Normalize. The two policies are never mixed within one deployment.
func Parse(raw string, strict bool) (string, error) {
	if strict {
		s := strings.ToLower(strings.TrimSpace(raw))
		if !IsValid(s) {
			return "", ErrInvalidIdentifier
		}
		return s, nil
	}
	return Normalize(raw), nil
}

// IsValid reports whether id already matches the canonical identifier pattern.
func IsValid(id string) bool {
	return validPattern.MatchString(id)
}
