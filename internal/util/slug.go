package util

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugInvalid  = regexp.MustCompile(`[^a-z0-9-]`)
	slugDashRuns = regexp.MustCompile(`-+`)
)

// ToSlug normalizes a name into a URL slug. When nothing usable is left
// after normalization a random 8-character token takes its place.
func ToSlug(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugDashRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		return RandomToken(8)
	}
	return s
}

// RandomToken returns the first n characters of a dashless uuid.
func RandomToken(n int) string {
	t := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(t) {
		n = len(t)
	}
	return t[:n]
}
