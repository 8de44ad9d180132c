package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	emailRe     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	lowerRe     = regexp.MustCompile(`[a-z]`)
	upperRe     = regexp.MustCompile(`[A-Z]`)
	digitRe     = regexp.MustCompile(`[0-9]`)
	specialRe   = regexp.MustCompile(`[!@#$%^&*]`)
	spacesRe    = regexp.MustCompile(`\s+`)
	nonSlugRe   = regexp.MustCompile(`[^\w-]`)
	hyphenRunRe = regexp.MustCompile(`--+`)
)

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidatePasswordStrength returns one message per violated rule, all of
// them, not just the first.
func ValidatePasswordStrength(password string) []string {
	var errs []string
	if len(password) < 8 {
		errs = append(errs, "Password must be at least 8 characters long")
	}
	if !lowerRe.MatchString(password) {
		errs = append(errs, "Password must contain at least one lowercase letter")
	}
	if !upperRe.MatchString(password) {
		errs = append(errs, "Password must contain at least one uppercase letter")
	}
	if !digitRe.MatchString(password) {
		errs = append(errs, "Password must contain at least one number")
	}
	if !specialRe.MatchString(password) {
		errs = append(errs, "Password must contain at least one special character (!@#$%^&*)")
	}
	return errs
}

// GenerateSlug lowercases, hyphenates whitespace runs, strips everything
// outside the word/hyphen set and collapses repeated hyphens.
func GenerateSlug(text string) string {
	s := strings.TrimSpace(strings.ToLower(text))
	s = spacesRe.ReplaceAllString(s, "-")
	s = nonSlugRe.ReplaceAllString(s, "")
	return hyphenRunRe.ReplaceAllString(s, "-")
}

// PaginationParams clamps page to >=1 and limit to 1..100, defaulting to
// page=1 limit=20 on missing or unparsable input.
func PaginationParams(pageStr, limitStr string) (page, limit int) {
	page = 1
	if n, err := strconv.Atoi(pageStr); err == nil && n > 1 {
		page = n
	}

	limit = 20
	if n, err := strconv.Atoi(limitStr); err == nil {
		limit = n
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
