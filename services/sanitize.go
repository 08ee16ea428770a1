package services

import "github.com/microcosm-cc/bluemonday"

// Free-text fields (names, descriptions, addresses) accept no markup at all
var sanitizePolicy = bluemonday.StrictPolicy()

// SanitizeText strips any HTML from user-provided free text
func SanitizeText(s string) string {
	return sanitizePolicy.Sanitize(s)
}

// SanitizeTextPtr sanitizes optional free text in place, keeping nil as nil
func SanitizeTextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := sanitizePolicy.Sanitize(*s)
	return &clean
}
