package validators

import "strings"

// NormalizeEmail trims and lowercases an address so uniqueness checks are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
