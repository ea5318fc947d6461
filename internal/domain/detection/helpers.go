package detection

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail performs basic syntactic email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// emailDomain extracts the lowercased domain after the last @, or "" for a
// malformed address
func emailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

// emailLocalPart extracts everything before the first @
func emailLocalPart(email string) string {
	at := strings.Index(email, "@")
	if at < 0 {
		return email
	}
	return email[:at]
}

// containsString reports list membership with exact comparison
func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
