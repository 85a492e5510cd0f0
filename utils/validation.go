package utils

import (
	"regexp"
	"strings"
)

// Shared field rules. The same checks the SPA runs before opening checkout are
// enforced here so the two layers cannot drift apart.

var (
	mobileRegex   = regexp.MustCompile(`^[6-9]\d{9}$`)
	imageURLRegex = regexp.MustCompile(`^https?://\S+$`)
)

const (
	minNameLen    = 3
	minAddressLen = 10
)

// ValidateMobile accepts 10-digit Indian mobile numbers starting 6-9. A +91
// or 91 prefix is stripped first, matching how users paste numbers in.
func ValidateMobile(raw string) (string, bool) {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(raw, "")
	if len(cleaned) == 12 && strings.HasPrefix(cleaned, "91") {
		cleaned = cleaned[2:]
	}
	return cleaned, mobileRegex.MatchString(cleaned)
}

func ValidName(name string) bool {
	return len(strings.TrimSpace(name)) >= minNameLen
}

func ValidAddress(address string) bool {
	return len(strings.TrimSpace(address)) >= minAddressLen
}

func ValidImageURL(url string) bool {
	return imageURLRegex.MatchString(url)
}

// ContactFields validates the common booking/subscription contact block and
// returns per-field messages.
func ContactFields(fullName, phoneNumber string) map[string]string {
	errs := map[string]string{}
	if !ValidName(fullName) {
		errs["fullName"] = "please enter a name of at least 3 characters"
	}
	if _, ok := ValidateMobile(phoneNumber); !ok {
		errs["phoneNumber"] = "please enter a valid 10-digit mobile number"
	}
	return errs
}
