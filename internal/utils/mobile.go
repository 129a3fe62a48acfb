package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// countryCode is the dialing prefix accepted (and stripped) on input.
// Mobiles are stored as the bare 10-digit national number.
const countryCode = "91"

var mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// NormalizeMobile validates a phone number and returns its canonical
// 10-digit form. It accepts 10-digit national numbers, 0-prefixed numbers,
// and country-code or +-prefixed variants, so the same subscriber always
// normalizes to the same value regardless of how the client formatted it.
func NormalizeMobile(raw string) (string, error) {
	stripped := strings.ReplaceAll(raw, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	if strings.HasPrefix(stripped, countryCode) && len(stripped) == len(countryCode)+10 {
		stripped = stripped[len(countryCode):]
	} else if strings.HasPrefix(stripped, "0") && len(stripped) == 11 {
		stripped = stripped[1:]
	}

	if !mobilePattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid mobile number format")
	}

	return stripped, nil
}

// MaskMobile hides all but the last four digits for logs and audit events
func MaskMobile(mobile string) string {
	if len(mobile) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(mobile)-4) + mobile[len(mobile)-4:]
}
