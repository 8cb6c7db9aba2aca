package validators

import (
	"regexp"
	"strings"
)

var (
	phoneIntl  = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	phoneLocal = regexp.MustCompile(`^0\d{8,10}$`)
	phoneStrip = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
)

// NormalizePhone drops spaces, dashes, dots and parentheses.
func NormalizePhone(phone string) string {
	return phoneStrip.Replace(strings.TrimSpace(phone))
}

// IsPhoneValid accepts E.164-style numbers and local numbers with a leading 0.
func IsPhoneValid(phone string) bool {
	p := NormalizePhone(phone)
	return phoneIntl.MatchString(p) || phoneLocal.MatchString(p)
}
