package crypto

import "strings"

const specialChars = "!@#?"

// StrengthIssue names the first guideline a candidate password violates.
type StrengthIssue string

const (
	StrengthOK        StrengthIssue = ""
	StrengthTooShort  StrengthIssue = "length"
	StrengthNoLower   StrengthIssue = "lowercase"
	StrengthNoUpper   StrengthIssue = "uppercase"
	StrengthNoDigit   StrengthIssue = "number"
	StrengthNoSpecial StrengthIssue = "special"
)

// CheckStrength validates the registration password policy: at least 8
// characters, a lowercase letter, an uppercase letter, a digit, and one
// special character from the fixed set !@#?.
func CheckStrength(password string) StrengthIssue {
	if len(password) < 8 {
		return StrengthTooShort
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		return StrengthNoLower
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return StrengthNoUpper
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		return StrengthNoDigit
	}
	if !strings.ContainsAny(password, specialChars) {
		return StrengthNoSpecial
	}
	return StrengthOK
}
