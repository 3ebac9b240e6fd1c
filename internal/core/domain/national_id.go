package domain

import "regexp"

var (
	bareNationalIDPattern       = regexp.MustCompile(`^\d{11}$`)
	punctuatedNationalIDPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
)

// IsBareNationalID reports whether s is exactly 11 bare digits.
func IsBareNationalID(s string) bool {
	return bareNationalIDPattern.MatchString(s)
}

// IsPunctuatedNationalID reports whether s is in canonical ###.###.###-## form.
func IsPunctuatedNationalID(s string) bool {
	return punctuatedNationalIDPattern.MatchString(s)
}

// FormatNationalID punctuates 11 bare digits into ###.###.###-## form without
// verifying check digits. Login classification uses it so a lookup can be
// attempted against the canonical stored form.
func FormatNationalID(bare string) string {
	return bare[0:3] + "." + bare[3:6] + "." + bare[6:9] + "-" + bare[9:11]
}

// NormalizeNationalID accepts a national id as 11 bare digits or in canonical
// punctuated form, verifies its check digits, and returns the canonical
// punctuated form. Fails with ErrInvalidNationalID on any other input.
func NormalizeNationalID(s string) (string, error) {
	var digits string
	switch {
	case IsBareNationalID(s):
		digits = s
	case IsPunctuatedNationalID(s):
		digits = s[0:3] + s[4:7] + s[8:11] + s[12:14]
	default:
		return "", ErrInvalidNationalID
	}

	if !validCheckDigits(digits) {
		return "", ErrInvalidNationalID
	}

	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11], nil
}

// validCheckDigits verifies the two mod-11 check digits over the 9 base digits.
// Sequences of a single repeated digit pass the checksum but are not valid ids.
func validCheckDigits(digits string) bool {
	allSame := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	return checkDigit(digits, 9) == int(digits[9]-'0') &&
		checkDigit(digits, 10) == int(digits[10]-'0')
}

// checkDigit computes the mod-11 check digit over the first n digits, using
// descending weights starting at n+1.
func checkDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}
