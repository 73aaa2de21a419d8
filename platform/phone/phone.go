// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "IN"

// National parses input as an Indian number and returns the bare 10-digit
// national number. It accepts separators and a country prefix ("+91 98765
// 43210") and reports false for anything that does not carry a plausible
// 10-digit mobile number. The returned form is the canonical one records
// store and duplicate checks match on.
func National(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", false
	}

	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return "", false
	}
	if !phonenumbers.IsPossibleNumber(number) {
		return "", false
	}

	national := strconv.FormatUint(number.GetNationalNumber(), 10)
	if len(national) != 10 {
		return "", false
	}
	return national, true
}

// IsValidMobile reports whether input parses to a 10-digit national number.
func IsValidMobile(input string) bool {
	_, ok := National(input)
	return ok
}

// Same reports whether two raw numbers refer to the same national number.
func Same(a, b string) bool {
	na, okA := National(a)
	nb, okB := National(b)
	return okA && okB && na == nb
}
