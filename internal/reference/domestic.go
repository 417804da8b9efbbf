package reference

import (
	"fmt"
	"strconv"

	"github.com/rezonia/payref/internal/model"
)

var domesticWeights = [3]int{7, 3, 1}

// domesticCheckDigit weights digits 7, 3, 1 starting from the rightmost.
// A result of 10 is written as 0.
func domesticCheckDigit(digits string) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[len(digits)-1-i] - '0')
		sum += d * domesticWeights[i%len(domesticWeights)]
	}
	return (10 - sum%10) % 10
}

// GenerateDomestic appends the check digit to a base reference number
func GenerateDomestic(base uint64) string {
	digits := strconv.FormatUint(base, 10)
	return digits + strconv.Itoa(domesticCheckDigit(digits))
}

// GenerateDomesticString is GenerateDomestic for base numbers given as
// digit strings of any length. Whitespace is ignored.
func GenerateDomesticString(base string) (string, error) {
	digits := Compact(base)
	if digits == "" {
		return "", fmt.Errorf("generate domestic reference: %w", model.ErrEmptyReference)
	}
	for i, r := range digits {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("generate domestic reference: %w", model.NewCharacterError(r, i, Digits))
		}
	}
	return digits + strconv.Itoa(domesticCheckDigit(digits)), nil
}

// ValidateDomestic reports whether the last digit of ref is the check
// digit of the digits before it.
func ValidateDomestic(ref string) bool {
	s := Compact(ref)
	if len(s) < 2 || !isDigits(s) {
		return false
	}
	body, check := s[:len(s)-1], int(s[len(s)-1]-'0')
	return domesticCheckDigit(body) == check
}
