package reference

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rezonia/payref/internal/model"
)

// ISOPrefix starts every ISO 11649 creditor reference
const ISOPrefix = "RF"

// GenerateISO builds an RF reference for an alphanumeric payload.
// The payload is upper-cased and stripped of whitespace.
func GenerateISO(payload string) (string, error) {
	p := Compact(payload)
	if p == "" {
		return "", fmt.Errorf("generate iso reference: %w", model.ErrEmptyReference)
	}

	n, err := Numeral(p + ISOPrefix + "00")
	if err != nil {
		return "", fmt.Errorf("generate iso reference: %w", err)
	}

	checksum := 98 - mod97(n)
	return fmt.Sprintf("%s%02d%s", ISOPrefix, checksum, p), nil
}

// GenerateISOFromInt builds an RF reference for a numeric payload.
//
// Deprecated: use GenerateISO with the decimal string of n.
func GenerateISOFromInt(n uint64) string {
	ref, _ := GenerateISO(strconv.FormatUint(n, 10))
	return ref
}

// ValidateISO reports whether ref is an RF reference whose checksum
// satisfies MOD 97-10.
func ValidateISO(ref string) bool {
	s := Compact(ref)
	if len(s) < 5 || !strings.HasPrefix(s, ISOPrefix) || !isDigits(s[2:4]) {
		return false
	}

	n, err := Numeral(s[4:] + s[:4])
	if err != nil {
		return false
	}
	return mod97(n) == 1
}

// ISOFromDomestic converts a valid Finnish national reference into its
// RF form. Leading zeros of the national reference are dropped.
func ISOFromDomestic(ref string) (string, error) {
	s := Compact(ref)
	if !ValidateDomestic(s) {
		return "", model.NewValidationError("reference", ref, "domestic", "not a valid Finnish reference", model.ErrInvalidReference)
	}

	payload := strings.TrimLeft(s, "0")
	if payload == "" {
		payload = "0"
	}
	return GenerateISO(payload)
}
