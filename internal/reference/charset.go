// Package reference generates and validates creditor reference numbers:
// Finnish national references (7-3-1 check digit) and ISO 11649 RF
// references (ISO 7064 MOD 97-10).
package reference

import (
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/rezonia/payref/internal/model"
)

// Alphabet lists the characters accepted in ISO 11649 payloads
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Digits lists the characters accepted in Finnish national references
const Digits = "0123456789"

var ninetySeven = big.NewInt(97)

// CharValue maps an alphanumeric character to its MOD 97-10 value.
// Digits map to themselves, letters (either case) to 10..35.
func CharValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'A' && r <= 'Z':
		return int(r) - 55, true
	case r >= 'a' && r <= 'z':
		return int(r) - 87, true
	}
	return 0, false
}

// Numeral expands an alphanumeric string into its decimal numeral by
// replacing every letter with its two-digit value.
func Numeral(s string) (*big.Int, error) {
	if s == "" {
		return nil, model.ErrEmptyReference
	}

	var b strings.Builder
	b.Grow(len(s) * 2)

	pos := 0
	for _, r := range s {
		v, ok := CharValue(r)
		if !ok {
			return nil, model.NewCharacterError(r, pos, Alphabet)
		}
		b.WriteString(strconv.Itoa(v))
		pos++
	}

	n, _ := new(big.Int).SetString(b.String(), 10)
	return n, nil
}

func mod97(n *big.Int) int64 {
	return new(big.Int).Mod(n, ninetySeven).Int64()
}

// Compact removes all whitespace and upper-cases ASCII letters.
// Other characters are kept so validation can report them.
func Compact(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return -1
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		}
		return r
	}, s)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
