package reference_test

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/payref/internal/model"
	"github.com/rezonia/payref/internal/reference"
)

func TestCharValue(t *testing.T) {
	tests := []struct {
		char     rune
		expected int
	}{
		{'0', 0},
		{'9', 9},
		{'A', 10},
		{'a', 10},
		{'R', 27},
		{'F', 15},
		{'Z', 35},
	}

	for _, tt := range tests {
		t.Run(string(tt.char), func(t *testing.T) {
			v, ok := reference.CharValue(tt.char)
			require.True(t, ok)
			assert.Equal(t, tt.expected, v)
		})
	}

	for _, r := range []rune{'-', ' ', 'Ä', '/', '_'} {
		_, ok := reference.CharValue(r)
		assert.False(t, ok, "%q should not map", r)
	}
}

func TestNumeral(t *testing.T) {
	n, err := reference.Numeral("C2H5OHRF00")
	require.NoError(t, err)
	assert.Equal(t, "1221752417271500", n.String())

	n, err = reference.Numeral("0042")
	require.NoError(t, err)
	assert.Equal(t, "42", n.String())

	// Longer than any machine word
	n, err = reference.Numeral("ZZZZZZZZZZZZZZZZZZZZZZZZZ")
	require.NoError(t, err)
	assert.Len(t, n.String(), 50)
}

func TestNumeral_InvalidCharacter(t *testing.T) {
	_, err := reference.Numeral("AB-12")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidCharacter))

	var charErr *model.CharacterError
	require.True(t, errors.As(err, &charErr))
	assert.Equal(t, '-', charErr.Char)
	assert.Equal(t, 2, charErr.Position)
	assert.Equal(t, reference.Alphabet, charErr.Alphabet)

	_, err = reference.Numeral("")
	assert.ErrorIs(t, err, model.ErrEmptyReference)
}

func TestGenerateDomestic(t *testing.T) {
	tests := []struct {
		base     uint64
		expected string
	}{
		{1, "13"},
		{10, "107"},
		{10552, "105523"},
		{10231, "102319"},
		{10832, "108326"},
		{10081, "100816"},
		{10872, "108724"},
		{10871, "108711"},
		{86851625961989, "868516259619897"},
	}

	for _, tt := range tests {
		t.Run(strconv.FormatUint(tt.base, 10), func(t *testing.T) {
			assert.Equal(t, tt.expected, reference.GenerateDomestic(tt.base))
		})
	}
}

func TestGenerateDomestic_CheckDigitTenIsZero(t *testing.T) {
	// Weighted sums ending in 0 would naively give check digit 10
	tests := []struct {
		base     uint64
		expected string
	}{
		{11, "110"},
		{22, "220"},
		{33, "330"},
		{10711, "107110"},
	}

	for _, tt := range tests {
		ref := reference.GenerateDomestic(tt.base)
		assert.Equal(t, tt.expected, ref)
		assert.Len(t, ref, len(strconv.FormatUint(tt.base, 10))+1)
		assert.True(t, reference.ValidateDomestic(ref))
	}
}

func TestGenerateDomesticString(t *testing.T) {
	ref, err := reference.GenerateDomesticString("8685 1625 9619 89")
	require.NoError(t, err)
	assert.Equal(t, "868516259619897", ref)

	// Beyond uint64
	ref, err = reference.GenerateDomesticString("123456789012345678901234")
	require.NoError(t, err)
	assert.True(t, reference.ValidateDomestic(ref))

	_, err = reference.GenerateDomesticString("12A4")
	assert.ErrorIs(t, err, model.ErrInvalidCharacter)
	var charErr *model.CharacterError
	require.ErrorAs(t, err, &charErr)
	assert.Equal(t, 2, charErr.Position)
	assert.Equal(t, reference.Digits, charErr.Alphabet)

	_, err = reference.GenerateDomesticString("  ")
	assert.ErrorIs(t, err, model.ErrEmptyReference)
}

func TestGenerateDomesticString_MatchesInteger(t *testing.T) {
	for _, base := range []uint64{1, 9, 11, 10552, 4294967296, 18446744073709551615} {
		ref, err := reference.GenerateDomesticString(strconv.FormatUint(base, 10))
		require.NoError(t, err)
		assert.Equal(t, reference.GenerateDomestic(base), ref)
	}
}

func TestValidateDomestic(t *testing.T) {
	valid := []string{"13", "107", "105523", "102319", "108326", "100816", "108724", "108711", "86851 62596 19897"}
	for _, ref := range valid {
		assert.True(t, reference.ValidateDomestic(ref), ref)
	}

	invalid := []string{"1071110", "1055110", "1026110", "1039110", "1084110", "14", "", "1", "1A3", "RF97C2H5OH"}
	for _, ref := range invalid {
		assert.False(t, reference.ValidateDomestic(ref), ref)
	}
}

func TestDomestic_RandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		base := uint64(rng.Int63n(1<<24) + 1)
		ref := reference.GenerateDomestic(base)
		require.True(t, reference.ValidateDomestic(ref), "base=%d ref=%s", base, ref)
	}
}

func TestGenerateISO(t *testing.T) {
	tests := []struct {
		payload  string
		expected string
	}{
		{"C2H5OH", "RF97C2H5OH"},
		{"c2h5oh", "RF97C2H5OH"},
		{"5390 0754 7034", "RF18539007547034"},
		{"868516259619897", "RF09868516259619897"},
		{"559582243294671", "RF06559582243294671"},
		{"1", "RF741"},
		{"0", "RF040"},
		{"ABC", "RF45ABC"},
	}

	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			ref, err := reference.GenerateISO(tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ref)
		})
	}

	ref, err := reference.GenerateISO("C2H5OH")
	require.NoError(t, err)
	assert.NotEqual(t, "RF40C2H5OH", ref)
}

func TestGenerateISO_Errors(t *testing.T) {
	_, err := reference.GenerateISO("C2H5-OH")
	require.Error(t, err)
	var charErr *model.CharacterError
	require.ErrorAs(t, err, &charErr)
	assert.Equal(t, '-', charErr.Char)
	assert.Equal(t, 4, charErr.Position)

	_, err = reference.GenerateISO("ÅÄÖ")
	assert.ErrorIs(t, err, model.ErrInvalidCharacter)

	_, err = reference.GenerateISO("")
	assert.ErrorIs(t, err, model.ErrEmptyReference)
}

func TestGenerateISOFromInt(t *testing.T) {
	for _, n := range []uint64{1, 13, 868516259619897, 539007547034, 18446744073709551615} {
		expected, err := reference.GenerateISO(strconv.FormatUint(n, 10))
		require.NoError(t, err)
		assert.Equal(t, expected, reference.GenerateISOFromInt(n))
	}
}

func TestValidateISO(t *testing.T) {
	valid := []string{
		"RF97C2H5OH",
		"rf97c2h5oh",
		"RF18 5390 0754 7034",
		"RF09 8685 1625 9619 897",
		"RF06 5595 8224 3294 671",
	}
	for _, ref := range valid {
		assert.True(t, reference.ValidateISO(ref), ref)
	}

	invalid := []string{
		"RF40C2H5OH",
		"RF18539007547035",
		"RF97",
		"RF",
		"",
		"XX97C2H5OH",
		"RFA7C2H5OH",
		"RF97C2H5-OH",
		"868516259619897",
	}
	for _, ref := range invalid {
		assert.False(t, reference.ValidateISO(ref), ref)
	}
}

func TestISO_RandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		ref := reference.GenerateISOFromInt(uint64(rng.Int63n(1<<24) + 1))
		require.True(t, reference.ValidateISO(ref), ref)
	}

	for i := 0; i < 1000; i++ {
		payload := make([]byte, 5+rng.Intn(17))
		for j := range payload {
			payload[j] = reference.Alphabet[rng.Intn(len(reference.Alphabet))]
		}
		ref, err := reference.GenerateISO(string(payload))
		require.NoError(t, err)
		require.True(t, reference.ValidateISO(ref), ref)
	}
}

func TestISOFromDomestic(t *testing.T) {
	ref, err := reference.ISOFromDomestic("86851 62596 19897")
	require.NoError(t, err)
	assert.Equal(t, "RF09868516259619897", ref)

	ref, err = reference.ISOFromDomestic("00013")
	require.NoError(t, err)
	assert.Equal(t, "RF4113", ref)

	_, err = reference.ISOFromDomestic("1071110")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidReference)
}
