package payreflib

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/payref/internal/barcode"
	"github.com/rezonia/payref/internal/model"
	"github.com/rezonia/payref/internal/reference"
)

// GenerateDomesticReference appends the 7-3-1 check digit to base
func GenerateDomesticReference(base uint64) string {
	return reference.GenerateDomestic(base)
}

// ValidateDomesticReference checks the trailing check digit of a Finnish reference
func ValidateDomesticReference(ref string) bool {
	return reference.ValidateDomestic(ref)
}

// GenerateISOReference builds an RF reference for an alphanumeric payload
func GenerateISOReference(payload string) (string, error) {
	return reference.GenerateISO(payload)
}

// Int2ISOReference builds an RF reference for a numeric payload.
//
// Deprecated: use GenerateISOReference.
func Int2ISOReference(n uint64) string {
	return reference.GenerateISOFromInt(n)
}

// ValidateISOReference checks the MOD 97-10 checksum of an RF reference
func ValidateISOReference(ref string) bool {
	return reference.ValidateISO(ref)
}

// ValidateReference detects the reference kind and validates it
func ValidateReference(ref string) (ReferenceKind, bool) {
	return reference.Validate(ref)
}

// FormatReference renders a reference in its printed, grouped form
func FormatReference(ref string) string {
	return reference.Format(ref)
}

// EncodeVirtualBarcode builds the 54-digit virtual barcode. A nil due
// date is encoded as zeros.
func EncodeVirtualBarcode(iban, ref string, amount decimal.Decimal, due *time.Time) (string, error) {
	return barcode.Encode(iban, ref, amount, due)
}

// DecodeVirtualBarcode parses a 54-digit virtual barcode
func DecodeVirtualBarcode(code string) (*model.PaymentSlip, BarcodeVersion, error) {
	return barcode.Decode(code)
}
