// Package barcode encodes and decodes the Finnish bank transfer
// "virtual barcode": a 54-digit string carrying the payee account,
// amount, creditor reference and due date of a payment slip.
package barcode

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	money "github.com/rezonia/payref/internal/decimal"
	"github.com/rezonia/payref/internal/model"
	"github.com/rezonia/payref/internal/reference"
)

// Version is the leading digit of a virtual barcode
type Version int

const (
	Version4 Version = 4 // Finnish national reference
	Version5 Version = 5 // ISO 11649 RF reference
)

// Field widths
const (
	Length           = 54
	IBANBodyLength   = 16
	AmountLength     = 8
	ReservedV4       = "000"
	ReferenceLength4 = 20
	ReferenceLength5 = 23
	DueLength        = 6
)

const (
	finnishCountryCode = "FI"
	dueLayout          = "060102"
	noDueDate          = "000000"
)

// MaxCents is the largest amount, in cents, the amount field holds
const MaxCents = 99999999

// amountLimit is the first amount that no longer fits the field
var amountLimit = money.FromCents(MaxCents + 1)

// Encode builds the virtual barcode for a Finnish IBAN, a national or RF
// reference, an amount in euros and an optional due date. The reference
// format selects the barcode version. Checksums are not verified.
func Encode(iban, ref string, amount decimal.Decimal, due *time.Time) (string, error) {
	ref = reference.Compact(ref)

	version := Version4
	if strings.HasPrefix(ref, reference.ISOPrefix) {
		version = Version5
	}

	ibanField, err := ibanBody(iban)
	if err != nil {
		return "", err
	}

	refField, err := referenceField(ref, version)
	if err != nil {
		return "", err
	}

	amountDigits, err := amountField(amount)
	if err != nil {
		return "", err
	}

	dueField := noDueDate
	if due != nil && !due.IsZero() {
		dueField = due.Format(dueLayout)
	}

	var b strings.Builder
	b.Grow(Length)
	b.WriteString(strconv.Itoa(int(version)))
	b.WriteString(ibanField)
	b.WriteString(amountDigits)
	if version == Version4 {
		b.WriteString(ReservedV4)
	}
	b.WriteString(refField)
	b.WriteString(dueField)
	return b.String(), nil
}

// EncodeSlip encodes a payment slip
func EncodeSlip(slip model.PaymentSlip) (string, error) {
	return Encode(slip.IBAN, slip.Reference, slip.Amount, slip.Due)
}

// VersionOf reports the version a reference would be encoded with
func VersionOf(ref string) Version {
	if strings.HasPrefix(reference.Compact(ref), reference.ISOPrefix) {
		return Version5
	}
	return Version4
}

func referenceField(ref string, version Version) (string, error) {
	if version == Version5 {
		// Checksum and payload; zeros go between them
		body := strings.TrimPrefix(ref, reference.ISOPrefix)
		if len(body) < 3 || !isDigits(body) {
			return "", model.NewBarcodeError("reference", ref, "RF reference must be numeric with a checksum and payload", model.ErrInvalidBarcodeField)
		}
		if len(body) > ReferenceLength5 {
			return "", model.NewBarcodeError("reference", ref, fmt.Sprintf("RF reference longer than %d characters", ReferenceLength5+2), model.ErrInvalidBarcodeField)
		}
		return body[:2] + strings.Repeat("0", ReferenceLength5-len(body)) + body[2:], nil
	}

	if ref == "" || !isDigits(ref) {
		return "", model.NewBarcodeError("reference", ref, "national reference must be numeric", model.ErrInvalidBarcodeField)
	}
	if len(ref) > ReferenceLength4 {
		return "", model.NewBarcodeError("reference", ref, fmt.Sprintf("national reference longer than %d digits", ReferenceLength4), model.ErrInvalidBarcodeField)
	}
	return strings.Repeat("0", ReferenceLength4-len(ref)) + ref, nil
}

func ibanBody(iban string) (string, error) {
	iban = reference.Compact(iban)
	if !strings.HasPrefix(iban, finnishCountryCode) {
		return "", model.NewBarcodeError("iban", iban, "only Finnish (FI) accounts can be encoded", model.ErrUnsupportedIBAN)
	}

	body := strings.TrimPrefix(iban, finnishCountryCode)
	if len(body) != IBANBodyLength || !isDigits(body) {
		return "", model.NewBarcodeError("iban", iban, fmt.Sprintf("Finnish IBAN must have %d digits after the country code", IBANBodyLength), model.ErrInvalidBarcodeField)
	}
	return body, nil
}

func amountField(amount decimal.Decimal) (string, error) {
	if !money.IsNonNegative(amount) {
		return "", model.NewBarcodeError("amount", amount.String(), "amount must not be negative", model.ErrAmountOutOfRange)
	}

	if amount.GreaterThanOrEqual(amountLimit) {
		return "", model.NewBarcodeError("amount", amount.String(), "amount must be at most "+money.FormatEUR(money.FromCents(MaxCents)), model.ErrAmountOutOfRange)
	}
	return fmt.Sprintf("%0*d", AmountLength, money.ToCents(amount)), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
