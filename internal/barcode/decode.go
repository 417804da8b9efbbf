package barcode

import (
	"strconv"
	"strings"
	"time"

	money "github.com/rezonia/payref/internal/decimal"
	"github.com/rezonia/payref/internal/model"
	"github.com/rezonia/payref/internal/reference"
)

// Decode parses a virtual barcode back into the slip it encodes.
// Reference padding is removed; a national reference loses its leading
// zeros and an RF reference is returned as "RF" + checksum + payload.
func Decode(code string) (*model.PaymentSlip, Version, error) {
	code = reference.Compact(code)
	if len(code) != Length || !isDigits(code) {
		return nil, 0, model.NewBarcodeError("barcode", code, "barcode must be 54 digits", model.ErrInvalidBarcodeField)
	}

	version := Version(code[0] - '0')
	rest := code[1:]

	ibanDigits, rest := rest[:IBANBodyLength], rest[IBANBodyLength:]
	amountDigits, rest := rest[:AmountLength], rest[AmountLength:]

	var ref string
	switch version {
	case Version4:
		if !strings.HasPrefix(rest, ReservedV4) {
			return nil, 0, model.NewBarcodeError("barcode", code, "reserved digits must be zero", model.ErrInvalidBarcodeField)
		}
		rest = rest[len(ReservedV4):]
		ref = strings.TrimLeft(rest[:ReferenceLength4], "0")
		rest = rest[ReferenceLength4:]
	case Version5:
		field := rest[:ReferenceLength5]
		payload := strings.TrimLeft(field[2:], "0")
		if payload == "" {
			payload = "0"
		}
		ref = reference.ISOPrefix + field[:2] + payload
		rest = rest[ReferenceLength5:]
	default:
		return nil, 0, model.NewBarcodeError("version", code[:1], "unsupported barcode version", model.ErrInvalidBarcodeField)
	}

	if ref == "" {
		return nil, 0, model.NewBarcodeError("reference", code, "reference is empty", model.ErrInvalidBarcodeField)
	}

	cents, err := strconv.ParseInt(amountDigits, 10, 64)
	if err != nil {
		return nil, 0, model.NewBarcodeError("amount", amountDigits, "invalid amount", model.ErrInvalidBarcodeField)
	}

	slip := &model.PaymentSlip{
		IBAN:      finnishCountryCode + ibanDigits,
		Reference: ref,
		Amount:    money.FromCents(cents),
	}

	if rest != noDueDate {
		due, err := time.Parse(dueLayout, rest)
		if err != nil {
			return nil, 0, model.NewBarcodeError("due", rest, "invalid due date", model.ErrInvalidBarcodeField)
		}
		// Two-digit years always fall in 2000-2099
		if due.Year() < 2000 {
			due = due.AddDate(100, 0, 0)
		}
		slip.Due = &due
	}

	return slip, version, nil
}
