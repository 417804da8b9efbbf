// Package payreflib provides a public API for Finnish payment references
// and virtual barcodes.
//
// It generates and validates Finnish national creditor references and
// ISO 11649 RF references, and encodes the 54-digit virtual barcode
// printed on Finnish payment slips.
//
// Example usage:
//
//	ref, err := payreflib.GenerateISOReference("C2H5OH")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	code, err := payreflib.EncodeVirtualBarcode("FI79 4405 2020 0360 82", ref, amount, &due)
package payreflib

import (
	"github.com/rezonia/payref/internal/barcode"
	"github.com/rezonia/payref/internal/model"
)

// Re-export core types for public API
type (
	PaymentSlip    = model.PaymentSlip
	ReferenceKind  = model.ReferenceKind
	BarcodeVersion = barcode.Version
)

// Re-export reference kinds
const (
	ReferenceDomestic = model.ReferenceDomestic
	ReferenceISO      = model.ReferenceISO
	ReferenceUnknown  = model.ReferenceUnknown
)

// Re-export barcode versions
const (
	BarcodeVersion4 = barcode.Version4
	BarcodeVersion5 = barcode.Version5
)

// Re-export error types
type (
	CharacterError  = model.CharacterError
	BarcodeError    = model.BarcodeError
	ValidationError = model.ValidationError
)

// Re-export error kinds
var (
	ErrInvalidCharacter    = model.ErrInvalidCharacter
	ErrEmptyReference      = model.ErrEmptyReference
	ErrInvalidReference    = model.ErrInvalidReference
	ErrUnsupportedIBAN     = model.ErrUnsupportedIBAN
	ErrAmountOutOfRange    = model.ErrAmountOutOfRange
	ErrInvalidBarcodeField = model.ErrInvalidBarcodeField
)
