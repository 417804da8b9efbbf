package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReferenceKind identifies the creditor reference format
type ReferenceKind string

const (
	ReferenceDomestic ReferenceKind = "domestic" // Finnish national reference
	ReferenceISO      ReferenceKind = "iso"      // ISO 11649 RF reference
	ReferenceUnknown  ReferenceKind = "unknown"
)

// PaymentSlip holds the payment data carried by a Finnish virtual barcode
type PaymentSlip struct {
	IBAN      string          `json:"iban"`
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
	Due       *time.Time      `json:"due,omitempty"`
}

// HasDueDate reports whether the slip carries a due date
func (s PaymentSlip) HasDueDate() bool {
	return s.Due != nil && !s.Due.IsZero()
}

// DueString formats the due date as YYYY-MM-DD, or empty when absent
func (s PaymentSlip) DueString() string {
	if !s.HasDueDate() {
		return ""
	}
	return s.Due.Format("2006-01-02")
}
