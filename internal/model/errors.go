package model

import (
	"errors"
	"fmt"
)

// Error kinds, matched with errors.Is
var (
	ErrInvalidCharacter    = errors.New("invalid character")
	ErrEmptyReference      = errors.New("empty reference")
	ErrInvalidReference    = errors.New("invalid reference")
	ErrUnsupportedIBAN     = errors.New("unsupported IBAN")
	ErrAmountOutOfRange    = errors.New("amount out of range")
	ErrInvalidBarcodeField = errors.New("invalid barcode field")
)

// CharacterError reports a character outside the accepted alphabet
type CharacterError struct {
	Char     rune
	Position int
	Alphabet string
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d: accepted characters are %s", e.Char, e.Position, e.Alphabet)
}

func (e *CharacterError) Unwrap() error {
	return ErrInvalidCharacter
}

// NewCharacterError creates a new character error
func NewCharacterError(char rune, position int, alphabet string) *CharacterError {
	return &CharacterError{
		Char:     char,
		Position: position,
		Alphabet: alphabet,
	}
}

// BarcodeError represents a virtual barcode encoding or decoding failure
type BarcodeError struct {
	Field   string
	Value   string
	Message string
	Cause   error
}

func (e *BarcodeError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("barcode %s: %s (value=%s)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("barcode %s: %s", e.Field, e.Message)
}

func (e *BarcodeError) Unwrap() error {
	return e.Cause
}

// NewBarcodeError creates a new barcode error
func NewBarcodeError(field, value, message string, cause error) *BarcodeError {
	return &BarcodeError{
		Field:   field,
		Value:   value,
		Message: message,
		Cause:   cause,
	}
}

// ValidationError represents validation failures
type ValidationError struct {
	Field   string
	Value   interface{}
	Rule    string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation failed on %s: %s (value=%v, rule=%s)", e.Field, e.Message, e.Value, e.Rule)
	}
	return fmt.Sprintf("validation failed on %s: %s (rule=%s)", e.Field, e.Message, e.Rule)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, rule, message string, cause error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
		Cause:   cause,
	}
}
