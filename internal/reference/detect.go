package reference

import (
	"strings"

	"github.com/rezonia/payref/internal/model"
)

// Detect classifies a reference by its shape. It does not check the
// checksum.
func Detect(ref string) model.ReferenceKind {
	s := Compact(ref)
	switch {
	case strings.HasPrefix(s, ISOPrefix):
		return model.ReferenceISO
	case isDigits(s):
		return model.ReferenceDomestic
	default:
		return model.ReferenceUnknown
	}
}

// Validate detects the reference kind and checks its checksum
func Validate(ref string) (model.ReferenceKind, bool) {
	kind := Detect(ref)
	switch kind {
	case model.ReferenceISO:
		return kind, ValidateISO(ref)
	case model.ReferenceDomestic:
		return kind, ValidateDomestic(ref)
	default:
		return kind, false
	}
}

// Format renders a reference in its printed form: RF references in
// groups of four from the left, national references in groups of five
// from the right.
func Format(ref string) string {
	s := Compact(ref)
	switch Detect(s) {
	case model.ReferenceISO:
		return group(s, 4, false)
	case model.ReferenceDomestic:
		return group(s, 5, true)
	default:
		return s
	}
}

func group(s string, size int, fromRight bool) string {
	if len(s) <= size {
		return s
	}

	first := size
	if fromRight {
		if first = len(s) % size; first == 0 {
			first = size
		}
	}

	var b strings.Builder
	b.WriteString(s[:first])
	for i := first; i < len(s); i += size {
		end := i + size
		if end > len(s) {
			end = len(s)
		}
		b.WriteByte(' ')
		b.WriteString(s[i:end])
	}
	return b.String()
}
