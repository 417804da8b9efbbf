package decimal_test

import (
	"testing"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/payref/internal/decimal"
)

func TestFromString(t *testing.T) {
	d, err := decimal.FromString("123456.78")
	require.NoError(t, err)
	assert.True(t, d.Equal(dec.RequireFromString("123456.78")))

	_, err = decimal.FromString("not-a-number")
	require.Error(t, err)
}

func TestToCents(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected int64
	}{
		{"whole euros", "12", 1200},
		{"two places", "4883.15", 488315},
		{"zero", "0.00", 0},
		{"smallest unit", "0.01", 1},
		{"max field value", "999999.99", 99999999},
		{"one million", "1000000.00", 100000000},
		{"sub-cent truncated", "1.039", 103},
		{"sub-cent not rounded up", "0.029999", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, decimal.ToCents(dec.RequireFromString(tt.amount)))
		})
	}
}

func TestFromCents(t *testing.T) {
	assert.True(t, decimal.FromCents(488315).Equal(dec.RequireFromString("4883.15")))
	assert.True(t, decimal.FromCents(0).IsZero())
	assert.Equal(t, "0.02", decimal.FormatEUR(decimal.FromCents(2)))
}

func TestIsNonNegative(t *testing.T) {
	assert.True(t, decimal.IsNonNegative(dec.NewFromInt(1)))
	assert.True(t, decimal.IsNonNegative(dec.Zero))
	assert.False(t, decimal.IsNonNegative(dec.NewFromInt(-1)))
}

func TestFormatEUR(t *testing.T) {
	assert.Equal(t, "4883.15", decimal.FormatEUR(dec.RequireFromString("4883.15")))
	assert.Equal(t, "693.80", decimal.FormatEUR(dec.RequireFromString("693.8")))
	assert.Equal(t, "0.00", decimal.FormatEUR(dec.Zero))
}
