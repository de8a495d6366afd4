package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "thousands and decimals", input: "2.345,67", want: 2345.67},
		{name: "decimals only", input: "0,50", want: 0.50},
		{name: "round thousands", input: "12.000,00", want: 12000.00},
		{name: "no thousands separator", input: "400,00", want: 400.00},
		{name: "typical net salary", input: "1.945,67", want: 1945.67},
		{name: "integer without decimals", input: "1500", want: 1500},
		{name: "negative adjustment", input: "-12,30", want: -12.30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseAmountErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "letters", input: "abc"},
		{name: "empty", input: ""},
		{name: "currency suffix", input: "2.345,67 EUR"},
		// Two thousands groups are a documented limitation: only the first
		// "." is removed, so the remainder is not a valid number.
		{name: "two thousands groups", input: "1.234.567,89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAmount(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrAmountFormat)
		})
	}
}
