package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		name     string
		value    float64
		expected string
	}{
		{"zero", 0, "0.00"},
		{"arredonda para cima", 12.345, "12.35"},
		{"milhar", 100000, "100,000.00"},
		{"negativo com milhar", -1234567.891, "-1,234,567.89"},
		{"negativo pequeno", -0.5, "-0.50"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, FormatNumber(c.value))
		})
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$100,000.00", FormatMoney(100000))
	assert.Equal(t, "-$1,000.00", FormatMoney(-1000))
	assert.Equal(t, "$0.00", FormatMoney(0))
}

func TestParseFloatQuery(t *testing.T) {
	cases := []struct {
		name     string
		url      string
		expected float64
		err      error
	}{
		{"sem parâmetro usa o padrão", "/v1/analysis", 5, nil},
		{"parâmetro vazio usa o padrão", "/v1/analysis?price_change=", 5, nil},
		{"valor decimal", "/v1/analysis?price_change=-2.5", -2.5, nil},
		{"valor inválido", "/v1/analysis?price_change=abc", 0, ErrInvalidNumber},
		{"NaN é rejeitado", "/v1/analysis?price_change=NaN", 0, ErrInvalidNumber},
		{"infinito é rejeitado", "/v1/analysis?price_change=Inf", 0, ErrInvalidNumber},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", c.url, nil)

			value, err := ParseFloatQuery(r, "price_change", 5)

			assert.ErrorIs(t, err, c.err)
			assert.Equal(t, c.expected, value)
		})
	}
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()

	assert.NoError(t, err)
	assert.Len(t, id, 6)
}
