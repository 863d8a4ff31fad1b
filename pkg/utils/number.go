package utils

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatNumber formata quantidades com duas casas decimais e separador de milhar (1,234.50)
func FormatNumber(f float64) string {
	rounded := decimal.NewFromFloat(f).Round(2).InexactFloat64()
	return message.NewPrinter(language.English).Sprintf("%.2f", rounded)
}

// FormatMoney formata valores monetários em dólares ($1,234.50, -$1,000.00)
func FormatMoney(f float64) string {
	formatted := FormatNumber(f)
	if strings.HasPrefix(formatted, "-") {
		return "-$" + formatted[1:]
	}
	return "$" + formatted
}
