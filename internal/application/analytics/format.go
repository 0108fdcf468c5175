package analytics

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Impresora con separadores de miles en español (1.234.567,89) para los
// valores formateados de los KPIs.
var printer = message.NewPrinter(language.Spanish)

// formatMoney monto en moneda principal con dos decimales.
func formatMoney(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return printer.Sprintf("$%.2f", f)
}

// formatNumber cantidad con separador de miles, sin decimales.
func formatNumber(v decimal.Decimal) string {
	f, _ := v.Round(0).Float64()
	return printer.Sprintf("%.0f", f)
}

// formatPercent porcentaje con un decimal.
func formatPercent(v decimal.Decimal) string {
	f, _ := v.Round(1).Float64()
	return printer.Sprintf("%.1f%%", f)
}

// formatRatio razón adimensional (ROAS, UPT) con dos decimales.
func formatRatio(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return printer.Sprintf("%.2f", f)
}
