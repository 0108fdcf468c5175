// Package metrics implementa el núcleo de consolidación de registros diarios
// y derivación de KPIs financieros (ventas, costo, gasto publicitario, ROAS,
// ROI, CPO, punto de equilibrio). Todas las funciones son puras: reciben el
// snapshot de registros, catálogo y configuración como argumentos inmutables
// y no tocan estado compartido, por lo que pueden invocarse concurrentemente
// desde el dashboard y los reportes sin locking.
package metrics

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// SafeDivide divide num/den devolviendo cero cuando el denominador es cero.
// Las irregularidades numéricas esperadas (cero órdenes, cero inversión)
// nunca se propagan como error ni como valor no finito.
func SafeDivide(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}

// SafePercent divide y multiplica por 100, con la misma protección de cero.
func SafePercent(num, den decimal.Decimal) decimal.Decimal {
	return SafeDivide(num, den).Mul(hundred)
}
