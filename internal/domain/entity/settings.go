package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings configuración global del negocio (fila única).
//
// ExchangeRate convierte la moneda secundaria (en la que se registra el gasto
// publicitario) a la principal: montoPrincipal = montoSecundario / ExchangeRate.
// La distribución de tamaños de orden (1/2/3/>3 unidades) se usa solo para
// proporciones en visualizaciones analíticas.
type Settings struct {
	GlobalDeliveryRate decimal.Decimal // % de entregas exitosas por defecto
	ExchangeRate       decimal.Decimal // tasa moneda secundaria -> principal

	MonthlyTargetRevenue   decimal.Decimal
	MonthlyTargetUnitsSold int
	MonthlyTargetOrders    int

	OrderDistribution1Unit          decimal.Decimal
	OrderDistribution2Units         decimal.Decimal
	OrderDistribution3Units         decimal.Decimal
	OrderDistributionMoreThan3Units decimal.Decimal

	UpdatedAt time.Time
}

// DefaultSettings valores iniciales cuando aún no se ha guardado configuración.
func DefaultSettings() *Settings {
	return &Settings{
		GlobalDeliveryRate: decimal.NewFromInt(100),
		ExchangeRate:       decimal.NewFromInt(1),
	}
}
