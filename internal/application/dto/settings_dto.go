package dto

import "github.com/shopspring/decimal"

// SettingsDTO configuración global del negocio; sirve tanto de respuesta como
// de cuerpo de actualización (la fila es única y se reemplaza completa).
type SettingsDTO struct {
	GlobalDeliveryRate decimal.Decimal `json:"global_delivery_rate"` // porcentaje
	ExchangeRate       decimal.Decimal `json:"exchange_rate"`        // secundaria -> principal

	MonthlyTargetRevenue   decimal.Decimal `json:"monthly_target_revenue"`
	MonthlyTargetUnitsSold int             `json:"monthly_target_units_sold"`
	MonthlyTargetOrders    int             `json:"monthly_target_orders"`

	OrderDistribution1Unit          decimal.Decimal `json:"order_distribution_1_unit"`
	OrderDistribution2Units         decimal.Decimal `json:"order_distribution_2_units"`
	OrderDistribution3Units         decimal.Decimal `json:"order_distribution_3_units"`
	OrderDistributionMoreThan3Units decimal.Decimal `json:"order_distribution_more_than_3_units"`
}
