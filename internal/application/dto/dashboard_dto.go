package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cod-metrics-api/internal/domain/metrics"
)

// DashboardRequest parámetros de GET /api/dashboard.
type DashboardRequest struct {
	TimeFilter string `query:"time_filter"` // ALL|TODAY|WEEK|MONTH|QUARTER|YEAR|CUSTOM
	Comparison string `query:"comparison"`  // NONE|PREVIOUS_PERIOD|PREVIOUS_YEAR
	StartDate  string `query:"start_date"`  // YYYY-MM-DD, solo para CUSTOM
	EndDate    string `query:"end_date"`
	ProductID  string `query:"product_id"` // vacío o ALL = todos
	Source     string `query:"source"`     // ALL|WEBSITE|PAGE
	Season     string `query:"season"`     // ALL|SUMMER|WINTER
}

// KPIDTO un indicador del panel con su tendencia contra la ventana de
// comparación. IsPositiveGood es solo para el coloreado (subir gasto
// publicitario no es bueno aunque la tendencia sea "positive").
type KPIDTO struct {
	Key            string          `json:"key"`
	Title          string          `json:"title"`
	Value          decimal.Decimal `json:"value"`
	Formatted      string          `json:"formatted"`
	SubValue       string          `json:"sub_value,omitempty"`
	Trend          metrics.Trend   `json:"trend"`
	IsPositiveGood bool            `json:"is_positive_good"`
}

// AdEfficiencyDTO resumen de eficiencia publicitaria.
type AdEfficiencyDTO struct {
	ROAS            decimal.Decimal      `json:"roas"`
	AdIntensity     decimal.Decimal      `json:"ad_intensity"`       // publicidad / ventas
	ProfitPerAdUnit decimal.Decimal      `json:"profit_per_ad_unit"` // utilidad / publicidad
	Champions       []metrics.ShareDelta `json:"champions"`
	Offenders       []metrics.ShareDelta `json:"offenders"`
}

// ProfitabilitySummaryDTO resumen de rentabilidad y punto de equilibrio.
type ProfitabilitySummaryDTO struct {
	GrossProfitPerOrder decimal.Decimal   `json:"gross_profit_per_order"`
	GrossProfitPerUnit  decimal.Decimal   `json:"gross_profit_per_unit"`
	Breakeven           metrics.Breakeven `json:"breakeven"`
}

// GoalProgressDTO avance contra una meta mensual.
type GoalProgressDTO struct {
	Current decimal.Decimal `json:"current"`
	Target  decimal.Decimal `json:"target"`
	Percent decimal.Decimal `json:"percent"`
}

// GoalsDTO metas de ingresos, unidades y órdenes.
type GoalsDTO struct {
	Revenue GoalProgressDTO `json:"revenue"`
	Units   GoalProgressDTO `json:"units"`
	Orders  GoalProgressDTO `json:"orders"`
}

// OrderDistributionBucketDTO proporción normalizada de un tamaño de orden.
type OrderDistributionBucketDTO struct {
	Label   string          `json:"label"` // 1 | 2 | 3 | 3+
	Percent decimal.Decimal `json:"percent"`
}

// ProductSalesComparisonDTO ventas de un producto en la ventana actual contra
// la de comparación.
type ProductSalesComparisonDTO struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	CurrentSales  decimal.Decimal `json:"current_sales"`
	PreviousSales decimal.Decimal `json:"previous_sales"`
}

// CPOAlertDTO una campaña superó el CPO máximo tolerado del producto.
type CPOAlertDTO struct {
	Date         string          `json:"date"`
	ProductName  string          `json:"product_name"`
	CampaignName string          `json:"campaign_name"`
	CPO          decimal.Decimal `json:"cpo"`
	MaxCPO       decimal.Decimal `json:"max_cpo"`
}

// StockAlertDTO el stock estimado del producto cayó al umbral de alerta.
type StockAlertDTO struct {
	ProductID         string `json:"product_id"`
	ProductName       string `json:"product_name"`
	CurrentStock      int    `json:"current_stock"`
	LowStockThreshold int    `json:"low_stock_threshold"`
}

// DashboardDTO respuesta completa de GET /api/dashboard.
type DashboardDTO struct {
	Period           PeriodDTO  `json:"period"`
	ComparisonPeriod *PeriodDTO `json:"comparison_period,omitempty"`

	KPIs          []KPIDTO                `json:"kpis"`
	AdEfficiency  AdEfficiencyDTO         `json:"ad_efficiency"`
	Profitability ProfitabilitySummaryDTO `json:"profitability"`
	Goals         GoalsDTO                `json:"goals"`

	OrderDistribution []OrderDistributionBucketDTO   `json:"order_distribution"`
	ProductSales      []ProductSalesComparisonDTO    `json:"product_sales"`
	ProductBreakdown  []metrics.ProductProfitability `json:"product_breakdown"`
	CampaignBreakdown []metrics.CampaignPerformance  `json:"campaign_breakdown"`

	CPOAlerts   []CPOAlertDTO   `json:"cpo_alerts"`
	StockAlerts []StockAlertDTO `json:"stock_alerts"`
}
