package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cod-metrics-api/internal/domain/metrics"
)

// Secciones opcionales del reporte. ReportRequest.Sections vacío = todas.
const (
	ReportSectionSummary      = "summary"
	ReportSectionSalesChart   = "sales_chart"
	ReportSectionProducts     = "products"
	ReportSectionCampaigns    = "campaigns"
	ReportSectionDistribution = "order_distribution"
)

// ReportRequest configuración de un reporte de rango fijo.
type ReportRequest struct {
	StartDate  string   `json:"start_date"` // YYYY-MM-DD
	EndDate    string   `json:"end_date"`
	ProductIDs []string `json:"product_ids,omitempty"` // vacío = todos
	Source     string   `json:"source,omitempty"`      // ALL|WEBSITE|PAGE
	Season     string   `json:"season,omitempty"`      // ALL|SUMMER|WINTER
	Sections   []string `json:"sections,omitempty"`
	Title      string   `json:"title,omitempty"`
}

// ReportTotalsDTO totales absolutos del rango.
type ReportTotalsDTO struct {
	TotalSales      decimal.Decimal `json:"total_sales"`
	TotalAdSpend    decimal.Decimal `json:"total_ad_spend"`
	TotalCOGS       decimal.Decimal `json:"total_cogs"`
	TotalInvestment decimal.Decimal `json:"total_investment"`
	GrossProfit     decimal.Decimal `json:"gross_profit"`
	TotalOrders     int             `json:"total_orders"`
	TotalUnitsSold  int             `json:"total_units_sold"`
	EffectiveOrders decimal.Decimal `json:"effective_orders"`
	EffectiveUnits  decimal.Decimal `json:"effective_units"`
}

// ReportRatiosDTO razones derivadas del rango.
type ReportRatiosDTO struct {
	ROI          decimal.Decimal `json:"roi"`
	ROAS         decimal.Decimal `json:"roas"`
	CPO          decimal.Decimal `json:"cpo"`
	CPS          decimal.Decimal `json:"cps"`
	AOV          decimal.Decimal `json:"aov"`
	UPT          decimal.Decimal `json:"upt"`
	DeliveryRate decimal.Decimal `json:"delivery_rate"` // porcentaje aplicado sobre órdenes
}

// ReportDTO instantánea completa del rango solicitado.
type ReportDTO struct {
	Title  string    `json:"title"`
	Period PeriodDTO `json:"period"`

	// Sección "summary": presentes solo cuando se solicita.
	Totals *ReportTotalsDTO `json:"totals,omitempty"`
	Ratios *ReportRatiosDTO `json:"ratios,omitempty"`

	SalesChart        []metrics.DatedSales           `json:"sales_chart,omitempty"`
	ProductBreakdown  []metrics.ProductProfitability `json:"product_breakdown,omitempty"`
	CampaignBreakdown []metrics.CampaignPerformance  `json:"campaign_breakdown,omitempty"`
	OrderDistribution []OrderDistributionBucketDTO   `json:"order_distribution,omitempty"`

	GeneratedAt string `json:"generated_at"`
}
