package metrics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cod-metrics-api/internal/domain/entity"
)

// ProductProfitability rentabilidad agregada de un producto en la ventana.
type ProductProfitability struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
	UnitsSold    int             `json:"units_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	TotalAdSpend decimal.Decimal `json:"total_ad_spend"`
	NetProfit    decimal.Decimal `json:"net_profit"`
	ProfitMargin decimal.Decimal `json:"profit_margin"` // NetProfit / TotalRevenue * 100
}

// ProductProfitabilityBreakdown calcula la rentabilidad por producto sobre los
// registros efectivos de la ventana.
//
// products fija el orden de salida (orden de catálogo). productIDs no vacío
// restringe el desglose a ese subconjunto. Productos sin unidades vendidas en
// la ventana se omiten del resultado.
func ProductProfitabilityBreakdown(
	entries []entity.DailyEntry,
	products []*entity.Product,
	productIDs []string,
	settings *entity.Settings,
) []ProductProfitability {
	subset := make(map[string]bool, len(productIDs))
	for _, id := range productIDs {
		subset[id] = true
	}

	byProduct := make(map[string][]entity.DailyEntry)
	for _, e := range entries {
		byProduct[e.ProductID] = append(byProduct[e.ProductID], e)
	}

	result := make([]ProductProfitability, 0, len(products))
	for _, p := range products {
		if len(subset) > 0 && !subset[p.ID] {
			continue
		}

		var unitsSold int
		var revenue, cost, otherFixed, adSpendSecondary decimal.Decimal
		rate := DeliveryRateFor(p, settings)
		for _, e := range byProduct[p.ID] {
			effUnits := decimal.NewFromInt(int64(e.TotalUnitsSold)).Mul(rate)
			unitsSold += e.TotalUnitsSold
			revenue = revenue.Add(effUnits.Mul(p.SellingPricePerUnit))
			cost = cost.Add(effUnits.Mul(p.CostPerUnit))
			if p.OtherFixedCostsPerUnit != nil {
				otherFixed = otherFixed.Add(effUnits.Mul(*p.OtherFixedCostsPerUnit))
			}
			adSpendSecondary = adSpendSecondary.Add(e.TotalAdSpend())
		}
		if unitsSold == 0 {
			continue
		}

		adSpend := SafeDivide(adSpendSecondary, settings.ExchangeRate)
		netProfit := revenue.Sub(cost).Sub(adSpend).Sub(otherFixed)
		result = append(result, ProductProfitability{
			ProductID:    p.ID,
			ProductName:  p.Name,
			CostPerUnit:  p.CostPerUnit,
			UnitsSold:    unitsSold,
			TotalRevenue: revenue,
			TotalCost:    cost,
			TotalAdSpend: adSpend,
			NetProfit:    netProfit,
			ProfitMargin: SafePercent(netProfit, revenue),
		})
	}
	return result
}

// CampaignPerformance desempeño agregado de una campaña. Campañas homónimas
// de productos distintos se funden por nombre.
type CampaignPerformance struct {
	Name         string          `json:"name"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	TotalAdSpend decimal.Decimal `json:"total_ad_spend"`
	TotalOrders  decimal.Decimal `json:"total_orders"` // órdenes efectivas
	TotalCost    decimal.Decimal `json:"total_cost"`
	NetProfit    decimal.Decimal `json:"net_profit"`
	CPO          decimal.Decimal `json:"cpo"`
	ROAS         decimal.Decimal `json:"roas"`
	ROI          decimal.Decimal `json:"roi"`
}

type campaignAccumulator struct {
	sales      decimal.Decimal
	adSpend    decimal.Decimal
	orders     decimal.Decimal
	cost       decimal.Decimal
	otherFixed decimal.Decimal
}

// CampaignPerformanceBreakdown asigna a cada campaña una porción de las
// unidades del registro proporcional a campaignOrders/entryTotalOrders,
// escalada por la tasa de entrega. Con cero órdenes en el registro la campaña
// no recibe unidades (sin error de división); su gasto y sus órdenes
// efectivas sí se acumulan.
func CampaignPerformanceBreakdown(
	entries []entity.DailyEntry,
	productsByID map[string]*entity.Product,
	settings *entity.Settings,
) []CampaignPerformance {
	accs := make(map[string]*campaignAccumulator)
	order := make([]string, 0)

	for _, e := range entries {
		product, ok := productsByID[e.ProductID]
		if !ok {
			continue
		}
		rate := DeliveryRateFor(product, settings)
		entryOrders := decimal.NewFromInt(int64(e.TotalOrders))
		entryUnits := decimal.NewFromInt(int64(e.TotalUnitsSold))

		for _, c := range e.Campaigns {
			acc, seen := accs[c.Name]
			if !seen {
				acc = &campaignAccumulator{}
				accs[c.Name] = acc
				order = append(order, c.Name)
			}

			campaignOrders := decimal.NewFromInt(int64(c.Orders))
			allocatedUnits := SafeDivide(campaignOrders, entryOrders).Mul(entryUnits).Mul(rate)

			acc.sales = acc.sales.Add(allocatedUnits.Mul(product.SellingPricePerUnit))
			acc.cost = acc.cost.Add(allocatedUnits.Mul(product.CostPerUnit))
			if product.OtherFixedCostsPerUnit != nil {
				acc.otherFixed = acc.otherFixed.Add(allocatedUnits.Mul(*product.OtherFixedCostsPerUnit))
			}
			acc.adSpend = acc.adSpend.Add(SafeDivide(c.AdSpend, settings.ExchangeRate))
			acc.orders = acc.orders.Add(campaignOrders.Mul(rate))
		}
	}

	result := make([]CampaignPerformance, 0, len(order))
	for _, name := range order {
		acc := accs[name]
		netProfit := acc.sales.Sub(acc.cost).Sub(acc.adSpend).Sub(acc.otherFixed)
		investment := acc.cost.Add(acc.adSpend).Add(acc.otherFixed)
		result = append(result, CampaignPerformance{
			Name:         name,
			TotalSales:   acc.sales,
			TotalAdSpend: acc.adSpend,
			TotalOrders:  acc.orders,
			TotalCost:    acc.cost,
			NetProfit:    netProfit,
			CPO:          SafeDivide(acc.adSpend, acc.orders),
			ROAS:         SafeDivide(acc.sales, acc.adSpend),
			ROI:          SafePercent(netProfit, investment),
		})
	}
	return result
}

// ShareDelta diferencia entre participación en ingresos y participación en
// gasto publicitario de un producto, en puntos porcentuales. Delta positivo:
// el producto genera más ingreso del que su gasto sugiere (gasto eficiente).
type ShareDelta struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Delta       decimal.Decimal `json:"delta"`
}

// SpendVsRevenueShare calcula delta = (revenueShare - spendShare) * 100 por
// producto con gasto registrado, ordenado descendente. Las participaciones se
// calculan sobre los acumulados en moneda secundaria (gasto) y principal
// (ventas); la escala se cancela dentro de cada razón.
func SpendVsRevenueShare(totals PeriodTotals, productsByID map[string]*entity.Product) []ShareDelta {
	deltas := make([]ShareDelta, 0, len(totals.ProductAdSpend))
	for productID, spend := range totals.ProductAdSpend {
		product, ok := productsByID[productID]
		if !ok {
			continue
		}
		spendShare := SafeDivide(spend, totals.TotalAdSpendSecondary)
		revenueShare := SafeDivide(totals.ProductSales[productID], totals.TotalSales)
		deltas = append(deltas, ShareDelta{
			ProductID:   productID,
			ProductName: product.Name,
			Delta:       revenueShare.Sub(spendShare).Mul(hundred),
		})
	}

	sort.Slice(deltas, func(i, j int) bool {
		if cmp := deltas[i].Delta.Cmp(deltas[j].Delta); cmp != 0 {
			return cmp > 0
		}
		return deltas[i].ProductName < deltas[j].ProductName
	})
	return deltas
}

const shareRankSize = 3

// Champions los (hasta) 3 productos con delta positivo más alto.
func Champions(deltas []ShareDelta) []ShareDelta {
	champions := make([]ShareDelta, 0, shareRankSize)
	for _, d := range deltas {
		if !d.Delta.IsPositive() {
			continue
		}
		champions = append(champions, d)
		if len(champions) == shareRankSize {
			break
		}
	}
	return champions
}

// Offenders los (hasta) 3 productos con delta negativo más bajo, del peor al
// menos malo.
func Offenders(deltas []ShareDelta) []ShareDelta {
	offenders := make([]ShareDelta, 0, shareRankSize)
	for i := len(deltas) - 1; i >= 0; i-- {
		if !deltas[i].Delta.IsNegative() {
			continue
		}
		offenders = append(offenders, deltas[i])
		if len(offenders) == shareRankSize {
			break
		}
	}
	return offenders
}

// Breakeven punto de equilibrio de la ventana.
//
// Cuando el margen unitario es menor o igual a cero el equilibrio no es
// alcanzable con el mix actual: Achievable=false y Units queda en cero como
// centinela explícito (nunca un número negativo ni desbordado).
type Breakeven struct {
	UnitMargin decimal.Decimal `json:"unit_margin"` // utilidad bruta / unidades efectivas
	Achievable bool            `json:"achievable"`
	Units      decimal.Decimal `json:"units,omitempty"` // redondeadas hacia arriba
	GapSales   decimal.Decimal `json:"gap_sales"`       // inversión - ventas
	GapPercent decimal.Decimal `json:"gap_percent"`
}

// BreakevenFor deriva el punto de equilibrio desde los totales del período.
func BreakevenFor(totals PeriodTotals) Breakeven {
	investment := totals.TotalInvestment()
	unitMargin := SafeDivide(totals.GrossProfit(), totals.EffectiveUnits)
	gapSales := investment.Sub(totals.TotalSales)

	be := Breakeven{
		UnitMargin: unitMargin,
		GapSales:   gapSales,
		GapPercent: SafePercent(gapSales, investment),
	}
	if unitMargin.IsPositive() {
		be.Achievable = true
		be.Units = SafeDivide(investment, unitMargin).Ceil()
	}
	return be
}

// DatedSales ventas agregadas de una fecha (serie para gráficas).
type DatedSales struct {
	Date  string          `json:"date"`
	Sales decimal.Decimal `json:"sales"`
}

// SalesByDate acumula los ingresos por fecha de los registros efectivos y
// devuelve la serie ordenada cronológicamente (las fechas YYYY-MM-DD ordenan
// lexicográficamente igual que en el calendario).
func SalesByDate(entries []entity.DailyEntry, productsByID map[string]*entity.Product, settings *entity.Settings) []DatedSales {
	byDate := make(map[string]decimal.Decimal)
	for _, e := range entries {
		product, ok := productsByID[e.ProductID]
		if !ok {
			continue
		}
		rate := DeliveryRateFor(product, settings)
		revenue := decimal.NewFromInt(int64(e.TotalUnitsSold)).Mul(rate).Mul(product.SellingPricePerUnit)
		byDate[e.Date] = byDate[e.Date].Add(revenue)
	}

	series := make([]DatedSales, 0, len(byDate))
	for date, sales := range byDate {
		series = append(series, DatedSales{Date: date, Sales: sales})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })
	return series
}
