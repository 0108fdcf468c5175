package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cod-metrics-api/internal/domain/entity"
)

// PeriodTotals agregados financieros y operativos de una ventana de tiempo.
//
// Los montos monetarios están en la moneda principal, salvo
// TotalAdSpendSecondary y ProductAdSpend que conservan la moneda secundaria
// original de captura (útil para participaciones, donde la escala se cancela).
type PeriodTotals struct {
	TotalOrdersInput    int // órdenes crudas, sin descontar tasa de entrega
	TotalUnitsSoldInput int // unidades crudas

	TotalSales      decimal.Decimal // ingresos (unidades efectivas * precio)
	TotalCOGS       decimal.Decimal // costo de mercancía vendida
	TotalOtherFixed decimal.Decimal // otros costos fijos por unidad

	TotalAdSpend          decimal.Decimal // gasto publicitario convertido
	TotalAdSpendSecondary decimal.Decimal // gasto en moneda secundaria

	EffectiveOrders decimal.Decimal // órdenes * tasa de entrega
	EffectiveUnits  decimal.Decimal // unidades * tasa de entrega

	// Acumulados por producto para los desgloses (gasto en moneda secundaria,
	// ventas en moneda principal).
	ProductAdSpend map[string]decimal.Decimal
	ProductSales   map[string]decimal.Decimal
}

// CalculatePeriod agrega los registros efectivos de una ventana.
//
// Los registros ya vienen consolidados y filtrados (ventana, producto, canal,
// temporada). Registros cuyo producto no existe en el catálogo se omiten en
// silencio. La tasa de entrega por producto, si existe, reemplaza la global;
// ambas son porcentajes y se dividen entre 100.
func CalculatePeriod(entries []entity.DailyEntry, productsByID map[string]*entity.Product, settings *entity.Settings) PeriodTotals {
	totals := PeriodTotals{
		ProductAdSpend: make(map[string]decimal.Decimal),
		ProductSales:   make(map[string]decimal.Decimal),
	}

	for _, e := range entries {
		product, ok := productsByID[e.ProductID]
		if !ok {
			continue
		}

		totals.TotalOrdersInput += e.TotalOrders
		totals.TotalUnitsSoldInput += e.TotalUnitsSold

		rate := DeliveryRateFor(product, settings)
		effUnits := decimal.NewFromInt(int64(e.TotalUnitsSold)).Mul(rate)
		effOrders := decimal.NewFromInt(int64(e.TotalOrders)).Mul(rate)
		totals.EffectiveUnits = totals.EffectiveUnits.Add(effUnits)
		totals.EffectiveOrders = totals.EffectiveOrders.Add(effOrders)

		revenue := effUnits.Mul(product.SellingPricePerUnit)
		totals.TotalSales = totals.TotalSales.Add(revenue)
		totals.TotalCOGS = totals.TotalCOGS.Add(effUnits.Mul(product.CostPerUnit))
		if product.OtherFixedCostsPerUnit != nil {
			totals.TotalOtherFixed = totals.TotalOtherFixed.Add(effUnits.Mul(*product.OtherFixedCostsPerUnit))
		}
		totals.ProductSales[product.ID] = totals.ProductSales[product.ID].Add(revenue)

		spend := e.TotalAdSpend()
		totals.TotalAdSpendSecondary = totals.TotalAdSpendSecondary.Add(spend)
		totals.ProductAdSpend[product.ID] = totals.ProductAdSpend[product.ID].Add(spend)
	}

	// El gasto se captura en moneda secundaria; se convierte dividiendo por la
	// tasa de cambio una sola vez sobre el total.
	totals.TotalAdSpend = SafeDivide(totals.TotalAdSpendSecondary, settings.ExchangeRate)
	return totals
}

// DeliveryRateFor tasa de entrega aplicable al producto como fracción (0–1):
// la propia del producto si existe, si no la global de Settings.
func DeliveryRateFor(product *entity.Product, settings *entity.Settings) decimal.Decimal {
	pct := settings.GlobalDeliveryRate
	if product != nil && product.DeliveryRate != nil {
		pct = *product.DeliveryRate
	}
	return pct.Div(hundred)
}

// GrossProfit utilidad bruta: ventas menos (publicidad + COGS + otros fijos).
func (t PeriodTotals) GrossProfit() decimal.Decimal {
	return t.TotalSales.Sub(t.TotalAdSpend.Add(t.TotalCOGS).Add(t.TotalOtherFixed))
}

// TotalInvestment inversión total del período: publicidad + COGS + otros fijos.
func (t PeriodTotals) TotalInvestment() decimal.Decimal {
	return t.TotalAdSpend.Add(t.TotalCOGS).Add(t.TotalOtherFixed)
}

// ROI retorno sobre inversión en porcentaje.
func (t PeriodTotals) ROI() decimal.Decimal {
	return SafePercent(t.GrossProfit(), t.TotalInvestment())
}

// ROAS retorno sobre gasto publicitario (ventas / publicidad).
func (t PeriodTotals) ROAS() decimal.Decimal {
	return SafeDivide(t.TotalSales, t.TotalAdSpend)
}

// CPO costo publicitario por orden efectiva.
func (t PeriodTotals) CPO() decimal.Decimal {
	return SafeDivide(t.TotalAdSpend, t.EffectiveOrders)
}

// CPS costo publicitario por unidad efectiva vendida.
func (t PeriodTotals) CPS() decimal.Decimal {
	return SafeDivide(t.TotalAdSpend, t.EffectiveUnits)
}

// AOV valor promedio por orden efectiva.
func (t PeriodTotals) AOV() decimal.Decimal {
	return SafeDivide(t.TotalSales, t.EffectiveOrders)
}

// UPT unidades por transacción sobre valores crudos.
func (t PeriodTotals) UPT() decimal.Decimal {
	return SafeDivide(
		decimal.NewFromInt(int64(t.TotalUnitsSoldInput)),
		decimal.NewFromInt(int64(t.TotalOrdersInput)),
	)
}

// AppliedDeliveryRate tasa de entrega efectivamente aplicada en el período (%).
func (t PeriodTotals) AppliedDeliveryRate() decimal.Decimal {
	return SafePercent(t.EffectiveOrders, decimal.NewFromInt(int64(t.TotalOrdersInput)))
}
