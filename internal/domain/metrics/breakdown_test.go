package metrics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cod-metrics-api/internal/domain/entity"
	"github.com/jhoicas/cod-metrics-api/internal/domain/metrics"
)

// shareTotals arma un PeriodTotals sintético con los acumulados por producto
// necesarios para el ranking de eficiencia publicitaria.
func shareTotals(spend, sales map[string]string) metrics.PeriodTotals {
	totals := metrics.PeriodTotals{
		ProductAdSpend: make(map[string]decimal.Decimal),
		ProductSales:   make(map[string]decimal.Decimal),
	}
	for id, v := range spend {
		d := dec(v)
		totals.ProductAdSpend[id] = d
		totals.TotalAdSpendSecondary = totals.TotalAdSpendSecondary.Add(d)
	}
	for id, v := range sales {
		d := dec(v)
		totals.ProductSales[id] = d
		totals.TotalSales = totals.TotalSales.Add(d)
	}
	return totals
}

// TestSpendVsRevenueShare_CampeonesYOfensores tres productos con pares
// (participación gasto, participación ingreso) de (10%,30%), (50%,40%) y
// (40%,30%) producen deltas +20, -10 y -10.
func TestSpendVsRevenueShare_CampeonesYOfensores(t *testing.T) {
	index := map[string]*entity.Product{
		"p1": testProduct("p1"),
		"p2": testProduct("p2"),
		"p3": testProduct("p3"),
	}
	totals := shareTotals(
		map[string]string{"p1": "100", "p2": "500", "p3": "400"},
		map[string]string{"p1": "300", "p2": "400", "p3": "300"},
	)

	deltas := metrics.SpendVsRevenueShare(totals, index)
	require.Len(t, deltas, 3)
	assert.True(t, deltas[0].Delta.Equal(dec("20")), "delta mayor primero, fue %s", deltas[0].Delta)
	assert.Equal(t, "p1", deltas[0].ProductID)
	assert.True(t, deltas[1].Delta.Equal(dec("-10")))
	assert.True(t, deltas[2].Delta.Equal(dec("-10")))

	champions := metrics.Champions(deltas)
	require.Len(t, champions, 1, "solo p1 tiene delta positivo")
	assert.Equal(t, "p1", champions[0].ProductID)

	offenders := metrics.Offenders(deltas)
	require.Len(t, offenders, 2)
	assert.True(t, offenders[0].Delta.Equal(dec("-10")), "ofensores del peor al menos malo")
}

// TestChampionsOffenders_Limite el ranking corta en los 3 primeros de cada lado.
func TestChampionsOffenders_Limite(t *testing.T) {
	deltas := []metrics.ShareDelta{
		{ProductID: "a", Delta: dec("40")},
		{ProductID: "b", Delta: dec("30")},
		{ProductID: "c", Delta: dec("20")},
		{ProductID: "d", Delta: dec("10")},
		{ProductID: "e", Delta: dec("-5")},
		{ProductID: "f", Delta: dec("-15")},
		{ProductID: "g", Delta: dec("-35")},
		{ProductID: "h", Delta: dec("-45")},
	}

	champions := metrics.Champions(deltas)
	require.Len(t, champions, 3)
	assert.Equal(t, "a", champions[0].ProductID)
	assert.Equal(t, "c", champions[2].ProductID)

	offenders := metrics.Offenders(deltas)
	require.Len(t, offenders, 3)
	assert.Equal(t, "h", offenders[0].ProductID, "el peor delta encabeza los ofensores")
	assert.Equal(t, "f", offenders[2].ProductID)
}

// TestBreakevenFor_Centinela con utilidad bruta no positiva el punto de
// equilibrio reporta "no alcanzable", jamás unidades negativas o infinitas.
func TestBreakevenFor_Centinela(t *testing.T) {
	product := testProduct("p1", entity.Campaign{ID: "c1", Name: "C"})
	index := map[string]*entity.Product{"p1": product}

	// Gasto publicitario enorme: 10 unidades * 100 = 1000 de ingreso contra
	// 10000/5=2000 de publicidad + 400 de COGS.
	entry := subEntry("p1", "2026-03-10", "12:00",
		entity.CampaignEntry{CampaignID: "c1", Name: "C", AdSpend: dec("10000"), Orders: 8})
	totals := metrics.CalculatePeriod([]entity.DailyEntry{entry}, index, testSettings())
	require.True(t, totals.GrossProfit().IsNegative())

	be := metrics.BreakevenFor(totals)
	assert.False(t, be.Achievable, "margen unitario <= 0 no alcanza equilibrio")
	assert.True(t, be.Units.IsZero(), "el centinela no expone un número de unidades")
	assert.True(t, be.GapSales.Equal(dec("1400")), "inversión 2400 - ventas 1000")
}

// TestBreakevenFor_Alcanzable margen positivo produce unidades redondeadas
// hacia arriba.
func TestBreakevenFor_Alcanzable(t *testing.T) {
	product := testProduct("p1", entity.Campaign{ID: "c1", Name: "C"})
	index := map[string]*entity.Product{"p1": product}

	entry := subEntry("p1", "2026-03-10", "12:00",
		entity.CampaignEntry{CampaignID: "c1", Name: "C", AdSpend: dec("200"), Orders: 8})
	totals := metrics.CalculatePeriod([]entity.DailyEntry{entry}, index, testSettings())

	be := metrics.BreakevenFor(totals)
	require.True(t, be.Achievable)
	// Inversión = 400 COGS + 40 publicidad = 440; margen unitario = 560/10 = 56.
	assert.True(t, be.UnitMargin.Equal(dec("56")))
	assert.True(t, be.Units.Equal(dec("8")), "ceil(440/56) = ceil(7.857) = 8, fue %s", be.Units)
}

// TestProductProfitabilityBreakdown el desglose omite productos sin ventas y
// respeta el subconjunto de ids solicitado.
func TestProductProfitabilityBreakdown(t *testing.T) {
	p1 := testProduct("p1", entity.Campaign{ID: "c1", Name: "C1"})
	p2 := testProduct("p2")
	p3 := testProduct("p3") // sin registros en la ventana
	products := []*entity.Product{p1, p2, p3}

	entries := []entity.DailyEntry{
		subEntry("p1", "2026-03-10", "12:00",
			entity.CampaignEntry{CampaignID: "c1", Name: "C1", AdSpend: dec("100"), Orders: 4}),
		subEntry("p2", "2026-03-10", "13:00"),
	}

	rows := metrics.ProductProfitabilityBreakdown(entries, products, nil, testSettings())
	require.Len(t, rows, 2, "p3 sin unidades vendidas se omite")

	assert.Equal(t, "p1", rows[0].ProductID)
	assert.True(t, rows[0].TotalRevenue.Equal(dec("1000")))
	assert.True(t, rows[0].TotalAdSpend.Equal(dec("20")), "100 / tasa 5")
	assert.True(t, rows[0].NetProfit.Equal(dec("580")), "1000 - 400 - 20")
	assert.True(t, rows[0].ProfitMargin.Equal(dec("58")))

	// Subconjunto explícito
	only := metrics.ProductProfitabilityBreakdown(entries, products, []string{"p2"}, testSettings())
	require.Len(t, only, 1)
	assert.Equal(t, "p2", only[0].ProductID)
}

// TestCampaignPerformanceBreakdown_Proporcional las unidades del registro se
// reparten entre campañas según su fracción de órdenes, y campañas homónimas
// de productos distintos se funden por nombre.
func TestCampaignPerformanceBreakdown_Proporcional(t *testing.T) {
	p1 := testProduct("p1",
		entity.Campaign{ID: "c1", Name: "Remarketing"},
		entity.Campaign{ID: "c2", Name: "Prospecting"})
	index := map[string]*entity.Product{"p1": p1}

	// 10 unidades, 8 órdenes: c1 aporta 6 órdenes (75%), c2 aporta 2 (25%).
	entry := subEntry("p1", "2026-03-10", "12:00",
		entity.CampaignEntry{CampaignID: "c1", Name: "Remarketing", AdSpend: dec("300"), Orders: 6},
		entity.CampaignEntry{CampaignID: "c2", Name: "Prospecting", AdSpend: dec("100"), Orders: 2},
	)

	rows := metrics.CampaignPerformanceBreakdown([]entity.DailyEntry{entry}, index, testSettings())
	require.Len(t, rows, 2)

	remarketing := rows[0]
	assert.Equal(t, "Remarketing", remarketing.Name)
	assert.True(t, remarketing.TotalSales.Equal(dec("750")), "7.5 unidades asignadas * 100")
	assert.True(t, remarketing.TotalAdSpend.Equal(dec("60")), "300 / tasa 5")
	assert.True(t, remarketing.TotalOrders.Equal(dec("6")), "órdenes efectivas con tasa 100%%")
	assert.True(t, remarketing.ROAS.Equal(dec("12.5")), "750 / 60")
}

// TestCampaignPerformanceBreakdown_OrdenesCero con cero órdenes en el registro
// la campaña no recibe unidades (división segura), pero su gasto sí acumula.
func TestCampaignPerformanceBreakdown_OrdenesCero(t *testing.T) {
	p1 := testProduct("p1", entity.Campaign{ID: "c1", Name: "C"})
	index := map[string]*entity.Product{"p1": p1}

	entry := subEntry("p1", "2026-03-10", "12:00",
		entity.CampaignEntry{CampaignID: "c1", Name: "C", AdSpend: dec("100"), Orders: 0})
	entry.TotalOrders = 0

	rows := metrics.CampaignPerformanceBreakdown([]entity.DailyEntry{entry}, index, testSettings())
	require.Len(t, rows, 1)
	assert.True(t, rows[0].TotalSales.IsZero(), "sin órdenes no hay unidades asignadas")
	assert.True(t, rows[0].TotalAdSpend.Equal(dec("20")), "el gasto se conserva")
	assert.True(t, rows[0].CPO.IsZero(), "división segura con cero órdenes efectivas")
}

// TestSalesByDate_SerieOrdenada la serie de ventas por fecha sale en orden
// cronológico.
func TestSalesByDate_SerieOrdenada(t *testing.T) {
	index := map[string]*entity.Product{"p1": testProduct("p1")}
	entries := []entity.DailyEntry{
		subEntry("p1", "2026-03-12", "12:00"),
		subEntry("p1", "2026-03-10", "12:00"),
		subEntry("p1", "2026-03-11", "12:00"),
	}

	series := metrics.SalesByDate(entries, index, testSettings())
	require.Len(t, series, 3)
	assert.Equal(t, "2026-03-10", series[0].Date)
	assert.Equal(t, "2026-03-12", series[2].Date)
	assert.True(t, series[0].Sales.Equal(dec("1000")))
}
