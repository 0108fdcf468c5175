// Package analytics contiene los casos de uso de lectura del panel de
// métricas COD y de los reportes de rango fijo. No escribe nada: consume
// snapshots de los repositorios y delega el cálculo al dominio.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cod-metrics-api/internal/application/dto"
	"github.com/jhoicas/cod-metrics-api/internal/domain/entity"
	"github.com/jhoicas/cod-metrics-api/internal/domain/metrics"
	"github.com/jhoicas/cod-metrics-api/internal/domain/repository"
)

// DashboardUseCase construye la respuesta completa del dashboard: KPIs con
// tendencia, eficiencia publicitaria, rentabilidad, metas y alertas.
type DashboardUseCase struct {
	products repository.ProductRepository
	entries  repository.EntryRepository
	settings repository.SettingsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	products repository.ProductRepository,
	entries repository.EntryRepository,
	settings repository.SettingsRepository,
) *DashboardUseCase {
	return &DashboardUseCase{products: products, entries: entries, settings: settings}
}

// snapshot datos base de una consulta analítica: catálogo, registros ya
// consolidados y configuración.
type snapshot struct {
	products     []*entity.Product
	productsByID map[string]*entity.Product
	consolidated []entity.DailyEntry
	settings     *entity.Settings
}

// loadSnapshot trae catálogo, registros y configuración en paralelo y
// consolida los registros una sola vez (la consolidación agrupa por producto
// y fecha, así que no depende de la ventana consultada).
func (uc *DashboardUseCase) loadSnapshot(ctx context.Context) (*snapshot, error) {
	type productsResult struct {
		items []*entity.Product
		err   error
	}
	type entriesResult struct {
		items []*entity.DailyEntry
		err   error
	}
	type settingsResult struct {
		settings *entity.Settings
		err      error
	}

	productsCh := make(chan productsResult, 1)
	entriesCh := make(chan entriesResult, 1)
	settingsCh := make(chan settingsResult, 1)

	go func() {
		items, err := uc.products.List()
		productsCh <- productsResult{items, err}
	}()
	go func() {
		items, err := uc.entries.List()
		entriesCh <- entriesResult{items, err}
	}()
	go func() {
		s, err := uc.settings.Get()
		settingsCh <- settingsResult{s, err}
	}()

	products := <-productsCh
	entries := <-entriesCh
	settings := <-settingsCh

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: catálogo: %w", products.err)
	}
	if entries.err != nil {
		return nil, fmt.Errorf("dashboard: registros: %w", entries.err)
	}
	if settings.err != nil {
		return nil, fmt.Errorf("dashboard: configuración: %w", settings.err)
	}

	index := metrics.ProductIndex(products.items)
	raw := make([]entity.DailyEntry, 0, len(entries.items))
	for _, e := range entries.items {
		raw = append(raw, *e)
	}
	return &snapshot{
		products:     products.items,
		productsByID: index,
		consolidated: metrics.Consolidate(raw, index),
		settings:     settings.settings,
	}, nil
}

// GetDashboard arma el panel para los filtros solicitados.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, req dto.DashboardRequest) (*dto.DashboardDTO, error) {
	snap, err := uc.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	window := metrics.ResolveRange(
		metrics.TimeFilter(req.TimeFilter),
		metrics.CustomRange{Start: req.StartDate, End: req.EndDate},
		now,
	)
	filter := metrics.EntryFilter{
		Range:     window,
		ProductID: req.ProductID,
		Source:    entity.Source(req.Source),
		Season:    metrics.SeasonFilter(req.Season),
	}
	current := metrics.FilterEntries(snap.consolidated, snap.productsByID, filter)
	totals := metrics.CalculatePeriod(current, snap.productsByID, snap.settings)

	// Ventana de comparación (misma duración, mismos filtros no temporales).
	var (
		prevTotals metrics.PeriodTotals
		prevPeriod *dto.PeriodDTO
		compare    bool
	)
	if prevWindow, ok := window.Comparison(metrics.ComparisonFilter(req.Comparison)); ok {
		prevFilter := filter
		prevFilter.Range = prevWindow
		previous := metrics.FilterEntries(snap.consolidated, snap.productsByID, prevFilter)
		prevTotals = metrics.CalculatePeriod(previous, snap.productsByID, snap.settings)
		prevPeriod = &dto.PeriodDTO{
			StartDate: prevWindow.Start.Format("2006-01-02"),
			EndDate:   prevWindow.End.Format("2006-01-02"),
		}
		compare = true
	}

	deltas := metrics.SpendVsRevenueShare(totals, snap.productsByID)

	out := &dto.DashboardDTO{
		Period: dto.PeriodDTO{
			StartDate: window.Start.Format("2006-01-02"),
			EndDate:   window.End.Format("2006-01-02"),
		},
		ComparisonPeriod: prevPeriod,
		KPIs:             buildKPIs(totals, prevTotals, compare),
		AdEfficiency: dto.AdEfficiencyDTO{
			ROAS:            totals.ROAS(),
			AdIntensity:     metrics.SafePercent(totals.TotalAdSpend, totals.TotalSales),
			ProfitPerAdUnit: metrics.SafeDivide(totals.GrossProfit(), totals.TotalAdSpend),
			Champions:       metrics.Champions(deltas),
			Offenders:       metrics.Offenders(deltas),
		},
		Profitability: dto.ProfitabilitySummaryDTO{
			GrossProfitPerOrder: metrics.SafeDivide(totals.GrossProfit(), totals.EffectiveOrders),
			GrossProfitPerUnit:  metrics.SafeDivide(totals.GrossProfit(), totals.EffectiveUnits),
			Breakeven:           metrics.BreakevenFor(totals),
		},
		Goals:             uc.buildGoals(snap, now),
		OrderDistribution: orderDistribution(snap.settings),
		ProductSales:      productSalesComparison(snap, totals, prevTotals, compare),
		ProductBreakdown:  metrics.ProductProfitabilityBreakdown(current, snap.products, nil, snap.settings),
		CampaignBreakdown: metrics.CampaignPerformanceBreakdown(current, snap.productsByID, snap.settings),
		CPOAlerts:         cpoAlerts(current, snap.productsByID, snap.settings),
		StockAlerts:       stockAlerts(snap),
	}
	return out, nil
}

// buildKPIs los diez indicadores del panel. IsPositiveGood marca los KPIs
// donde subir es bueno; en gasto publicitario, CPO y CPS es al revés.
func buildKPIs(totals, previous metrics.PeriodTotals, compare bool) []dto.KPIDTO {
	trend := func(current, prev decimal.Decimal) metrics.Trend {
		if !compare {
			zero := decimal.Zero
			return metrics.Trend{Value: &zero, Direction: metrics.TrendNeutral}
		}
		return metrics.TrendBetween(current, prev)
	}

	orders := decimal.NewFromInt(int64(totals.TotalOrdersInput))
	prevOrders := decimal.NewFromInt(int64(previous.TotalOrdersInput))
	units := decimal.NewFromInt(int64(totals.TotalUnitsSoldInput))
	prevUnits := decimal.NewFromInt(int64(previous.TotalUnitsSoldInput))

	return []dto.KPIDTO{
		{
			Key:            "total_orders",
			Title:          "Órdenes totales",
			Value:          orders,
			Formatted:      formatNumber(orders),
			SubValue:       formatNumber(totals.EffectiveOrders) + " efectivas",
			Trend:          trend(orders, prevOrders),
			IsPositiveGood: true,
		},
		{
			Key:            "total_units_sold",
			Title:          "Unidades vendidas",
			Value:          units,
			Formatted:      formatNumber(units),
			Trend:          trend(units, prevUnits),
			IsPositiveGood: true,
		},
		{
			Key:            "total_ad_spend",
			Title:          "Gasto publicitario",
			Value:          totals.TotalAdSpend,
			Formatted:      formatMoney(totals.TotalAdSpend),
			SubValue:       formatNumber(totals.TotalAdSpendSecondary) + " en moneda secundaria",
			Trend:          trend(totals.TotalAdSpend, previous.TotalAdSpend),
			IsPositiveGood: false,
		},
		{
			Key:            "applied_delivery_rate",
			Title:          "Tasa de entrega aplicada",
			Value:          totals.AppliedDeliveryRate(),
			Formatted:      formatPercent(totals.AppliedDeliveryRate()),
			Trend:          trend(totals.AppliedDeliveryRate(), previous.AppliedDeliveryRate()),
			IsPositiveGood: true,
		},
		{
			Key:            "total_sales",
			Title:          "Ventas totales",
			Value:          totals.TotalSales,
			Formatted:      formatMoney(totals.TotalSales),
			Trend:          trend(totals.TotalSales, previous.TotalSales),
			IsPositiveGood: true,
		},
		{
			Key:            "gross_profit",
			Title:          "Utilidad bruta",
			Value:          totals.GrossProfit(),
			Formatted:      formatMoney(totals.GrossProfit()),
			Trend:          trend(totals.GrossProfit(), previous.GrossProfit()),
			IsPositiveGood: true,
		},
		{
			Key:            "roi",
			Title:          "ROI",
			Value:          totals.ROI(),
			Formatted:      formatPercent(totals.ROI()),
			Trend:          trend(totals.ROI(), previous.ROI()),
			IsPositiveGood: true,
		},
		{
			Key:            "cpo",
			Title:          "Costo por orden",
			Value:          totals.CPO(),
			Formatted:      formatMoney(totals.CPO()),
			Trend:          trend(totals.CPO(), previous.CPO()),
			IsPositiveGood: false,
		},
		{
			Key:            "cps",
			Title:          "Costo por unidad",
			Value:          totals.CPS(),
			Formatted:      formatMoney(totals.CPS()),
			Trend:          trend(totals.CPS(), previous.CPS()),
			IsPositiveGood: false,
		},
		{
			Key:            "aov",
			Title:          "Valor promedio por orden",
			Value:          totals.AOV(),
			Formatted:      formatMoney(totals.AOV()),
			SubValue:       formatRatio(totals.UPT()) + " unidades por orden",
			Trend:          trend(totals.AOV(), previous.AOV()),
			IsPositiveGood: true,
		},
	}
}

// buildGoals avance del mes calendario en curso contra las metas mensuales.
// Las metas son globales: no se les aplican los filtros del panel.
func (uc *DashboardUseCase) buildGoals(snap *snapshot, now time.Time) dto.GoalsDTO {
	month := metrics.ResolveRange(metrics.TimeMonth, metrics.CustomRange{}, now)
	monthEntries := metrics.FilterEntries(snap.consolidated, snap.productsByID, metrics.EntryFilter{Range: month})
	totals := metrics.CalculatePeriod(monthEntries, snap.productsByID, snap.settings)

	// Las metas de unidades y órdenes se definen en conteos crudos, así que el
	// avance también se mide en crudo, sin descontar la tasa de entrega.
	rawUnits := decimal.NewFromInt(int64(totals.TotalUnitsSoldInput))
	rawOrders := decimal.NewFromInt(int64(totals.TotalOrdersInput))
	targetUnits := decimal.NewFromInt(int64(snap.settings.MonthlyTargetUnitsSold))
	targetOrders := decimal.NewFromInt(int64(snap.settings.MonthlyTargetOrders))
	return dto.GoalsDTO{
		Revenue: dto.GoalProgressDTO{
			Current: totals.TotalSales,
			Target:  snap.settings.MonthlyTargetRevenue,
			Percent: metrics.SafePercent(totals.TotalSales, snap.settings.MonthlyTargetRevenue),
		},
		Units: dto.GoalProgressDTO{
			Current: rawUnits,
			Target:  targetUnits,
			Percent: metrics.SafePercent(rawUnits, targetUnits),
		},
		Orders: dto.GoalProgressDTO{
			Current: rawOrders,
			Target:  targetOrders,
			Percent: metrics.SafePercent(rawOrders, targetOrders),
		},
	}
}

// orderDistribution normaliza los cuatro pesos configurados a porcentajes que
// suman 100 (los pesos se guardan libres, no tienen que sumar 100).
func orderDistribution(settings *entity.Settings) []dto.OrderDistributionBucketDTO {
	weights := []struct {
		label  string
		weight decimal.Decimal
	}{
		{"1", settings.OrderDistribution1Unit},
		{"2", settings.OrderDistribution2Units},
		{"3", settings.OrderDistribution3Units},
		{"3+", settings.OrderDistributionMoreThan3Units},
	}
	var total decimal.Decimal
	for _, w := range weights {
		total = total.Add(w.weight)
	}
	out := make([]dto.OrderDistributionBucketDTO, 0, len(weights))
	for _, w := range weights {
		out = append(out, dto.OrderDistributionBucketDTO{
			Label:   w.label,
			Percent: metrics.SafePercent(w.weight, total),
		})
	}
	return out
}

// productSalesComparison ventas por producto en la ventana actual contra la
// de comparación, en orden de catálogo. Productos sin ventas en ninguna de
// las dos ventanas se omiten.
func productSalesComparison(snap *snapshot, totals, previous metrics.PeriodTotals, compare bool) []dto.ProductSalesComparisonDTO {
	out := make([]dto.ProductSalesComparisonDTO, 0, len(snap.products))
	for _, p := range snap.products {
		current := totals.ProductSales[p.ID]
		var prev decimal.Decimal
		if compare {
			prev = previous.ProductSales[p.ID]
		}
		if current.IsZero() && prev.IsZero() {
			continue
		}
		out = append(out, dto.ProductSalesComparisonDTO{
			ProductID:     p.ID,
			ProductName:   p.Name,
			CurrentSales:  current,
			PreviousSales: prev,
		})
	}
	return out
}

// cpoAlerts campañas cuyo costo por orden efectiva superó el máximo tolerado
// del producto en un registro del período. Campañas sin órdenes no alertan
// (no hay CPO que comparar).
func cpoAlerts(entries []entity.DailyEntry, productsByID map[string]*entity.Product, settings *entity.Settings) []dto.CPOAlertDTO {
	alerts := make([]dto.CPOAlertDTO, 0)
	for _, e := range entries {
		product, ok := productsByID[e.ProductID]
		if !ok || product.MaxCPO == nil {
			continue
		}
		rate := metrics.DeliveryRateFor(product, settings)
		for _, c := range e.Campaigns {
			if c.Orders == 0 {
				continue
			}
			effOrders := decimal.NewFromInt(int64(c.Orders)).Mul(rate)
			spend := metrics.SafeDivide(c.AdSpend, settings.ExchangeRate)
			cpo := metrics.SafeDivide(spend, effOrders)
			if cpo.GreaterThan(*product.MaxCPO) {
				alerts = append(alerts, dto.CPOAlertDTO{
					Date:         e.Date,
					ProductName:  product.Name,
					CampaignName: c.Name,
					CPO:          cpo,
					MaxCPO:       *product.MaxCPO,
				})
			}
		}
	}
	return alerts
}

// stockAlerts estima el stock restante de cada producto con inventario
// inicial configurado: inicial menos unidades vendidas en todo el histórico
// consolidado (sin tasa de entrega: una unidad despachada sale de bodega
// aunque la entrega falle).
func stockAlerts(snap *snapshot) []dto.StockAlertDTO {
	soldByProduct := make(map[string]int)
	for _, e := range snap.consolidated {
		soldByProduct[e.ProductID] += e.TotalUnitsSold
	}

	alerts := make([]dto.StockAlertDTO, 0)
	for _, p := range snap.products {
		if p.InitialStock == nil || p.LowStockThreshold == nil {
			continue
		}
		current := *p.InitialStock - soldByProduct[p.ID]
		if current <= *p.LowStockThreshold {
			alerts = append(alerts, dto.StockAlertDTO{
				ProductID:         p.ID,
				ProductName:       p.Name,
				CurrentStock:      current,
				LowStockThreshold: *p.LowStockThreshold,
			})
		}
	}
	return alerts
}
