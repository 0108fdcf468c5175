package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/cod-metrics-api/internal/application/dto"
	"github.com/jhoicas/cod-metrics-api/internal/domain"
	"github.com/jhoicas/cod-metrics-api/internal/domain/entity"
	"github.com/jhoicas/cod-metrics-api/internal/domain/metrics"
	"github.com/jhoicas/cod-metrics-api/internal/domain/repository"
)

const defaultReportTitle = "Reporte de ventas COD"

// ReportUseCase genera instantáneas de un rango fijo de fechas con secciones
// configurables, para consulta JSON o exportación a PDF.
type ReportUseCase struct {
	products repository.ProductRepository
	entries  repository.EntryRepository
	settings repository.SettingsRepository
	pdf      ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	products repository.ProductRepository,
	entries repository.EntryRepository,
	settings repository.SettingsRepository,
	pdf ReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{products: products, entries: entries, settings: settings, pdf: pdf}
}

// Generate arma el reporte del rango solicitado.
func (uc *ReportUseCase) Generate(ctx context.Context, req dto.ReportRequest) (*dto.ReportDTO, error) {
	start, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.ParseInLocation("2006-01-02", req.EndDate, time.Local)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}

	snap, err := uc.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	window := metrics.ResolveRange(
		metrics.TimeCustom,
		metrics.CustomRange{Start: req.StartDate, End: req.EndDate},
		time.Now(),
	)
	filter := metrics.EntryFilter{
		Range:      window,
		ProductIDs: req.ProductIDs,
		Source:     entity.Source(req.Source),
		Season:     metrics.SeasonFilter(req.Season),
	}
	selected := metrics.FilterEntries(snap.consolidated, snap.productsByID, filter)
	totals := metrics.CalculatePeriod(selected, snap.productsByID, snap.settings)

	title := req.Title
	if title == "" {
		title = defaultReportTitle
	}
	report := &dto.ReportDTO{
		Title:       title,
		Period:      dto.PeriodDTO{StartDate: req.StartDate, EndDate: req.EndDate},
		GeneratedAt: time.Now().Format(time.RFC3339),
	}

	if wantsSection(req.Sections, dto.ReportSectionSummary) {
		report.Totals = &dto.ReportTotalsDTO{
			TotalSales:      totals.TotalSales,
			TotalAdSpend:    totals.TotalAdSpend,
			TotalCOGS:       totals.TotalCOGS,
			TotalInvestment: totals.TotalInvestment(),
			GrossProfit:     totals.GrossProfit(),
			TotalOrders:     totals.TotalOrdersInput,
			TotalUnitsSold:  totals.TotalUnitsSoldInput,
			EffectiveOrders: totals.EffectiveOrders,
			EffectiveUnits:  totals.EffectiveUnits,
		}
		report.Ratios = &dto.ReportRatiosDTO{
			ROI:          totals.ROI(),
			ROAS:         totals.ROAS(),
			CPO:          totals.CPO(),
			CPS:          totals.CPS(),
			AOV:          totals.AOV(),
			UPT:          totals.UPT(),
			DeliveryRate: totals.AppliedDeliveryRate(),
		}
	}
	if wantsSection(req.Sections, dto.ReportSectionSalesChart) {
		report.SalesChart = metrics.SalesByDate(selected, snap.productsByID, snap.settings)
	}
	if wantsSection(req.Sections, dto.ReportSectionProducts) {
		report.ProductBreakdown = metrics.ProductProfitabilityBreakdown(
			selected, snap.products, req.ProductIDs, snap.settings)
	}
	if wantsSection(req.Sections, dto.ReportSectionCampaigns) {
		report.CampaignBreakdown = metrics.CampaignPerformanceBreakdown(
			selected, snap.productsByID, snap.settings)
	}
	if wantsSection(req.Sections, dto.ReportSectionDistribution) {
		report.OrderDistribution = orderDistribution(snap.settings)
	}
	return report, nil
}

// GeneratePDF genera el reporte y lo renderiza como PDF.
func (uc *ReportUseCase) GeneratePDF(ctx context.Context, req dto.ReportRequest) ([]byte, error) {
	report, err := uc.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Generate(report)
}

// loadSnapshot reutiliza la carga del dashboard (misma consolidación).
func (uc *ReportUseCase) loadSnapshot(ctx context.Context) (*snapshot, error) {
	dash := &DashboardUseCase{products: uc.products, entries: uc.entries, settings: uc.settings}
	return dash.loadSnapshot(ctx)
}

// wantsSection lista vacía = todas las secciones.
func wantsSection(sections []string, name string) bool {
	if len(sections) == 0 {
		return true
	}
	for _, s := range sections {
		if s == name {
			return true
		}
	}
	return false
}
