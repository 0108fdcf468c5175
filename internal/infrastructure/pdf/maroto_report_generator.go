// Package pdf implementa la exportación del reporte de ventas COD como
// documento A4 con Maroto v2.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + rango de fechas                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Ventas / Publicidad / COGS / Utilidad              │
//	│  RAZONES: ROI / ROAS / CPO / CPS / AOV / UPT                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ventas por fecha (si la sección está activa)         │
//	│  TABLA: rentabilidad por producto                            │
//	│  TABLA: desempeño por campaña                                │
//	│  DISTRIBUCIÓN: tamaños de orden                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cod-metrics-api/internal/application/analytics"
	"github.com/jhoicas/cod-metrics-api/internal/application/dto"
	"github.com/jhoicas/cod-metrics-api/internal/domain/metrics"
)

var (
	colorPrimary = &props.Color{Red: 15, Green: 82, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ analytics.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa analytics.ReportPDFGenerator con Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Generate renderiza el reporte y devuelve los bytes del PDF.
func (g *MarotoReportGenerator) Generate(report *dto.ReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if report.Totals != nil {
		m.AddRows(totalsRows(report.Totals)...)
	}
	if report.Ratios != nil {
		m.AddRows(ratiosRow(report.Ratios))
	}

	if len(report.SalesChart) > 0 {
		m.AddRows(sectionTitle("Ventas por fecha"))
		m.AddRows(salesChartRows(report.SalesChart)...)
	}
	if len(report.ProductBreakdown) > 0 {
		m.AddRows(sectionTitle("Rentabilidad por producto"))
		m.AddRows(productRows(report)...)
	}
	if len(report.CampaignBreakdown) > 0 {
		m.AddRows(sectionTitle("Desempeño por campaña"))
		m.AddRows(campaignRows(report)...)
	}
	if len(report.OrderDistribution) > 0 {
		m.AddRows(sectionTitle("Distribución de tamaños de orden"))
		m.AddRows(distributionRow(report.OrderDistribution))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func money(v decimal.Decimal) string { return "$" + v.StringFixed(2) }

// headerRow: título (izq) y rango de fechas (der).
func headerRow(report *dto.ReportDTO) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+report.GeneratedAt, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(report.Period.StartDate+" a "+report.Period.EndDate, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
		})),
	)
}

// totalsRows: los totales absolutos en dos filas de cuatro celdas.
func totalsRows(totals *dto.ReportTotalsDTO) []core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
		)
	}
	return []core.Row{
		row.New(12).Add(
			cell("Ventas totales", money(totals.TotalSales)),
			cell("Gasto publicitario", money(totals.TotalAdSpend)),
			cell("Costo de mercancía", money(totals.TotalCOGS)),
			cell("Utilidad bruta", money(totals.GrossProfit)),
		),
		row.New(12).Add(
			cell("Órdenes registradas", fmt.Sprintf("%d", totals.TotalOrders)),
			cell("Unidades registradas", fmt.Sprintf("%d", totals.TotalUnitsSold)),
			cell("Órdenes efectivas", totals.EffectiveOrders.StringFixed(1)),
			cell("Unidades efectivas", totals.EffectiveUnits.StringFixed(1)),
		),
	}
}

// ratiosRow: las razones derivadas en una fila compacta.
func ratiosRow(ratios *dto.ReportRatiosDTO) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 9, Top: 5}),
		)
	}
	return row.New(12).Add(
		cell("ROI", ratios.ROI.StringFixed(1)+"%"),
		cell("ROAS", ratios.ROAS.StringFixed(2)),
		cell("CPO", money(ratios.CPO)),
		cell("CPS", money(ratios.CPS)),
		cell("AOV", money(ratios.AOV)),
		cell("UPT", ratios.UPT.StringFixed(2)),
	)
}

func tableHeader(cells ...core.Col) core.Row {
	return row.New(7).Add(cells...)
}

func th(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
	}))
}

func td(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1,
	}))
}

// salesChartRows: la serie de ventas diarias como tabla de dos columnas.
func salesChartRows(series []metrics.DatedSales) []core.Row {
	rows := []core.Row{tableHeader(
		th("Fecha", 6, align.Left),
		th("Ventas", 6, align.Right),
	)}
	for _, point := range series {
		rows = append(rows, row.New(6).Add(
			td(point.Date, 6, align.Left),
			td(money(point.Sales), 6, align.Right),
		))
	}
	return rows
}

// productRows: tabla de rentabilidad por producto.
func productRows(report *dto.ReportDTO) []core.Row {
	rows := []core.Row{tableHeader(
		th("Producto", 4, align.Left),
		th("Unid.", 1, align.Center),
		th("Ingresos", 2, align.Right),
		th("Publicidad", 2, align.Right),
		th("Utilidad", 2, align.Right),
		th("Margen", 1, align.Right),
	)}
	for _, p := range report.ProductBreakdown {
		rows = append(rows, row.New(6).Add(
			td(p.ProductName, 4, align.Left),
			td(fmt.Sprintf("%d", p.UnitsSold), 1, align.Center),
			td(money(p.TotalRevenue), 2, align.Right),
			td(money(p.TotalAdSpend), 2, align.Right),
			td(money(p.NetProfit), 2, align.Right),
			td(p.ProfitMargin.StringFixed(1)+"%", 1, align.Right),
		))
	}
	return rows
}

// campaignRows: tabla de desempeño por campaña.
func campaignRows(report *dto.ReportDTO) []core.Row {
	rows := []core.Row{tableHeader(
		th("Campaña", 4, align.Left),
		th("Ventas", 2, align.Right),
		th("Publicidad", 2, align.Right),
		th("CPO", 2, align.Right),
		th("ROAS", 2, align.Right),
	)}
	for _, c := range report.CampaignBreakdown {
		rows = append(rows, row.New(6).Add(
			td(c.Name, 4, align.Left),
			td(money(c.TotalSales), 2, align.Right),
			td(money(c.TotalAdSpend), 2, align.Right),
			td(money(c.CPO), 2, align.Right),
			td(c.ROAS.StringFixed(2), 2, align.Right),
		))
	}
	return rows
}

// distributionRow: los cuatro buckets de tamaño de orden en una fila.
func distributionRow(buckets []dto.OrderDistributionBucketDTO) core.Row {
	cells := make([]core.Col, 0, len(buckets))
	for _, b := range buckets {
		cells = append(cells, col.New(3).Add(
			text.New(b.Label+" unidad(es)", props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(b.Percent.StringFixed(1)+"%", props.Text{Style: fontstyle.Bold, Size: 9, Top: 5}),
		))
	}
	return row.New(12).Add(cells...)
}
