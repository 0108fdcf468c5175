package analytics

import "github.com/jhoicas/cod-metrics-api/internal/application/dto"

// ReportPDFGenerator puerto de salida para renderizar un reporte como PDF.
// La implementación vive en infraestructura (maroto).
type ReportPDFGenerator interface {
	Generate(report *dto.ReportDTO) ([]byte, error)
}
