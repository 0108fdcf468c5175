package repository

import "github.com/jhoicas/cod-metrics-api/internal/domain/entity"

// SettingsRepository puerto para la configuración global (fila única).
// Get devuelve los valores por defecto si nunca se ha guardado nada.
type SettingsRepository interface {
	Get() (*entity.Settings, error)
	Save(settings *entity.Settings) error
}
