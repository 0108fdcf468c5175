package repository

import "github.com/jhoicas/cod-metrics-api/internal/domain/entity"

// EntryRepository puerto de persistencia para registros diarios.
//
// El motor de métricas consume snapshots completos; List devuelve los
// registros ordenados por (fecha, hora) ascendente para que la consolidación
// sea determinista.
type EntryRepository interface {
	Create(entry *entity.DailyEntry) error
	CreateBatch(entries []*entity.DailyEntry) error
	GetByID(id string) (*entity.DailyEntry, error)
	List() ([]*entity.DailyEntry, error)
	ListByProduct(productID string) ([]*entity.DailyEntry, error)
	Update(entry *entity.DailyEntry) error
	Delete(id string) error
}
