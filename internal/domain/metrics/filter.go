package metrics

import (
	"github.com/jhoicas/cod-metrics-api/internal/domain/entity"
)

// SeasonFilter filtro de temporada de las vistas analíticas.
type SeasonFilter string

const (
	SeasonFilterAll    SeasonFilter = "ALL"
	SeasonFilterSummer SeasonFilter = "SUMMER"
	SeasonFilterWinter SeasonFilter = "WINTER"
)

// EntryFilter criterios de selección de registros efectivos para una consulta.
//
// ProductID restringe a un solo producto (dashboard); ProductIDs a un
// subconjunto explícito (reportes). Vacíos significan "todos". Source y
// Season vacíos o "ALL" tampoco restringen.
type EntryFilter struct {
	Range      DateRange
	ProductID  string
	ProductIDs []string
	Source     entity.Source
	Season     SeasonFilter
}

// Matches evalúa un registro contra el filtro. Registros cuyo producto no
// existe en el catálogo quedan siempre excluidos (referencia colgante, no es
// error). Productos de temporada ALL_SEASONS pasan cualquier filtro de
// temporada.
func (f EntryFilter) Matches(e *entity.DailyEntry, productsByID map[string]*entity.Product) bool {
	product, ok := productsByID[e.ProductID]
	if !ok {
		return false
	}
	if !f.Range.Contains(e.DateValue()) {
		return false
	}
	if f.ProductID != "" && f.ProductID != "ALL" && e.ProductID != f.ProductID {
		return false
	}
	if len(f.ProductIDs) > 0 && !containsID(f.ProductIDs, e.ProductID) {
		return false
	}
	if f.Source != "" && f.Source != "ALL" && e.Source != f.Source {
		return false
	}
	if f.Season != "" && f.Season != SeasonFilterAll &&
		product.Season != entity.SeasonAllSeasons && string(product.Season) != string(f.Season) {
		return false
	}
	return true
}

// FilterEntries devuelve los registros que satisfacen el filtro, en el orden
// de entrada.
func FilterEntries(entries []entity.DailyEntry, productsByID map[string]*entity.Product, f EntryFilter) []entity.DailyEntry {
	filtered := make([]entity.DailyEntry, 0, len(entries))
	for i := range entries {
		if f.Matches(&entries[i], productsByID) {
			filtered = append(filtered, entries[i])
		}
	}
	return filtered
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// ProductIndex construye el índice id->producto que usan todas las funciones
// del paquete (se arma una vez por invocación, no se re-escanea por registro).
func ProductIndex(products []*entity.Product) map[string]*entity.Product {
	index := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}
	return index
}
