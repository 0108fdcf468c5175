package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cod-metrics-api/internal/domain"
	"github.com/jhoicas/cod-metrics-api/internal/domain/entity"
	"github.com/jhoicas/cod-metrics-api/internal/domain/repository"
)

var _ repository.EntryRepository = (*EntryRepo)(nil)

// EntryRepo implementación del puerto EntryRepository sobre PostgreSQL. Las
// líneas de campaña se guardan como JSONB dentro del registro: se leen y
// escriben siempre como un todo, nunca se consultan sueltas.
type EntryRepo struct {
	q Querier
}

// NewEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEntryRepository(q Querier) *EntryRepo {
	return &EntryRepo{q: q}
}

const entryColumns = `id, product_id, entry_date, entry_time, entry_type, source,
	total_units_sold, total_orders, campaigns, created_at, updated_at`

const insertEntrySQL = `
	INSERT INTO daily_entries (` + entryColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

// Create persiste un registro diario.
func (r *EntryRepo) Create(entry *entity.DailyEntry) error {
	_, err := r.q.Exec(context.Background(), insertEntrySQL, entryArgs(entry)...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// CreateBatch persiste un lote de registros en un solo round-trip (pgx.Batch).
func (r *EntryRepo) CreateBatch(entries []*entity.DailyEntry) error {
	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(insertEntrySQL, entryArgs(e)...)
	}

	br := r.q.SendBatch(context.Background(), batch)
	defer br.Close()
	for range entries {
		if _, err := br.Exec(); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("insert entry batch: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un registro por ID.
func (r *EntryRepo) GetByID(id string) (*entity.DailyEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM daily_entries WHERE id = $1`
	e, err := scanEntry(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return e, nil
}

// List lista todos los registros ordenados por (fecha, hora) para que la
// consolidación sea determinista.
func (r *EntryRepo) List() ([]*entity.DailyEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM daily_entries ORDER BY entry_date, entry_time, id`
	return r.queryEntries(query)
}

// ListByProduct lista los registros de un producto en el mismo orden.
func (r *EntryRepo) ListByProduct(productID string) ([]*entity.DailyEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM daily_entries
		WHERE product_id = $1 ORDER BY entry_date, entry_time, id`
	return r.queryEntries(query, productID)
}

// Update reemplaza el contenido del registro.
func (r *EntryRepo) Update(entry *entity.DailyEntry) error {
	query := `
		UPDATE daily_entries SET product_id = $2, entry_date = $3, entry_time = $4,
			entry_type = $5, source = $6, total_units_sold = $7, total_orders = $8,
			campaigns = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.Date, entry.Time, entry.EntryType, entry.Source,
		entry.TotalUnitsSold, entry.TotalOrders, entry.Campaigns, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	return nil
}

// Delete elimina un registro por ID.
func (r *EntryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM daily_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

func (r *EntryRepo) queryEntries(query string, args ...any) ([]*entity.DailyEntry, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.DailyEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func entryArgs(e *entity.DailyEntry) []any {
	return []any{
		e.ID, e.ProductID, e.Date, e.Time, e.EntryType, e.Source,
		e.TotalUnitsSold, e.TotalOrders, e.Campaigns, e.CreatedAt, e.UpdatedAt,
	}
}

func scanEntry(row pgx.Row) (*entity.DailyEntry, error) {
	var e entity.DailyEntry
	err := row.Scan(
		&e.ID, &e.ProductID, &e.Date, &e.Time, &e.EntryType, &e.Source,
		&e.TotalUnitsSold, &e.TotalOrders, &e.Campaigns, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
