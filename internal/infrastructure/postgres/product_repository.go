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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// El roster de campañas vive en la columna JSONB campaigns: las campañas no
// tienen ciclo de vida propio fuera del producto.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, selling_price_per_unit, cost_per_unit, delivery_rate,
	other_fixed_costs_per_unit, max_cpo, season, gender, category_id, campaigns,
	initial_stock, low_stock_threshold, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SellingPricePerUnit, product.CostPerUnit,
		product.DeliveryRate, product.OtherFixedCostsPerUnit, product.MaxCPO,
		product.Season, product.Gender, product.CategoryID, product.Campaigns,
		product.InitialStock, product.LowStockThreshold, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List lista el catálogo completo en orden de creación.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Update reemplaza los campos editables del producto, campañas incluidas.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, selling_price_per_unit = $3, cost_per_unit = $4,
			delivery_rate = $5, other_fixed_costs_per_unit = $6, max_cpo = $7,
			season = $8, gender = $9, category_id = $10, campaigns = $11,
			initial_stock = $12, low_stock_threshold = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SellingPricePerUnit, product.CostPerUnit,
		product.DeliveryRate, product.OtherFixedCostsPerUnit, product.MaxCPO,
		product.Season, product.Gender, product.CategoryID, product.Campaigns,
		product.InitialStock, product.LowStockThreshold, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina el producto; sus registros diarios caen por la FK ON DELETE
// CASCADE de daily_entries.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.SellingPricePerUnit, &p.CostPerUnit, &p.DeliveryRate,
		&p.OtherFixedCostsPerUnit, &p.MaxCPO, &p.Season, &p.Gender, &p.CategoryID,
		&p.Campaigns, &p.InitialStock, &p.LowStockThreshold, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
