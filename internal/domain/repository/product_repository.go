package repository

import "github.com/jhoicas/cod-metrics-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos del catálogo.
// Las implementaciones devuelven (nil, nil) cuando el recurso no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// Delete elimina el producto; los registros diarios asociados se eliminan
	// en cascada (el motor nunca debe ver entradas de productos borrados).
	Delete(id string) error
}
