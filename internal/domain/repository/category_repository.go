package repository

import "github.com/jhoicas/cod-metrics-api/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías de producto.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByName(name string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Delete(id string) error
}
