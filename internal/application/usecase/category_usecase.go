package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/cod-metrics-api/internal/application/dto"
	"github.com/jhoicas/cod-metrics-api/internal/domain"
	"github.com/jhoicas/cod-metrics-api/internal/domain/entity"
	"github.com/jhoicas/cod-metrics-api/internal/domain/repository"
)

// CategoryUseCase gestión de categorías de producto.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, products repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, products: products}
}

// Create crea una categoría. El nombre es único sin distinguir mayúsculas.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.categories.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category := &entity.Category{ID: uuid.New().String(), Name: name}
	if err := uc.categories.Create(category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return items, nil
}

// Delete elimina una categoría solo si ningún producto la referencia.
func (uc *CategoryUseCase) Delete(id string) error {
	products, err := uc.products.List()
	if err != nil {
		return err
	}
	for _, p := range products {
		if p.CategoryID == id {
			return domain.ErrCategoryInUse
		}
	}
	return uc.categories.Delete(id)
}
