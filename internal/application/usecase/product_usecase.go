package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cod-metrics-api/internal/application/dto"
	"github.com/jhoicas/cod-metrics-api/internal/domain"
	"github.com/jhoicas/cod-metrics-api/internal/domain/entity"
	"github.com/jhoicas/cod-metrics-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos y sus campañas.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. El roster de campañas inicia vacío.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || !in.SellingPricePerUnit.IsPositive() || in.CostPerUnit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if !validSeason(in.Season) || !validGender(in.Gender) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:                     uuid.New().String(),
		Name:                   in.Name,
		SellingPricePerUnit:    in.SellingPricePerUnit,
		CostPerUnit:            in.CostPerUnit,
		DeliveryRate:           in.DeliveryRate,
		OtherFixedCostsPerUnit: in.OtherFixedCostsPerUnit,
		MaxCPO:                 in.MaxCPO,
		Season:                 entity.Season(in.Season),
		Gender:                 entity.Gender(in.Gender),
		CategoryID:             in.CategoryID,
		Campaigns:              []entity.Campaign{},
		InitialStock:           in.InitialStock,
		LowStockThreshold:      in.LowStockThreshold,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto; los campos nil del request no se tocan.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.SellingPricePerUnit != nil {
		if !in.SellingPricePerUnit.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		product.SellingPricePerUnit = *in.SellingPricePerUnit
	}
	if in.CostPerUnit != nil {
		if in.CostPerUnit.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.CostPerUnit = *in.CostPerUnit
	}
	if in.DeliveryRate != nil {
		product.DeliveryRate = in.DeliveryRate
	}
	if in.OtherFixedCostsPerUnit != nil {
		product.OtherFixedCostsPerUnit = in.OtherFixedCostsPerUnit
	}
	if in.MaxCPO != nil {
		product.MaxCPO = in.MaxCPO
	}
	if in.Season != nil {
		if !validSeason(*in.Season) {
			return nil, domain.ErrInvalidInput
		}
		product.Season = entity.Season(*in.Season)
	}
	if in.Gender != nil {
		if !validGender(*in.Gender) {
			return nil, domain.ErrInvalidInput
		}
		product.Gender = entity.Gender(*in.Gender)
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.InitialStock != nil {
		product.InitialStock = in.InitialStock
	}
	if in.LowStockThreshold != nil {
		product.LowStockThreshold = in.LowStockThreshold
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista el catálogo completo.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Products: items, Total: len(items)}, nil
}

// Delete elimina un producto; sus registros diarios caen en cascada.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// AddCampaign agrega una campaña al roster del producto. El nombre no puede
// repetirse dentro del mismo producto (comparación sin mayúsculas).
func (uc *ProductUseCase) AddCampaign(productID string, in dto.AddCampaignRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if product.HasCampaignNamed(in.Name) {
		return nil, domain.ErrDuplicate
	}
	product.Campaigns = append(product.Campaigns, entity.Campaign{
		ID:   uuid.New().String(),
		Name: in.Name,
	})
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// RemoveCampaign quita una campaña del roster. Los registros históricos que la
// referencian no se tocan; la consolidación la filtrará al re-derivar.
func (uc *ProductUseCase) RemoveCampaign(productID, campaignID string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if product.CampaignByID(campaignID) == nil {
		return nil, domain.ErrNotFound
	}
	kept := make([]entity.Campaign, 0, len(product.Campaigns)-1)
	for _, c := range product.Campaigns {
		if c.ID != campaignID {
			kept = append(kept, c)
		}
	}
	product.Campaigns = kept
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func validSeason(s string) bool {
	switch entity.Season(s) {
	case entity.SeasonSummer, entity.SeasonWinter, entity.SeasonAllSeasons:
		return true
	}
	return false
}

func validGender(g string) bool {
	switch entity.Gender(g) {
	case entity.GenderWomen, entity.GenderMen, entity.GenderKids:
		return true
	}
	return false
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	campaigns := p.Campaigns
	if campaigns == nil {
		campaigns = []entity.Campaign{}
	}
	return &dto.ProductResponse{
		ID:                     p.ID,
		Name:                   p.Name,
		SellingPricePerUnit:    p.SellingPricePerUnit,
		CostPerUnit:            p.CostPerUnit,
		DeliveryRate:           p.DeliveryRate,
		OtherFixedCostsPerUnit: p.OtherFixedCostsPerUnit,
		MaxCPO:                 p.MaxCPO,
		Season:                 string(p.Season),
		Gender:                 string(p.Gender),
		CategoryID:             p.CategoryID,
		Campaigns:              campaigns,
		InitialStock:           p.InitialStock,
		LowStockThreshold:      p.LowStockThreshold,
	}
}
