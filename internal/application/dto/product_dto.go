package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cod-metrics-api/internal/domain/entity"
)

// CreateProductRequest alta de producto en el catálogo.
type CreateProductRequest struct {
	Name                   string           `json:"name"`
	SellingPricePerUnit    decimal.Decimal  `json:"selling_price_per_unit"`
	CostPerUnit            decimal.Decimal  `json:"cost_per_unit"`
	DeliveryRate           *decimal.Decimal `json:"delivery_rate,omitempty"`             // % propio; omitido = tasa global
	OtherFixedCostsPerUnit *decimal.Decimal `json:"other_fixed_costs_per_unit,omitempty"`
	MaxCPO                 *decimal.Decimal `json:"max_cpo,omitempty"`
	Season                 string           `json:"season"`
	Gender                 string           `json:"gender"`
	CategoryID             string           `json:"category_id"`
	InitialStock           *int             `json:"initial_stock,omitempty"`
	LowStockThreshold      *int             `json:"low_stock_threshold,omitempty"`
}

// UpdateProductRequest actualización parcial; los campos nil no se tocan.
type UpdateProductRequest struct {
	Name                   *string          `json:"name,omitempty"`
	SellingPricePerUnit    *decimal.Decimal `json:"selling_price_per_unit,omitempty"`
	CostPerUnit            *decimal.Decimal `json:"cost_per_unit,omitempty"`
	DeliveryRate           *decimal.Decimal `json:"delivery_rate,omitempty"`
	OtherFixedCostsPerUnit *decimal.Decimal `json:"other_fixed_costs_per_unit,omitempty"`
	MaxCPO                 *decimal.Decimal `json:"max_cpo,omitempty"`
	Season                 *string          `json:"season,omitempty"`
	Gender                 *string          `json:"gender,omitempty"`
	CategoryID             *string          `json:"category_id,omitempty"`
	InitialStock           *int             `json:"initial_stock,omitempty"`
	LowStockThreshold      *int             `json:"low_stock_threshold,omitempty"`
}

// AddCampaignRequest agrega una campaña al roster del producto.
type AddCampaignRequest struct {
	Name string `json:"name"`
}

// ProductResponse representación de salida de un producto.
type ProductResponse struct {
	ID                     string            `json:"id"`
	Name                   string            `json:"name"`
	SellingPricePerUnit    decimal.Decimal   `json:"selling_price_per_unit"`
	CostPerUnit            decimal.Decimal   `json:"cost_per_unit"`
	DeliveryRate           *decimal.Decimal  `json:"delivery_rate,omitempty"`
	OtherFixedCostsPerUnit *decimal.Decimal  `json:"other_fixed_costs_per_unit,omitempty"`
	MaxCPO                 *decimal.Decimal  `json:"max_cpo,omitempty"`
	Season                 string            `json:"season"`
	Gender                 string            `json:"gender"`
	CategoryID             string            `json:"category_id"`
	Campaigns              []entity.Campaign `json:"campaigns"`
	InitialStock           *int              `json:"initial_stock,omitempty"`
	LowStockThreshold      *int              `json:"low_stock_threshold,omitempty"`
}

// ProductListResponse listado completo del catálogo.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

// CategoryResponse categoría de producto.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateCategoryRequest alta de categoría.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}
