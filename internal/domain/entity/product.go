package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Season temporada comercial del producto.
type Season string

const (
	SeasonSummer     Season = "SUMMER"
	SeasonWinter     Season = "WINTER"
	SeasonAllSeasons Season = "ALL_SEASONS"
)

// Gender público objetivo del producto.
type Gender string

const (
	GenderWomen Gender = "WOMEN"
	GenderMen   Gender = "MEN"
	GenderKids  Gender = "KIDS"
)

// Campaign campaña publicitaria asociada a un producto. Su ciclo de vida
// pertenece al producto: al borrar el producto desaparecen sus campañas.
type Campaign struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product producto del catálogo contra-entrega (COD).
// DeliveryRate es un porcentaje por producto que, si está presente, reemplaza
// la tasa global de Settings. MaxCPO es el costo por orden máximo tolerado
// antes de disparar alertas.
type Product struct {
	ID                     string
	Name                   string
	SellingPricePerUnit    decimal.Decimal
	CostPerUnit            decimal.Decimal
	DeliveryRate           *decimal.Decimal // % propio; nil = usar tasa global
	OtherFixedCostsPerUnit *decimal.Decimal // costo fijo adicional por unidad
	MaxCPO                 *decimal.Decimal // umbral de alerta de CPO
	Season                 Season
	Gender                 Gender
	CategoryID             string
	Campaigns              []Campaign
	InitialStock           *int
	LowStockThreshold      *int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// CampaignByID busca una campaña del producto por id. Devuelve nil si no existe.
func (p *Product) CampaignByID(id string) *Campaign {
	for i := range p.Campaigns {
		if p.Campaigns[i].ID == id {
			return &p.Campaigns[i]
		}
	}
	return nil
}

// HasCampaignNamed indica si ya existe una campaña con ese nombre (comparación
// sin distinguir mayúsculas), para evitar duplicados al agregar.
func (p *Product) HasCampaignNamed(name string) bool {
	for _, c := range p.Campaigns {
		if strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

// Category categoría de producto (gestión en Settings).
type Category struct {
	ID   string
	Name string
}
