package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cod-metrics-api/internal/domain/entity"
)

// CampaignEntryDTO línea de campaña dentro de un registro diario. El gasto se
// captura en la moneda secundaria.
type CampaignEntryDTO struct {
	CampaignID string          `json:"campaign_id"`
	Name       string          `json:"name"`
	AdSpend    decimal.Decimal `json:"ad_spend"`
	Orders     int             `json:"orders"`
}

// CreateEntryRequest alta de un registro diario (formulario o importación).
type CreateEntryRequest struct {
	ProductID      string             `json:"product_id"`
	Date           string             `json:"date"` // YYYY-MM-DD
	Time           string             `json:"time"` // HH:MM
	EntryType      string             `json:"entry_type"` // SUB | FINAL
	Source         string             `json:"source"`     // WEBSITE | PAGE
	TotalUnitsSold int                `json:"total_units_sold"`
	TotalOrders    int                `json:"total_orders"`
	Campaigns      []CampaignEntryDTO `json:"campaigns"`
}

// BatchCreateEntriesRequest importación masiva de registros ya parseados.
type BatchCreateEntriesRequest struct {
	Entries []CreateEntryRequest `json:"entries"`
}

// EntryResponse representación de salida de un registro diario.
type EntryResponse struct {
	ID             string                 `json:"id"`
	ProductID      string                 `json:"product_id"`
	Date           string                 `json:"date"`
	Time           string                 `json:"time"`
	EntryType      string                 `json:"entry_type"`
	Source         string                 `json:"source"`
	TotalUnitsSold int                    `json:"total_units_sold"`
	TotalOrders    int                    `json:"total_orders"`
	Campaigns      []entity.CampaignEntry `json:"campaigns"`
}

// EntryListResponse listado de registros diarios.
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
	Total   int             `json:"total"`
}
