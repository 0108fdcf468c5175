package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType clase de registro diario.
//
//   - Sub: corte parcial/incremental durante el día (puede haber varios).
//   - Final: cierre autoritativo de fin de día (debería existir a lo sumo uno
//     por producto y fecha; si hay varios, todos se propagan tal cual).
type EntryType string

const (
	EntrySub   EntryType = "SUB"
	EntryFinal EntryType = "FINAL"
)

// Source canal de origen de las órdenes.
type Source string

const (
	SourceWebsite Source = "WEBSITE"
	SourcePage    Source = "PAGE"
)

// CampaignEntry gasto publicitario y órdenes atribuidas a una campaña dentro
// de un registro diario. AdSpend se captura en la moneda secundaria y se
// convierte a la principal dividiendo por Settings.ExchangeRate.
type CampaignEntry struct {
	CampaignID string          `json:"campaign_id"`
	Name       string          `json:"name"`
	AdSpend    decimal.Decimal `json:"ad_spend"`
	Orders     int             `json:"orders"`
}

// DailyEntry registro de ventas de un producto en una fecha.
//
// Date usa formato YYYY-MM-DD y Time formato HH:MM con cero a la izquierda;
// el desempate entre registros Sub del mismo día es comparación lexicográfica
// directa sobre Time (no se parsea como hora).
type DailyEntry struct {
	ID             string
	ProductID      string
	Date           string // YYYY-MM-DD
	Time           string // HH:MM
	EntryType      EntryType
	Source         Source
	TotalUnitsSold int
	TotalOrders    int
	Campaigns      []CampaignEntry
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DateValue parsea Date a time.Time (medianoche local). Devuelve cero si el
// formato no es válido; las capas de entrada validan el formato antes.
func (e *DailyEntry) DateValue() time.Time {
	t, _ := time.ParseInLocation("2006-01-02", e.Date, time.Local)
	return t
}

// TotalAdSpend suma el gasto publicitario de todas las campañas del registro
// (en moneda secundaria, sin convertir).
func (e *DailyEntry) TotalAdSpend() decimal.Decimal {
	total := decimal.Zero
	for _, c := range e.Campaigns {
		total = total.Add(c.AdSpend)
	}
	return total
}
