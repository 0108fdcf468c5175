package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cod-metrics-api/internal/domain/entity"
)

// groupKey identifica un grupo de consolidación: un producto en una fecha.
type groupKey struct {
	productID string
	date      string
}

type entryGroup struct {
	finals []entity.DailyEntry
	subs   []entity.DailyEntry
}

// Consolidate reduce los registros crudos a lo sumo un registro efectivo por
// (producto, fecha).
//
// Reglas:
//  1. Si el grupo tiene registros Final, cada Final se emite tal cual: es el
//     cierre autoritativo del día. Varios Final para el mismo grupo son una
//     anomalía de captura conocida; se propagan todos sin corregir, lo que
//     puede duplicar conteos aguas abajo.
//  2. Sin Final, la base dimensional (fecha, hora, canal, unidades, órdenes)
//     es el Sub con hora lexicográficamente mayor, pero el gasto y las órdenes
//     por campaña se SUMAN entre todos los Sub del grupo, porque cada corte
//     parcial reporta solo una porción incremental de la actividad.
//  3. La lista de campañas resultante se rederiva del roster actual del
//     producto: campañas sumadas que ya no pertenecen al producto se
//     descartan y campañas con cero gasto y cero órdenes se filtran. Si el
//     producto ya no existe en el catálogo, la lista queda vacía.
//
// La función es pura e idempotente: consolidar un conjunto ya consolidado
// devuelve los mismos registros.
func Consolidate(entries []entity.DailyEntry, productsByID map[string]*entity.Product) []entity.DailyEntry {
	groups := make(map[groupKey]*entryGroup)
	order := make([]groupKey, 0, len(entries))

	for _, e := range entries {
		key := groupKey{productID: e.ProductID, date: e.Date}
		g, ok := groups[key]
		if !ok {
			g = &entryGroup{}
			groups[key] = g
			order = append(order, key)
		}
		if e.EntryType == entity.EntryFinal {
			g.finals = append(g.finals, e)
		} else {
			g.subs = append(g.subs, e)
		}
	}

	effective := make([]entity.DailyEntry, 0, len(order))
	for _, key := range order {
		g := groups[key]
		if len(g.finals) > 0 {
			effective = append(effective, g.finals...)
			continue
		}
		if len(g.subs) == 0 {
			continue
		}
		effective = append(effective, consolidateSubs(g.subs, productsByID[key.productID]))
	}
	return effective
}

// consolidateSubs funde los cortes parciales de un día en un registro efectivo.
func consolidateSubs(subs []entity.DailyEntry, product *entity.Product) entity.DailyEntry {
	// Base dimensional: el Sub con hora HH:MM lexicográficamente mayor.
	// La comparación es de strings con cero a la izquierda, no de horas.
	base := subs[0]
	for _, s := range subs[1:] {
		if s.Time > base.Time {
			base = s
		}
	}

	type campaignTotal struct {
		adSpend decimal.Decimal
		orders  int
	}
	totals := make(map[string]campaignTotal)
	for _, s := range subs {
		for _, c := range s.Campaigns {
			t := totals[c.CampaignID]
			t.adSpend = t.adSpend.Add(c.AdSpend)
			t.orders += c.Orders
			totals[c.CampaignID] = t
		}
	}

	consolidated := base
	consolidated.Campaigns = nil
	if product == nil {
		return consolidated
	}

	// Rederivar desde el roster vigente del producto: referencias a campañas
	// ya desvinculadas se pierden aquí, nunca producen error.
	for _, pc := range product.Campaigns {
		t := totals[pc.ID]
		if t.adSpend.IsZero() && t.orders == 0 {
			continue
		}
		consolidated.Campaigns = append(consolidated.Campaigns, entity.CampaignEntry{
			CampaignID: pc.ID,
			Name:       pc.Name,
			AdSpend:    t.adSpend,
			Orders:     t.orders,
		})
	}
	return consolidated
}
