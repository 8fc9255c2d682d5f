// Package webclient holds the browser-facing half of the booking flow: a
// typed API client, the reachability resolver with its fallback catalog, the
// booking form state machine and the pricing preview. The preview mirrors the
// server's pricing engine exactly; the server recomputes on submit and its
// figure wins.
package webclient

import (
	"github.com/shopspring/decimal"

	"harvesthub/internal/domain"
)

// Item is the common list-item shape every catalog source projects into.
// One total mapping function per source representation; no field-presence
// sniffing at call sites.
type Item struct {
	Kind           domain.EntityKind `json:"kind"`
	ID             int64             `json:"id"`
	Title          string            `json:"title"`
	Price          decimal.Decimal   `json:"price"`
	IsFree         bool              `json:"is_free"`
	Date           string            `json:"date"`
	Time           string            `json:"time"`
	Location       string            `json:"location"`
	AvailableSpots int               `json:"available_spots"`
	Category       string            `json:"category"`
}

func FromWorkshop(w domain.Workshop) Item {
	return Item{
		Kind:           domain.KindWorkshop,
		ID:             w.ID,
		Title:          w.Title,
		Price:          w.Price,
		Date:           w.Date,
		Time:           w.Time,
		Location:       w.Location,
		AvailableSpots: w.AvailableSpots(),
		Category:       w.Category,
	}
}

func FromEvent(e domain.Event) Item {
	return Item{
		Kind:     domain.KindEvent,
		ID:       e.ID,
		Title:    e.Title,
		Price:    e.Price,
		IsFree:   e.IsFree,
		Date:     e.Date,
		Time:     e.Time,
		Location: e.Location,
		Category: e.Category,
	}
}

func FromProduct(p domain.Product) Item {
	return Item{
		Kind:     domain.KindProduct,
		ID:       p.ID,
		Title:    p.Name,
		Price:    p.Price,
		Category: p.Category,
	}
}
