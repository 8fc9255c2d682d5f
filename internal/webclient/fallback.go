package webclient

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/shopspring/decimal"

	"harvesthub/internal/domain"
)

//go:embed items.json
var itemsJSON []byte

// snapshotItem is the bundled catalog's row shape. The "category" field is
// the kind discriminator (Workshop/Event/Product); "topic" carries the
// subject tag that live entities call category.
type snapshotItem struct {
	ID             int64           `json:"id"`
	Title          string          `json:"title"`
	Category       string          `json:"category"`
	Topic          string          `json:"topic"`
	Price          decimal.Decimal `json:"price"`
	IsFree         bool            `json:"isFree"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	Location       string          `json:"location"`
	AvailableSpots int             `json:"availableSpots"`
}

func fromSnapshot(s snapshotItem) (Item, bool) {
	var kind domain.EntityKind
	switch s.Category {
	case "Workshop":
		kind = domain.KindWorkshop
	case "Event":
		kind = domain.KindEvent
	case "Product":
		kind = domain.KindProduct
	default:
		return Item{}, false
	}
	spots := s.AvailableSpots
	if kind == domain.KindWorkshop && spots == 0 {
		spots = 10
	}
	return Item{
		Kind:           kind,
		ID:             s.ID,
		Title:          s.Title,
		Price:          s.Price,
		IsFree:         s.IsFree || (kind == domain.KindEvent && s.Price.IsZero()),
		Date:           s.Date,
		Time:           s.Time,
		Location:       s.Location,
		AvailableSpots: spots,
		Category:       s.Topic,
	}, true
}

// Fallback serves the bundled snapshot. Parsed once, reused for the process
// lifetime; the snapshot never changes at runtime.
type Fallback struct {
	once  sync.Once
	items []Item
	err   error
}

func NewFallback() *Fallback { return &Fallback{} }

func (f *Fallback) load() {
	var raw []snapshotItem
	if err := json.Unmarshal(itemsJSON, &raw); err != nil {
		f.err = err
		return
	}
	for _, s := range raw {
		if it, okS := fromSnapshot(s); okS {
			f.items = append(f.items, it)
		}
	}
}

// Items returns the snapshot entries of one kind.
func (f *Fallback) Items(kind domain.EntityKind) ([]Item, error) {
	f.once.Do(f.load)
	if f.err != nil {
		return nil, f.err
	}
	out := []Item{}
	for _, it := range f.items {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out, nil
}
