package webclient

import (
	"context"
	"errors"

	"harvesthub/internal/apperr"
	"harvesthub/internal/domain"
)

var apiOffline = apperr.Network(errors.New("catalog service unreachable"))

// Source is one strategy for obtaining the selectable catalog. Sources are
// evaluated in a fixed order with uniform success/failure signaling instead
// of nested failure callbacks.
type Source interface {
	Name() string
	Items(ctx context.Context, kind domain.EntityKind) ([]Item, error)
}

// LiveSource reads the live API, but only when the resolver's cached verdict
// says the API is reachable. A stale verdict costs one failed fetch at most.
type LiveSource struct {
	API      *Client
	Resolver *Resolver
}

func (s *LiveSource) Name() string { return "live" }

func (s *LiveSource) Items(ctx context.Context, kind domain.EntityKind) ([]Item, error) {
	if !s.Resolver.Online(ctx) {
		return nil, apiOffline
	}
	switch kind {
	case domain.KindWorkshop:
		ws, err := s.API.Workshops(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]Item, 0, len(ws))
		for _, w := range ws {
			out = append(out, FromWorkshop(w))
		}
		return out, nil
	case domain.KindEvent:
		evs, err := s.API.Events(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]Item, 0, len(evs))
		for _, e := range evs {
			out = append(out, FromEvent(e))
		}
		return out, nil
	default:
		ps, err := s.API.Products(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]Item, 0, len(ps))
		for _, p := range ps {
			out = append(out, FromProduct(p))
		}
		return out, nil
	}
}

// StaticSource serves the bundled snapshot and never fails on I/O.
type StaticSource struct {
	Catalog *Fallback
}

func (s *StaticSource) Name() string { return "fallback" }

func (s *StaticSource) Items(ctx context.Context, kind domain.EntityKind) ([]Item, error) {
	return s.Catalog.Items(kind)
}

// Chain tries each source in order and reports which one answered.
type Chain struct {
	Sources []Source
}

func NewChain(sources ...Source) *Chain { return &Chain{Sources: sources} }

// Resolve returns the first successful source's items and its name. Only the
// last source's error surfaces; earlier failures mean "move on".
func (c *Chain) Resolve(ctx context.Context, kind domain.EntityKind) ([]Item, string, error) {
	var lastErr error
	for _, s := range c.Sources {
		items, err := s.Items(ctx, kind)
		if err == nil {
			return items, s.Name(), nil
		}
		lastErr = err
	}
	return nil, "", lastErr
}
