package services

import (
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"harvesthub/internal/apperr"
	"harvesthub/internal/domain"
	"harvesthub/internal/repos"
)

// CatalogService is the read/write surface over the three entity kinds.
// Reads are public; writes are gated to admins at the HTTP layer.
type CatalogService struct {
	Workshops *repos.WorkshopRepo
	Events    *repos.EventRepo
	Products  *repos.ProductRepo
}

func NewCatalogService(w *repos.WorkshopRepo, e *repos.EventRepo, p *repos.ProductRepo) *CatalogService {
	return &CatalogService{Workshops: w, Events: e, Products: p}
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound(msg)
	}
	return apperr.Persistence(err)
}

func (s *CatalogService) ListWorkshops(f repos.CatalogFilter) ([]domain.Workshop, error) {
	out, err := s.Workshops.List(f)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return out, nil
}

func (s *CatalogService) GetWorkshop(id int64) (domain.Workshop, error) {
	w, err := s.Workshops.Get(id)
	if err != nil {
		return domain.Workshop{}, notFoundOr(err, "Workshop not found")
	}
	return w, nil
}

func (s *CatalogService) CreateWorkshop(w domain.Workshop) (domain.Workshop, error) {
	if w.Time == "" {
		w.Time = "10:00"
	}
	if w.Category == "" {
		w.Category = "general"
	}
	if w.MaxParticipants <= 0 {
		w.MaxParticipants = 20
	}
	id, err := s.Workshops.Create(w)
	if err != nil {
		return domain.Workshop{}, apperr.Persistence(err)
	}
	return s.GetWorkshop(id)
}

func (s *CatalogService) UpdateWorkshop(id int64, p repos.WorkshopPatch) (domain.Workshop, error) {
	if _, err := s.GetWorkshop(id); err != nil {
		return domain.Workshop{}, err
	}
	ok, err := s.Workshops.Update(id, p)
	if err != nil {
		return domain.Workshop{}, apperr.Persistence(err)
	}
	if !ok {
		return domain.Workshop{}, apperr.BadRequest("No fields to update")
	}
	return s.GetWorkshop(id)
}

func (s *CatalogService) DeleteWorkshop(id int64) error {
	ok, err := s.Workshops.Delete(id)
	if err != nil {
		return apperr.Persistence(err)
	}
	if !ok {
		return apperr.NotFound("Workshop not found")
	}
	return nil
}

func (s *CatalogService) ListEvents(f repos.CatalogFilter) ([]domain.Event, error) {
	out, err := s.Events.List(f)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return out, nil
}

func (s *CatalogService) GetEvent(id int64) (domain.Event, error) {
	e, err := s.Events.Get(id)
	if err != nil {
		return domain.Event{}, notFoundOr(err, "Event not found")
	}
	return e, nil
}

// CreateEvent derives the free flag: an explicit is_free or a zero price
// makes the event free, and free events always store a zero price.
func (s *CatalogService) CreateEvent(e domain.Event) (domain.Event, error) {
	if e.Time == "" {
		e.Time = "10:00"
	}
	if e.Category == "" {
		e.Category = "general"
	}
	if e.Price.IsZero() {
		e.IsFree = true
	}
	if e.IsFree {
		e.Price = decimal.Zero
	}
	id, err := s.Events.Create(e)
	if err != nil {
		return domain.Event{}, apperr.Persistence(err)
	}
	return s.GetEvent(id)
}

func (s *CatalogService) UpdateEvent(id int64, p repos.EventPatch) (domain.Event, error) {
	if _, err := s.GetEvent(id); err != nil {
		return domain.Event{}, err
	}
	ok, err := s.Events.Update(id, p)
	if err != nil {
		return domain.Event{}, apperr.Persistence(err)
	}
	if !ok {
		return domain.Event{}, apperr.BadRequest("No fields to update")
	}
	return s.GetEvent(id)
}

func (s *CatalogService) DeleteEvent(id int64) error {
	ok, err := s.Events.Delete(id)
	if err != nil {
		return apperr.Persistence(err)
	}
	if !ok {
		return apperr.NotFound("Event not found")
	}
	return nil
}

func (s *CatalogService) ListProducts(f repos.CatalogFilter) ([]domain.Product, error) {
	out, err := s.Products.List(f)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return out, nil
}

func (s *CatalogService) GetProduct(id int64) (domain.Product, error) {
	p, err := s.Products.Get(id)
	if err != nil {
		return domain.Product{}, notFoundOr(err, "Product not found")
	}
	return p, nil
}

func (s *CatalogService) CreateProduct(p domain.Product) (domain.Product, error) {
	if p.Category == "" {
		p.Category = "general"
	}
	id, err := s.Products.Create(p)
	if err != nil {
		return domain.Product{}, apperr.Persistence(err)
	}
	return s.GetProduct(id)
}

func (s *CatalogService) UpdateProduct(id int64, p repos.ProductPatch) (domain.Product, error) {
	if _, err := s.GetProduct(id); err != nil {
		return domain.Product{}, err
	}
	ok, err := s.Products.Update(id, p)
	if err != nil {
		return domain.Product{}, apperr.Persistence(err)
	}
	if !ok {
		return domain.Product{}, apperr.BadRequest("No fields to update")
	}
	return s.GetProduct(id)
}

func (s *CatalogService) DeleteProduct(id int64) error {
	ok, err := s.Products.Delete(id)
	if err != nil {
		return apperr.Persistence(err)
	}
	if !ok {
		return apperr.NotFound("Product not found")
	}
	return nil
}
