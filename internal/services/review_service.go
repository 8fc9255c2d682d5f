package services

import (
	"harvesthub/internal/apperr"
	"harvesthub/internal/domain"
	"harvesthub/internal/repos"
	"harvesthub/internal/validate"
)

type ReviewService struct {
	Reviews   *repos.ReviewRepo
	Workshops *repos.WorkshopRepo
	Events    *repos.EventRepo
	Products  *repos.ProductRepo
}

func NewReviewService(r *repos.ReviewRepo, w *repos.WorkshopRepo, e *repos.EventRepo, p *repos.ProductRepo) *ReviewService {
	return &ReviewService{Reviews: r, Workshops: w, Events: e, Products: p}
}

func (s *ReviewService) List(f repos.ReviewFilter) ([]domain.Review, error) {
	if f.WorkshopID == nil && f.EventID == nil && f.ProductID == nil {
		return nil, apperr.BadRequest("One of workshop_id, event_id, or product_id is required")
	}
	out, err := s.Reviews.List(f)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return out, nil
}

func (s *ReviewService) Create(rv domain.Review) (domain.Review, error) {
	if !validate.Rating(rv.Rating) {
		return domain.Review{}, apperr.Validation(map[string]string{"rating": "Rating must be between 1 and 5"})
	}
	if rv.WorkshopID == nil && rv.EventID == nil && rv.ProductID == nil {
		return domain.Review{}, apperr.BadRequest("One of workshop_id, event_id, or product_id is required")
	}
	switch {
	case rv.WorkshopID != nil:
		if _, err := s.Workshops.Get(*rv.WorkshopID); err != nil {
			return domain.Review{}, notFoundOr(err, "Workshop not found")
		}
	case rv.EventID != nil:
		if _, err := s.Events.Get(*rv.EventID); err != nil {
			return domain.Review{}, notFoundOr(err, "Event not found")
		}
	default:
		if _, err := s.Products.Get(*rv.ProductID); err != nil {
			return domain.Review{}, notFoundOr(err, "Product not found")
		}
	}
	out, err := s.Reviews.Insert(rv)
	if err != nil {
		return domain.Review{}, apperr.Persistence(err)
	}
	return out, nil
}
