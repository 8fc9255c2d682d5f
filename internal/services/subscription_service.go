package services

import (
	"harvesthub/internal/apperr"
	"harvesthub/internal/domain"
	"harvesthub/internal/repos"
)

type SubscriptionService struct {
	Subs     *repos.SubscriptionRepo
	Products *repos.ProductRepo
}

func NewSubscriptionService(subs *repos.SubscriptionRepo, products *repos.ProductRepo) *SubscriptionService {
	return &SubscriptionService{Subs: subs, Products: products}
}

func (s *SubscriptionService) ListForUser(userID int64) ([]domain.Subscription, error) {
	out, err := s.Subs.ListByUser(userID)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return out, nil
}

// Create defaults frequency to monthly and quantity to one.
func (s *SubscriptionService) Create(userID, productID int64, frequency string, quantity int) (domain.Subscription, error) {
	if _, err := s.Products.Get(productID); err != nil {
		return domain.Subscription{}, notFoundOr(err, "Product not found")
	}
	if frequency == "" {
		frequency = domain.FrequencyMonthly
	}
	if quantity < 1 {
		quantity = 1
	}
	out, err := s.Subs.Insert(domain.Subscription{
		UserID:    userID,
		ProductID: productID,
		Frequency: frequency,
		Quantity:  quantity,
	})
	if err != nil {
		return domain.Subscription{}, apperr.Persistence(err)
	}
	return out, nil
}

// Update changes frequency/quantity/status on a subscription the caller owns.
func (s *SubscriptionService) Update(userID, id int64, p repos.SubscriptionPatch) (domain.Subscription, error) {
	existing, err := s.Subs.Get(id)
	if err != nil {
		return domain.Subscription{}, notFoundOr(err, "Subscription not found")
	}
	if existing.UserID != userID {
		return domain.Subscription{}, apperr.Forbidden("Not your subscription")
	}
	ok, err := s.Subs.Update(id, p)
	if err != nil {
		return domain.Subscription{}, apperr.Persistence(err)
	}
	if !ok {
		return domain.Subscription{}, apperr.BadRequest("No fields to update")
	}
	return s.Subs.Get(id)
}
