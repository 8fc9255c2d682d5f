package repos

import (
	"github.com/jmoiron/sqlx"

	"harvesthub/internal/domain"
)

type ReviewRepo struct{ db *sqlx.DB }

func NewReviewRepo(db *sqlx.DB) *ReviewRepo { return &ReviewRepo{db: db} }

// ReviewFilter selects reviews for exactly one catalog entity.
type ReviewFilter struct {
	WorkshopID *int64
	EventID    *int64
	ProductID  *int64
}

const reviewSelect = `
  SELECT r.id, r.user_id, r.workshop_id, r.event_id, r.product_id, r.rating, r.comment, r.created_at,
         COALESCE(u.username,'') AS username, COALESCE(u.full_name,'') AS full_name
  FROM reviews r
  LEFT JOIN users u ON r.user_id = u.id`

func (r *ReviewRepo) List(f ReviewFilter) ([]domain.Review, error) {
	where := ``
	args := []any{}
	and := func(cond string, v any) {
		if where != "" {
			where += " AND "
		}
		where += cond
		args = append(args, v)
	}
	if f.WorkshopID != nil {
		and("r.workshop_id = ?", *f.WorkshopID)
	}
	if f.EventID != nil {
		and("r.event_id = ?", *f.EventID)
	}
	if f.ProductID != nil {
		and("r.product_id = ?", *f.ProductID)
	}

	out := []domain.Review{}
	err := r.db.Select(&out, reviewSelect+` WHERE `+where+` ORDER BY r.created_at DESC`, args...)
	return out, err
}

func (r *ReviewRepo) Insert(rv domain.Review) (domain.Review, error) {
	res, err := r.db.Exec(`
	  INSERT INTO reviews(user_id, workshop_id, event_id, product_id, rating, comment)
	  VALUES(?,?,?,?,?,?)
	`, rv.UserID, rv.WorkshopID, rv.EventID, rv.ProductID, rv.Rating, rv.Comment)
	if err != nil {
		return domain.Review{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Review{}, err
	}
	var out domain.Review
	err = r.db.Get(&out, reviewSelect+` WHERE r.id = ?`, id)
	return out, err
}
