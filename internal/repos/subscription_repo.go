package repos

import (
	"github.com/jmoiron/sqlx"

	"harvesthub/internal/domain"
)

type SubscriptionRepo struct{ db *sqlx.DB }

func NewSubscriptionRepo(db *sqlx.DB) *SubscriptionRepo { return &SubscriptionRepo{db: db} }

const subscriptionSelect = `
  SELECT s.id, s.user_id, s.product_id, s.frequency, s.quantity, s.status,
         s.created_at, s.updated_at, COALESCE(p.name,'') AS product_name
  FROM subscriptions s
  LEFT JOIN products p ON s.product_id = p.id`

func (r *SubscriptionRepo) ListByUser(userID int64) ([]domain.Subscription, error) {
	out := []domain.Subscription{}
	err := r.db.Select(&out, subscriptionSelect+` WHERE s.user_id = ? ORDER BY s.created_at DESC`, userID)
	return out, err
}

func (r *SubscriptionRepo) Get(id int64) (domain.Subscription, error) {
	var s domain.Subscription
	err := r.db.Get(&s, subscriptionSelect+` WHERE s.id = ?`, id)
	return s, err
}

func (r *SubscriptionRepo) Insert(s domain.Subscription) (domain.Subscription, error) {
	res, err := r.db.Exec(`
	  INSERT INTO subscriptions(user_id, product_id, frequency, quantity)
	  VALUES(?,?,?,?)
	`, s.UserID, s.ProductID, s.Frequency, s.Quantity)
	if err != nil {
		return domain.Subscription{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Subscription{}, err
	}
	return r.Get(id)
}

type SubscriptionPatch struct {
	Frequency *string
	Quantity  *int
	Status    *string
}

func (r *SubscriptionRepo) Update(id int64, p SubscriptionPatch) (bool, error) {
	set := ""
	args := []any{}
	add := func(col string, v any) {
		if set != "" {
			set += ", "
		}
		set += col + " = ?"
		args = append(args, v)
	}
	if p.Frequency != nil {
		add("frequency", *p.Frequency)
	}
	if p.Quantity != nil {
		add("quantity", *p.Quantity)
	}
	if p.Status != nil {
		add("status", *p.Status)
	}
	if set == "" {
		return false, nil
	}
	set += ", updated_at = CURRENT_TIMESTAMP"
	res, err := r.db.Exec(`UPDATE subscriptions SET `+set+` WHERE id = ?`, append(args, id)...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
