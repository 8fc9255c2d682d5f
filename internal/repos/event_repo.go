package repos

import (
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"harvesthub/internal/domain"
)

type EventRepo struct{ db *sqlx.DB }

func NewEventRepo(db *sqlx.DB) *EventRepo { return &EventRepo{db: db} }

const eventCols = `id, title, description, date, time, location, category,
  organizer, is_free, price, image_url, created_at, updated_at`

func (r *EventRepo) List(f CatalogFilter) ([]domain.Event, error) {
	where := `1=1`
	args := []any{}
	if f.Upcoming {
		where += ` AND date >= date('now')`
	}
	if f.Category != "" {
		where += ` AND category = ?`
		args = append(args, f.Category)
	}
	if f.FreeOnly {
		where += ` AND is_free = 1`
	}

	out := []domain.Event{}
	err := r.db.Select(&out, `SELECT `+eventCols+` FROM events WHERE `+where+` ORDER BY date ASC, time ASC`, args...)
	return out, err
}

func (r *EventRepo) Get(id int64) (domain.Event, error) {
	var e domain.Event
	err := r.db.Get(&e, `SELECT `+eventCols+` FROM events WHERE id = ?`, id)
	return e, err
}

func (r *EventRepo) Create(e domain.Event) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO events(title, description, date, time, location, category, organizer, is_free, price, image_url)
	  VALUES(?,?,?,?,?,?,?,?,?,?)
	`, e.Title, e.Description, e.Date, e.Time, e.Location, e.Category, e.Organizer, e.IsFree, e.Price, e.ImageURL)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

type EventPatch struct {
	Title       *string
	Description *string
	Date        *string
	Time        *string
	Location    *string
	Category    *string
	Organizer   *string
	IsFree      *bool
	Price       *decimal.Decimal
	ImageURL    *string
}

func (r *EventRepo) Update(id int64, p EventPatch) (bool, error) {
	set := ""
	args := []any{}
	add := func(col string, v any) {
		if set != "" {
			set += ", "
		}
		set += col + " = ?"
		args = append(args, v)
	}
	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.Date != nil {
		add("date", *p.Date)
	}
	if p.Time != nil {
		add("time", *p.Time)
	}
	if p.Location != nil {
		add("location", *p.Location)
	}
	if p.Category != nil {
		add("category", *p.Category)
	}
	if p.Organizer != nil {
		add("organizer", *p.Organizer)
	}
	if p.IsFree != nil {
		add("is_free", *p.IsFree)
	}
	if p.Price != nil {
		add("price", *p.Price)
	}
	if p.ImageURL != nil {
		add("image_url", *p.ImageURL)
	}
	if set == "" {
		return false, nil
	}
	set += ", updated_at = CURRENT_TIMESTAMP"
	res, err := r.db.Exec(`UPDATE events SET `+set+` WHERE id = ?`, append(args, id)...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *EventRepo) Delete(id int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
