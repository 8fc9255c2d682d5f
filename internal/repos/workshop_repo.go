package repos

import (
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"harvesthub/internal/domain"
)

type WorkshopRepo struct{ db *sqlx.DB }

func NewWorkshopRepo(db *sqlx.DB) *WorkshopRepo { return &WorkshopRepo{db: db} }

// CatalogFilter is the pass-through list filter shared by the read endpoints.
type CatalogFilter struct {
	Category string
	Search   string
	Upcoming bool
	FreeOnly bool
}

const workshopCols = `id, title, description, date, time, price, category,
  max_participants, current_participants, location, instructor_name, image_url,
  created_at, updated_at`

func (r *WorkshopRepo) List(f CatalogFilter) ([]domain.Workshop, error) {
	where := `1=1`
	args := []any{}
	if f.Upcoming {
		where += ` AND date >= date('now')`
	}
	if f.Category != "" {
		where += ` AND category = ?`
		args = append(args, f.Category)
	}
	if f.Search != "" {
		where += ` AND (LOWER(title) LIKE ? OR LOWER(description) LIKE ?)`
		s := "%" + f.Search + "%"
		args = append(args, s, s)
	}

	out := []domain.Workshop{}
	err := r.db.Select(&out, `SELECT `+workshopCols+` FROM workshops WHERE `+where+` ORDER BY date ASC`, args...)
	return out, err
}

func (r *WorkshopRepo) Get(id int64) (domain.Workshop, error) {
	var w domain.Workshop
	err := r.db.Get(&w, `SELECT `+workshopCols+` FROM workshops WHERE id = ?`, id)
	return w, err
}

func (r *WorkshopRepo) Create(w domain.Workshop) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO workshops(title, description, date, time, price, category, max_participants, location, instructor_name, image_url)
	  VALUES(?,?,?,?,?,?,?,?,?,?)
	`, w.Title, w.Description, w.Date, w.Time, w.Price, w.Category, w.MaxParticipants, w.Location, w.InstructorName, w.ImageURL)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// WorkshopPatch carries only the fields the caller wants changed.
type WorkshopPatch struct {
	Title           *string
	Description     *string
	Date            *string
	Time            *string
	Price           *decimal.Decimal
	Category        *string
	MaxParticipants *int
	Location        *string
	InstructorName  *string
	ImageURL        *string
}

func (r *WorkshopRepo) Update(id int64, p WorkshopPatch) (bool, error) {
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
	if p.Price != nil {
		add("price", *p.Price)
	}
	if p.Category != nil {
		add("category", *p.Category)
	}
	if p.MaxParticipants != nil {
		add("max_participants", *p.MaxParticipants)
	}
	if p.Location != nil {
		add("location", *p.Location)
	}
	if p.InstructorName != nil {
		add("instructor_name", *p.InstructorName)
	}
	if p.ImageURL != nil {
		add("image_url", *p.ImageURL)
	}
	if set == "" {
		return false, nil
	}
	set += ", updated_at = CURRENT_TIMESTAMP"
	res, err := r.db.Exec(`UPDATE workshops SET `+set+` WHERE id = ?`, append(args, id)...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *WorkshopRepo) Delete(id int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM workshops WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
