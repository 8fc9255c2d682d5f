package repos

import (
	"github.com/jmoiron/sqlx"

	"harvesthub/internal/domain"
)

type BookingRepo struct{ db *sqlx.DB }

func NewBookingRepo(db *sqlx.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingCols = `id, user_id, workshop_id, event_id, booking_date,
  participants, total_amount, status, special_requirements, created_at`

// Insert persists one booking atomically and returns the stored row so the
// caller can render a confirmation without a second read.
func (r *BookingRepo) Insert(b domain.Booking) (domain.Booking, error) {
	res, err := r.db.Exec(`
	  INSERT INTO bookings(user_id, workshop_id, event_id, booking_date, participants, total_amount, status, special_requirements)
	  VALUES(?,?,?,?,?,?,?,?)
	`, b.UserID, b.WorkshopID, b.EventID, b.BookingDate, b.Participants, b.TotalAmount, b.Status, b.SpecialRequirements)
	if err != nil {
		return domain.Booking{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Booking{}, err
	}
	return r.Get(id)
}

func (r *BookingRepo) Get(id int64) (domain.Booking, error) {
	var b domain.Booking
	err := r.db.Get(&b, `SELECT `+bookingCols+` FROM bookings WHERE id = ?`, id)
	return b, err
}

// BookingSummary is a booking joined with the booked entity's display fields.
type BookingSummary struct {
	domain.Booking
	WorkshopTitle    *string `db:"workshop_title" json:"workshop_title"`
	WorkshopDate     *string `db:"workshop_date" json:"workshop_date"`
	WorkshopTime     *string `db:"workshop_time" json:"workshop_time"`
	WorkshopLocation *string `db:"workshop_location" json:"workshop_location"`
	EventTitle       *string `db:"event_title" json:"event_title"`
	EventDate        *string `db:"event_date" json:"event_date"`
	EventTime        *string `db:"event_time" json:"event_time"`
	EventLocation    *string `db:"event_location" json:"event_location"`
}

func (r *BookingRepo) ListByUser(userID int64) ([]BookingSummary, error) {
	out := []BookingSummary{}
	err := r.db.Select(&out, `
	  SELECT b.id, b.user_id, b.workshop_id, b.event_id, b.booking_date,
	         b.participants, b.total_amount, b.status, b.special_requirements, b.created_at,
	         w.title AS workshop_title, w.date AS workshop_date, w.time AS workshop_time, w.location AS workshop_location,
	         e.title AS event_title, e.date AS event_date, e.time AS event_time, e.location AS event_location
	  FROM bookings b
	  LEFT JOIN workshops w ON b.workshop_id = w.id
	  LEFT JOIN events e ON b.event_id = e.id
	  WHERE b.user_id = ?
	  ORDER BY b.booking_date DESC
	`, userID)
	return out, err
}
