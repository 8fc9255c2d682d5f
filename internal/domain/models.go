package domain

import "github.com/shopspring/decimal"

// EntityKind discriminates the three catalog variants.
type EntityKind string

const (
	KindWorkshop EntityKind = "workshop"
	KindEvent    EntityKind = "event"
	KindProduct  EntityKind = "product"
)

type Workshop struct {
	ID                  int64           `db:"id" json:"id"`
	Title               string          `db:"title" json:"title"`
	Description         string          `db:"description" json:"description"`
	Date                string          `db:"date" json:"date"` // YYYY-MM-DD
	Time                string          `db:"time" json:"time"`
	Price               decimal.Decimal `db:"price" json:"price"`
	Category            string          `db:"category" json:"category"`
	MaxParticipants     int             `db:"max_participants" json:"max_participants"`
	CurrentParticipants int             `db:"current_participants" json:"current_participants"`
	Location            string          `db:"location" json:"location"`
	InstructorName      string          `db:"instructor_name" json:"instructor_name"`
	ImageURL            *string         `db:"image_url" json:"image_url"`
	CreatedAt           string          `db:"created_at" json:"created_at"`
	UpdatedAt           *string         `db:"updated_at" json:"updated_at"`
}

// AvailableSpots is capacity minus current sign-ups. Bookings do not
// decrement the counter (known limitation, see DESIGN.md).
func (w Workshop) AvailableSpots() int {
	return w.MaxParticipants - w.CurrentParticipants
}

type Event struct {
	ID          int64           `db:"id" json:"id"`
	Title       string          `db:"title" json:"title"`
	Description string          `db:"description" json:"description"`
	Date        string          `db:"date" json:"date"`
	Time        string          `db:"time" json:"time"`
	Location    string          `db:"location" json:"location"`
	Category    string          `db:"category" json:"category"`
	Organizer   string          `db:"organizer" json:"organizer"`
	IsFree      bool            `db:"is_free" json:"is_free"`
	Price       decimal.Decimal `db:"price" json:"price"`
	ImageURL    *string         `db:"image_url" json:"image_url"`
	CreatedAt   string          `db:"created_at" json:"created_at"`
	UpdatedAt   *string         `db:"updated_at" json:"updated_at"`
}

type Product struct {
	ID                   int64           `db:"id" json:"id"`
	Name                 string          `db:"name" json:"name"`
	Description          string          `db:"description" json:"description"`
	Price                decimal.Decimal `db:"price" json:"price"`
	Category             string          `db:"category" json:"category"`
	StockQuantity        int             `db:"stock_quantity" json:"stock_quantity"`
	SKU                  *string         `db:"sku" json:"sku"`
	ImageURL             *string         `db:"image_url" json:"image_url"`
	SustainabilityRating *int            `db:"sustainability_rating" json:"sustainability_rating"`
	CreatedAt            string          `db:"created_at" json:"created_at"`
	UpdatedAt            *string         `db:"updated_at" json:"updated_at"`
}

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking references exactly one of WorkshopID/EventID. TotalAmount is
// always the server-side recomputation, never a client-supplied figure.
type Booking struct {
	ID                  int64           `db:"id" json:"id"`
	UserID              int64           `db:"user_id" json:"user_id"`
	WorkshopID          *int64          `db:"workshop_id" json:"workshop_id"`
	EventID             *int64          `db:"event_id" json:"event_id"`
	BookingDate         string          `db:"booking_date" json:"booking_date"`
	Participants        int             `db:"participants" json:"participants"`
	TotalAmount         decimal.Decimal `db:"total_amount" json:"total_amount"`
	Status              string          `db:"status" json:"status"`
	SpecialRequirements *string         `db:"special_requirements" json:"special_requirements"`
	CreatedAt           string          `db:"created_at" json:"created_at"`
}

type Review struct {
	ID         int64   `db:"id" json:"id"`
	UserID     int64   `db:"user_id" json:"user_id"`
	WorkshopID *int64  `db:"workshop_id" json:"workshop_id"`
	EventID    *int64  `db:"event_id" json:"event_id"`
	ProductID  *int64  `db:"product_id" json:"product_id"`
	Rating     int     `db:"rating" json:"rating"`
	Comment    *string `db:"comment" json:"comment"`
	CreatedAt  string  `db:"created_at" json:"created_at"`
	Username   string  `db:"username" json:"username"`
	FullName   string  `db:"full_name" json:"full_name"`
}

const (
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"
)

type Subscription struct {
	ID          int64   `db:"id" json:"id"`
	UserID      int64   `db:"user_id" json:"user_id"`
	ProductID   int64   `db:"product_id" json:"product_id"`
	Frequency   string  `db:"frequency" json:"frequency"`
	Quantity    int     `db:"quantity" json:"quantity"`
	Status      string  `db:"status" json:"status"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
	UpdatedAt   *string `db:"updated_at" json:"updated_at"`
	ProductName string  `db:"product_name" json:"product_name"`
}
