package services

import (
	"database/sql"
	"errors"

	"harvesthub/internal/apperr"
	"harvesthub/internal/domain"
	"harvesthub/internal/pricing"
	"harvesthub/internal/repos"
	"harvesthub/internal/validate"
)

// BookingRequest is the validated-input shape for booking creation. The
// caller's identity always comes from the bearer credential, never the body,
// and any client-supplied total is ignored before this struct is built.
type BookingRequest struct {
	BookingDate         string
	WorkshopID          *int64
	EventID             *int64
	Participants        int
	SpecialRequirements *string
}

type BookingService struct {
	Bookings  *repos.BookingRepo
	Workshops *repos.WorkshopRepo
	Events    *repos.EventRepo
}

func NewBookingService(b *repos.BookingRepo, w *repos.WorkshopRepo, e *repos.EventRepo) *BookingService {
	return &BookingService{Bookings: b, Workshops: w, Events: e}
}

// Validate enforces the cross-field invariants without touching storage
// beyond a read of the referenced entity. The booking date only has to parse
// as a calendar date; past dates are accepted here on purpose (the web
// client restricts its own picker).
func (s *BookingService) Validate(req BookingRequest) error {
	if _, ok := validate.Date(req.BookingDate); !ok {
		return apperr.Validation(map[string]string{"booking_date": "Valid booking_date required"})
	}
	if req.WorkshopID != nil && req.EventID != nil {
		return apperr.BadRequest("Only one of workshop_id or event_id may be set")
	}
	if req.WorkshopID == nil && req.EventID == nil {
		return apperr.BadRequest("Either workshop_id or event_id is required")
	}
	if req.WorkshopID != nil {
		if _, err := s.Workshops.Get(*req.WorkshopID); err != nil {
			return notFoundOr(err, "Workshop not found")
		}
	} else {
		if _, err := s.Events.Get(*req.EventID); err != nil {
			return notFoundOr(err, "Event not found")
		}
	}
	return nil
}

// Create validates, reprices against the current stored catalog row and
// persists. The recomputation is the authority boundary: whatever total the
// client previewed, the figure stored here is derived from the database
// price at insert time. No capacity check or current_participants decrement
// happens; concurrent bookings can overbook a workshop (kept behavior, see
// DESIGN.md).
func (s *BookingService) Create(req BookingRequest, userID int64) (domain.Booking, error) {
	if err := s.Validate(req); err != nil {
		return domain.Booking{}, err
	}

	participants := pricing.Clamp(req.Participants)

	b := domain.Booking{
		UserID:              userID,
		WorkshopID:          req.WorkshopID,
		EventID:             req.EventID,
		BookingDate:         req.BookingDate,
		Participants:        participants,
		Status:              domain.BookingStatusPending,
		SpecialRequirements: req.SpecialRequirements,
	}

	if req.WorkshopID != nil {
		w, err := s.Workshops.Get(*req.WorkshopID)
		if err != nil {
			return domain.Booking{}, notFoundOr(err, "Workshop not found")
		}
		b.TotalAmount = pricing.WorkshopTotal(w.Price, participants)
	} else {
		e, err := s.Events.Get(*req.EventID)
		if err != nil {
			return domain.Booking{}, notFoundOr(err, "Event not found")
		}
		b.TotalAmount = pricing.EventTotal(e.Price, e.IsFree, participants)
	}

	stored, err := s.Bookings.Insert(b)
	if err != nil {
		return domain.Booking{}, apperr.Persistence(err)
	}
	return stored, nil
}

// ListForUser returns the caller's bookings joined with entity display data.
func (s *BookingService) ListForUser(userID int64) ([]repos.BookingSummary, error) {
	out, err := s.Bookings.ListByUser(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []repos.BookingSummary{}, nil
		}
		return nil, apperr.Persistence(err)
	}
	return out, nil
}
