package webclient

import (
	"time"

	"github.com/shopspring/decimal"

	"harvesthub/internal/domain"
	"harvesthub/internal/pricing"
)

// FormState is the booking form's lifecycle. Failed is not a resting state:
// every failure returns the form to Editing with the failure surfaced and
// all field values intact.
type FormState int

const (
	StateEditing FormState = iota
	StateSubmitting
	StateSucceeded
)

type FailureKind int

const (
	FailNone FailureKind = iota
	FailValidation
	FailServer
)

// Form models the booking form: selectable catalog options, the user's
// entries, and the state machine Editing -> Submitting -> {Succeeded,
// back to Editing on failure}.
type Form struct {
	Kind        domain.EntityKind
	Options     []Item
	Selected    *Item
	preselected bool

	BookingDate         string
	Participants        string // raw input, degraded leniently on parse
	SpecialRequirements string

	state       FormState
	FieldErrors map[string]string
	Banner      string
	Failure     FailureKind

	Result *domain.Booking
}

func NewForm(kind domain.EntityKind) *Form {
	return &Form{
		Kind:         kind,
		Participants: "1",
		state:        StateEditing,
		FieldErrors:  map[string]string{},
	}
}

func (f *Form) State() FormState { return f.state }

// CanSubmit is false while a request is in flight; the submit control is
// disabled rather than payloads deduplicated.
func (f *Form) CanSubmit() bool { return f.state == StateEditing }

// Preselect installs an entity carried into the page (a "Book Now"
// navigation). Preselected data wins over whatever the source chain loads.
func (f *Form) Preselect(it Item) {
	f.Selected = &it
	f.preselected = true
	if it.Date != "" {
		f.BookingDate = it.Date
	}
}

// SetOptions installs the selectable list from the resolved source. A
// preselected entity is never overwritten by the fetched list.
func (f *Form) SetOptions(items []Item) {
	f.Options = items
	if f.preselected || f.Selected == nil {
		return
	}
	for i := range items {
		if items[i].ID == f.Selected.ID {
			f.Selected = &items[i]
			return
		}
	}
	f.Selected = nil
}

// Select switches the chosen entity and cascades: booking date and the
// derived price and participant bound all re-derive from the new entity.
func (f *Form) Select(id int64) bool {
	for i := range f.Options {
		if f.Options[i].ID == id {
			f.Selected = &f.Options[i]
			f.preselected = false
			if f.Options[i].Date != "" {
				f.BookingDate = f.Options[i].Date
			}
			delete(f.FieldErrors, "participants")
			delete(f.FieldErrors, "entity")
			return true
		}
	}
	return false
}

const defaultSpotBound = 10

// ParticipantBound is the form's upper limit for the participant count.
func (f *Form) ParticipantBound() int {
	if f.Selected != nil && f.Selected.Kind == domain.KindWorkshop && f.Selected.AvailableSpots > 0 {
		return f.Selected.AvailableSpots
	}
	return defaultSpotBound
}

// PricePerPerson is the effective per-person price: zero with nothing
// selected, zero for free events.
func (f *Form) PricePerPerson() decimal.Decimal {
	if f.Selected == nil {
		return decimal.Zero
	}
	if f.Selected.Kind == domain.KindEvent && f.Selected.IsFree {
		return decimal.Zero
	}
	return f.Selected.Price
}

// Total mirrors the server's pricing engine for preview. The server's own
// recomputation on submit is the authoritative figure.
func (f *Form) Total() decimal.Decimal {
	if f.Selected == nil {
		return decimal.Zero
	}
	n := pricing.Participants(f.Participants)
	total, priced := pricing.Total(f.Selected.Kind, f.Selected.Price, f.Selected.IsFree, n)
	if !priced {
		return decimal.Zero
	}
	return total
}

func (f *Form) TotalDisplay() string { return FormatLKR(f.Total()) }

// ValidateLocal applies the client-side rules: an entity must be chosen, the
// date must parse and not lie in the past (stricter than the server, which
// accepts any parseable date), participants within the bound.
func (f *Form) ValidateLocal(today time.Time) bool {
	errs := map[string]string{}

	if f.Selected == nil {
		errs["entity"] = "Please select one"
	}
	d, err := time.Parse("2006-01-02", f.BookingDate)
	if err != nil {
		errs["booking_date"] = "Please choose a valid date"
	} else if d.Before(today.Truncate(24 * time.Hour)) {
		errs["booking_date"] = "Date must be today or in the future"
	}
	n := pricing.Participants(f.Participants)
	if bound := f.ParticipantBound(); n > bound {
		errs["participants"] = "Not enough spots available"
	}

	f.FieldErrors = errs
	return len(errs) == 0
}

// BeginSubmit moves Editing -> Submitting. Returns false if a submission is
// already in flight or the form already succeeded.
func (f *Form) BeginSubmit() bool {
	if f.state != StateEditing {
		return false
	}
	f.state = StateSubmitting
	f.Banner = ""
	f.Failure = FailNone
	return true
}

// Payload builds the submit body from the current fields.
func (f *Form) Payload() BookingPayload {
	p := BookingPayload{
		BookingDate:  f.BookingDate,
		Participants: pricing.Participants(f.Participants),
	}
	if f.Selected != nil {
		id := f.Selected.ID
		if f.Selected.Kind == domain.KindEvent {
			p.EventID = &id
		} else {
			p.WorkshopID = &id
		}
	}
	if f.SpecialRequirements != "" {
		s := f.SpecialRequirements
		p.SpecialRequirements = &s
	}
	return p
}

// Fail returns the form to Editing with every field value preserved and the
// failure reason surfaced as a banner.
func (f *Form) Fail(kind FailureKind, msg string) {
	f.state = StateEditing
	f.Failure = kind
	f.Banner = msg
}

// FailFields is the validation flavor: inline per-field messages.
func (f *Form) FailFields(fields map[string]string) {
	f.state = StateEditing
	f.Failure = FailValidation
	for k, v := range fields {
		f.FieldErrors[k] = v
	}
}

// Succeed is terminal for this form instance; the stored booking carries the
// server-computed total for the confirmation view.
func (f *Form) Succeed(b domain.Booking) {
	f.state = StateSucceeded
	f.Result = &b
}
