package webclient_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"harvesthub/internal/domain"
	"harvesthub/internal/webclient"
)

func workshopItem(id int64, title string, price int64, date string, spots int) webclient.Item {
	return webclient.Item{
		Kind:           domain.KindWorkshop,
		ID:             id,
		Title:          title,
		Price:          decimal.NewFromInt(price),
		Date:           date,
		AvailableSpots: spots,
	}
}

func TestFormPreviewTotalDisplay(t *testing.T) {
	form := webclient.NewForm(domain.KindWorkshop)
	form.SetOptions([]webclient.Item{workshopItem(3, "Composting 101", 8000, "2026-04-25", 20)})
	if !form.Select(3) {
		t.Fatal("select failed")
	}
	form.Participants = "2"

	if got := form.TotalDisplay(); got != "Rs. 16,000" {
		t.Fatalf("total display = %q, want %q", got, "Rs. 16,000")
	}
}

func TestSelectionChangeCascades(t *testing.T) {
	form := webclient.NewForm(domain.KindWorkshop)
	form.SetOptions([]webclient.Item{
		workshopItem(1, "Urban Gardening Basics", 10000, "2026-04-15", 15),
		workshopItem(4, "DIY Solar Panel Installation", 20000, "2026-05-05", 8),
	})
	form.Select(1)
	if form.BookingDate != "2026-04-15" {
		t.Fatalf("date after first select = %q", form.BookingDate)
	}
	if form.ParticipantBound() != 15 {
		t.Fatalf("bound after first select = %d", form.ParticipantBound())
	}

	form.Select(4)
	if form.BookingDate != "2026-05-05" {
		t.Fatalf("date did not re-derive on reselect: %q", form.BookingDate)
	}
	if !form.PricePerPerson().Equal(decimal.NewFromInt(20000)) {
		t.Fatalf("price did not re-derive on reselect: %s", form.PricePerPerson())
	}
	if form.ParticipantBound() != 8 {
		t.Fatalf("bound did not re-derive on reselect: %d", form.ParticipantBound())
	}
}

func TestPreselectionWinsOverFetchedList(t *testing.T) {
	preselected := workshopItem(2, "Sustainable Cooking Workshop", 12000, "2026-04-20", 10)

	form := webclient.NewForm(domain.KindWorkshop)
	form.Preselect(preselected)
	form.SetOptions([]webclient.Item{
		workshopItem(1, "Urban Gardening Basics", 10000, "2026-04-15", 15),
		// Same id, different snapshot of the entity.
		workshopItem(2, "Sustainable Cooking Workshop", 99999, "2027-01-01", 1),
	})

	if form.Selected == nil || form.Selected.ID != 2 {
		t.Fatal("preselection lost after SetOptions")
	}
	if !form.Selected.Price.Equal(decimal.NewFromInt(12000)) {
		t.Fatalf("preselected data overwritten by fetched list: %s", form.Selected.Price)
	}
	if form.BookingDate != "2026-04-20" {
		t.Fatalf("preselected date overwritten: %q", form.BookingDate)
	}
}

func TestSubmitLifecycleAndDoubleSubmit(t *testing.T) {
	form := webclient.NewForm(domain.KindWorkshop)
	form.SetOptions([]webclient.Item{workshopItem(1, "Urban Gardening Basics", 10000, "2026-04-15", 15)})
	form.Select(1)

	if !form.BeginSubmit() {
		t.Fatal("first submit should transition")
	}
	if form.State() != webclient.StateSubmitting {
		t.Fatalf("state = %v, want Submitting", form.State())
	}
	if form.BeginSubmit() {
		t.Fatal("double submit must be blocked while in flight")
	}
	if form.CanSubmit() {
		t.Fatal("submit control must be disabled while in flight")
	}

	form.Succeed(domain.Booking{ID: 9, TotalAmount: decimal.NewFromInt(10000)})
	if form.State() != webclient.StateSucceeded {
		t.Fatalf("state = %v, want Succeeded", form.State())
	}
	if form.BeginSubmit() {
		t.Fatal("succeeded form must not resubmit")
	}
}

func TestFailurePreservesFieldsAndReenables(t *testing.T) {
	form := webclient.NewForm(domain.KindWorkshop)
	form.SetOptions([]webclient.Item{workshopItem(1, "Urban Gardening Basics", 10000, "2026-04-15", 15)})
	form.Select(1)
	form.Participants = "3"
	form.SpecialRequirements = "wheelchair access"

	if !form.BeginSubmit() {
		t.Fatal("submit should transition")
	}
	// Simulated network timeout on the in-flight request.
	form.Fail(webclient.FailServer, "Booking could not be submitted. Please try again.")

	if form.State() != webclient.StateEditing {
		t.Fatalf("state after failure = %v, want Editing", form.State())
	}
	if !form.CanSubmit() {
		t.Fatal("submit control must re-enable after failure")
	}
	if form.Participants != "3" || form.SpecialRequirements != "wheelchair access" || form.BookingDate != "2026-04-15" {
		t.Fatalf("field values lost on failure: %+v", form)
	}
	if form.Selected == nil || form.Selected.ID != 1 {
		t.Fatal("selection lost on failure")
	}
	if form.Banner == "" || form.Failure != webclient.FailServer {
		t.Fatal("failure reason not surfaced")
	}
}

func TestValidateLocalRejectsPastDate(t *testing.T) {
	form := webclient.NewForm(domain.KindWorkshop)
	form.SetOptions([]webclient.Item{workshopItem(1, "Urban Gardening Basics", 10000, "2026-04-15", 15)})
	form.Select(1)
	form.BookingDate = "2020-01-01"

	today := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if form.ValidateLocal(today) {
		t.Fatal("past date must fail client-side validation")
	}
	if form.FieldErrors["booking_date"] == "" {
		t.Fatal("expected inline date error")
	}

	form.BookingDate = "2026-04-15"
	if !form.ValidateLocal(today) {
		t.Fatalf("future date should validate, errors: %v", form.FieldErrors)
	}
}

func TestValidateLocalParticipantBound(t *testing.T) {
	form := webclient.NewForm(domain.KindWorkshop)
	form.SetOptions([]webclient.Item{workshopItem(1, "Urban Gardening Basics", 10000, "2026-04-15", 5)})
	form.Select(1)
	form.Participants = "6"

	today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if form.ValidateLocal(today) {
		t.Fatal("participants above available spots must fail")
	}
	if form.FieldErrors["participants"] == "" {
		t.Fatal("expected inline participants error")
	}
}
