package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"harvesthub/internal/domain"
	"harvesthub/internal/pricing"
)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestWorkshopTotalIsPriceTimesParticipants(t *testing.T) {
	cases := []struct {
		price        int64
		participants int
		want         int64
	}{
		{10000, 1, 10000},
		{10000, 3, 30000},
		{8000, 2, 16000},
		{0, 5, 0},
	}
	for _, c := range cases {
		got := pricing.WorkshopTotal(d(c.price), c.participants)
		if !got.Equal(d(c.want)) {
			t.Fatalf("WorkshopTotal(%d, %d) = %s, want %d", c.price, c.participants, got, c.want)
		}
	}
}

func TestFreeEventIsFreeRegardlessOfStoredPrice(t *testing.T) {
	for _, n := range []int{1, 2, 10} {
		got := pricing.EventTotal(d(9999), true, n)
		if !got.IsZero() {
			t.Fatalf("free event with %d participants priced at %s", n, got)
		}
	}
}

func TestPaidEventTotal(t *testing.T) {
	got := pricing.EventTotal(d(5000), false, 4)
	if !got.Equal(d(20000)) {
		t.Fatalf("paid event total = %s, want 20000", got)
	}
}

func TestParticipantsDefaultsToOne(t *testing.T) {
	for _, raw := range []string{"", "0", "-3", "abc", "1.5"} {
		if n := pricing.Participants(raw); n != 1 {
			t.Fatalf("Participants(%q) = %d, want 1", raw, n)
		}
	}
	if n := pricing.Participants(" 4 "); n != 4 {
		t.Fatalf("Participants with spaces = %d, want 4", n)
	}
	if n := pricing.Clamp(-1); n != 1 {
		t.Fatalf("Clamp(-1) = %d, want 1", n)
	}
	// The default flows through totals without raising.
	got := pricing.WorkshopTotal(d(10000), 0)
	if !got.Equal(d(10000)) {
		t.Fatalf("zero participants should price as one, got %s", got)
	}
}

func TestTotalDispatchesOnKind(t *testing.T) {
	if total, priced := pricing.Total(domain.KindWorkshop, d(10000), false, 2); !priced || !total.Equal(d(20000)) {
		t.Fatalf("workshop dispatch: %s %v", total, priced)
	}
	if total, priced := pricing.Total(domain.KindEvent, d(7000), true, 2); !priced || !total.IsZero() {
		t.Fatalf("free event dispatch: %s %v", total, priced)
	}
	if _, priced := pricing.Total(domain.KindProduct, d(7000), false, 2); priced {
		t.Fatal("products must not be priced by the engine")
	}
}
