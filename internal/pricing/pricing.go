// Package pricing derives a booking's total from a catalog entity. The same
// code runs in the web client (preview) and the API server (authority), so
// both always display the same figure for the same catalog snapshot.
package pricing

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"harvesthub/internal/domain"
)

// DefaultParticipants is substituted for absent or non-positive counts.
const DefaultParticipants = 1

// Participants normalizes a raw form value. Non-numeric or non-positive
// input degrades to the default instead of failing.
func Participants(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return DefaultParticipants
	}
	return n
}

// Clamp applies the same lenient default to an already-parsed count.
func Clamp(n int) int {
	if n < 1 {
		return DefaultParticipants
	}
	return n
}

// WorkshopTotal is price per person times participants.
func WorkshopTotal(price decimal.Decimal, participants int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(Clamp(participants))))
}

// EventTotal applies the free-event override: a free event costs nothing no
// matter what price the row carries.
func EventTotal(price decimal.Decimal, isFree bool, participants int) decimal.Decimal {
	if isFree {
		return decimal.Zero
	}
	return price.Mul(decimal.NewFromInt(int64(Clamp(participants))))
}

// Total dispatches on entity kind. Products have no participant concept and
// are not priced by this engine.
func Total(kind domain.EntityKind, price decimal.Decimal, isFree bool, participants int) (decimal.Decimal, bool) {
	switch kind {
	case domain.KindWorkshop:
		return WorkshopTotal(price, participants), true
	case domain.KindEvent:
		return EventTotal(price, isFree, participants), true
	default:
		return decimal.Zero, false
	}
}
