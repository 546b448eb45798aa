package rates

import (
	"time"

	"innsync/internal/domain/calendar"
	"innsync/internal/domain/shared/money"
)

// Plan is a priced offer for a room type over an inclusive validity window.
// WeekendHoliday is a tie-break dimension, not a calendar truth: the caller
// decides which days count as weekend.
type Plan struct {
	RoomTypeID     string
	ValidFrom      calendar.Day
	ValidTo        calendar.Day
	Price          money.Money
	WeekendHoliday bool
}

func (p Plan) coversDay(d calendar.Day) bool {
	return p.ValidFrom <= d && d <= p.ValidTo
}

// WeekendFunc decides whether a day is priced as weekend/holiday, so hotel
// holiday calendars can be substituted without touching the resolver.
type WeekendFunc func(calendar.Day) bool

// DefaultWeekend treats Saturday and Sunday as weekend days.
func DefaultWeekend(d calendar.Day) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ResolvePrice picks the nightly price for a room type on a day.
//
// Among plans matching the room type and validity window, the first one whose
// weekend flag equals the caller's weekend verdict wins; failing that the
// first validity match in input order; failing that the room type base price;
// failing that the caller's static fallback. The chain guarantees a usable
// price instead of failing a sync, and is deterministic for identical input.
func ResolvePrice(roomTypeID string, day calendar.Day, weekend bool, plans []Plan, basePrice, static money.Money) money.Money {
	var first *Plan
	for i := range plans {
		p := &plans[i]
		if p.RoomTypeID != roomTypeID || !p.coversDay(day) {
			continue
		}
		if p.WeekendHoliday == weekend {
			return p.Price
		}
		if first == nil {
			first = p
		}
	}
	if first != nil {
		return first.Price
	}
	if !basePrice.IsZero() {
		return basePrice
	}
	return static
}
