package channels

import (
	"fmt"
	"strings"

	"innsync/internal/domain/calendar"
	"innsync/internal/domain/inventory"
)

// ExportOptions carry the per-channel identifiers the payload shapes need
// beyond the canonical lines.
type ExportOptions struct {
	Currency string
	// BookingHotelID is the property number assigned by Booking.com.
	BookingHotelID string
	BookingRateID  string
	// ExpediaHotelID replaces the internal property id in EQC bodies when set.
	ExpediaHotelID    string
	ExpediaRatePlanID string
	AirbnbListingID   string
}

// Export maps canonical inventory lines into the request body for one
// channel. Every line maps to exactly one output record; no transport
// happens here.
func Export(ch Channel, propertyID string, rng calendar.Range, lines []inventory.Line, opts ExportOptions) (Payload, error) {
	if len(lines) == 0 {
		return Payload{}, fmt.Errorf("channels: no inventory lines to export for %s", ch)
	}
	switch {
	case ch == BookingCom:
		return buildBookingPayload(lines, opts), nil
	case ch == Airbnb:
		return buildAirbnbPayload(lines, opts)
	case ch == Expedia:
		return buildExpediaPayload(propertyID, lines, opts), nil
	case ch.GDS():
		return buildGDSPayload(ch, propertyID, rng, lines)
	}
	return Payload{}, fmt.Errorf("%w: %q", ErrUnknownChannel, ch)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

func clampRoomsToSell(n int) int {
	if n < 0 {
		return 0
	}
	if n > inventory.SellableCeiling {
		return inventory.SellableCeiling
	}
	return n
}
