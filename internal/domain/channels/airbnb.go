package channels

import (
	"encoding/json"
	"errors"
	"fmt"

	"innsync/internal/domain/inventory"
)

var ErrListingIDRequired = errors.New("channels: airbnb listing id is required")

type airbnbPrice struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type airbnbDay struct {
	Date      string      `json:"date"`
	Available bool        `json:"available"`
	Price     airbnbPrice `json:"price"`
}

type airbnbCalendarRequest struct {
	ListingID    string      `json:"listing_id"`
	Availability []airbnbDay `json:"availability"`
}

// buildAirbnbPayload renders the Homes calendar availability body. Airbnb
// addresses a single listing, so the per-type external ids collapse into
// per-date availability for the configured listing.
func buildAirbnbPayload(lines []inventory.Line, opts ExportOptions) (Payload, error) {
	if opts.AirbnbListingID == "" {
		return Payload{}, ErrListingIDRequired
	}
	currency := opts.Currency
	if currency == "" {
		currency = "PLN"
	}
	req := airbnbCalendarRequest{
		ListingID:    opts.AirbnbListingID,
		Availability: make([]airbnbDay, 0, len(lines)),
	}
	for _, l := range lines {
		req.Availability = append(req.Availability, airbnbDay{
			Date:      string(l.Date),
			Available: l.RoomsToSell > 0,
			Price:     airbnbPrice{Amount: l.Price.Float64(), Currency: currency},
		})
	}
	body, err := json.Marshal(req)
	if err != nil {
		return Payload{}, fmt.Errorf("channels: marshal airbnb request: %w", err)
	}
	return Payload{
		Channel:     Airbnb,
		ContentType: "application/json",
		Body:        body,
		Records:     len(lines),
	}, nil
}
