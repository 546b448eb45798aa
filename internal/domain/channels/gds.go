package channels

import (
	"encoding/json"
	"fmt"

	"innsync/internal/domain/calendar"
	"innsync/internal/domain/inventory"
)

// GDSInventoryItem is one availability position sent to the GDS switch.
type GDSInventoryItem struct {
	RoomID      string  `json:"roomId"`
	Date        string  `json:"date"`
	RoomsToSell int     `json:"roomsToSell"`
	Price       float64 `json:"price"`
}

// GDSRequest is the JSON body the switch (DerbySoft, SiteMinder and the
// like) accepts for Amadeus/Sabre/Travelport.
type GDSRequest struct {
	Provider   string             `json:"provider"`
	PropertyID string             `json:"propertyId"`
	DateFrom   string             `json:"dateFrom"`
	DateTo     string             `json:"dateTo"`
	Inventory  []GDSInventoryItem `json:"inventory"`
}

func buildGDSPayload(provider Channel, propertyID string, rng calendar.Range, lines []inventory.Line) (Payload, error) {
	req := GDSRequest{
		Provider:   string(provider),
		PropertyID: propertyID,
		DateFrom:   string(rng.From),
		DateTo:     string(rng.To),
		Inventory:  make([]GDSInventoryItem, 0, len(lines)),
	}
	for _, l := range lines {
		req.Inventory = append(req.Inventory, GDSInventoryItem{
			RoomID:      l.ExternalID,
			Date:        string(l.Date),
			RoomsToSell: clampRoomsToSell(l.RoomsToSell),
			Price:       l.Price.Float64(),
		})
	}
	body, err := json.Marshal(req)
	if err != nil {
		return Payload{}, fmt.Errorf("channels: marshal gds request: %w", err)
	}
	return Payload{
		Channel:     provider,
		ContentType: "application/json",
		Body:        body,
		Records:     len(lines),
	}, nil
}
