package dto

import (
	domaininventory "innsync/internal/domain/inventory"
)

// InventoryLine is the wire form of the canonical line: external identifier,
// date, sellable count and a two-decimal price.
type InventoryLine struct {
	RoomID      string  `json:"room_id"`
	Date        string  `json:"date"`
	RoomsToSell int     `json:"rooms_to_sell"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency,omitempty"`
}

type Inventory struct {
	PropertyID string          `json:"property_id"`
	From       string          `json:"from"`
	To         string          `json:"to"`
	Lines      []InventoryLine `json:"lines"`
}

func MapInventory(propertyID, from, to string, lines []domaininventory.Line) Inventory {
	out := Inventory{PropertyID: propertyID, From: from, To: to, Lines: make([]InventoryLine, 0, len(lines))}
	for _, l := range lines {
		out.Lines = append(out.Lines, InventoryLine{
			RoomID:      l.ExternalID,
			Date:        string(l.Date),
			RoomsToSell: l.RoomsToSell,
			Price:       l.Price.Float64(),
			Currency:    l.Price.Currency,
		})
	}
	return out
}
