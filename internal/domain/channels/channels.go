package channels

import (
	"errors"
	"fmt"
)

// Channel identifies a distribution target: an OTA synced through the
// channel manager or a GDS reached through a switch.
type Channel string

const (
	BookingCom Channel = "booking_com"
	Airbnb     Channel = "airbnb"
	Expedia    Channel = "expedia"
	Amadeus    Channel = "amadeus"
	Sabre      Channel = "sabre"
	Travelport Channel = "travelport"
)

var ErrUnknownChannel = errors.New("channels: unknown channel")

func Parse(s string) (Channel, error) {
	switch Channel(s) {
	case BookingCom, Airbnb, Expedia, Amadeus, Sabre, Travelport:
		return Channel(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChannel, s)
}

// GDS reports whether the channel is reached through a GDS switch rather
// than a direct OTA API.
func (c Channel) GDS() bool {
	return c == Amadeus || c == Sabre || c == Travelport
}

// SyncResult is the engine-facing outcome of one push: the transport
// collaborator reduces whatever the wire said to success plus a message.
type SyncResult struct {
	Channel Channel `json:"channel"`
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Records int     `json:"records"`
}

// Payload is one channel-ready request body. Building it is pure; delivery
// belongs to the transport collaborator.
type Payload struct {
	Channel     Channel
	ContentType string
	Body        []byte
	Records     int
}
