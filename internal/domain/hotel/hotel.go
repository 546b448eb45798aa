package hotel

import (
	"innsync/internal/domain/calendar"
	"innsync/internal/domain/shared/money"
)

// RoomStatus mirrors the housekeeping states maintained by the PMS. Only
// Clean and Inspected rooms are offered for sale.
type RoomStatus string

const (
	StatusClean           RoomStatus = "CLEAN"
	StatusDirty           RoomStatus = "DIRTY"
	StatusOutOfOrder      RoomStatus = "OOO"
	StatusInspection      RoomStatus = "INSPECTION"
	StatusInspected       RoomStatus = "INSPECTED"
	StatusCheckoutPending RoomStatus = "CHECKOUT_PENDING"
	StatusMaintenance     RoomStatus = "MAINTENANCE"
)

// Sellable reports whether housekeeping allows offering the room.
func (s RoomStatus) Sellable() bool {
	return s == StatusClean || s == StatusInspected
}

// ReservationStatus is the closed set of booking lifecycle states.
type ReservationStatus string

const (
	StatusConfirmed  ReservationStatus = "CONFIRMED"
	StatusCheckedIn  ReservationStatus = "CHECKED_IN"
	StatusCheckedOut ReservationStatus = "CHECKED_OUT"
	StatusCancelled  ReservationStatus = "CANCELLED"
	StatusNoShow     ReservationStatus = "NO_SHOW"
)

// OccupiesInventory reports whether the reservation removes a room from
// forward availability. Departed stays do not: their nights are already past.
func (s ReservationStatus) OccupiesInventory() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

// OccupiesChart reports whether the reservation should render on the tape
// chart, including historical cells of departed guests.
func (s ReservationStatus) OccupiesChart() bool {
	return s == StatusConfirmed || s == StatusCheckedIn || s == StatusCheckedOut
}

// Room is read-only to the engine; housekeeping and maintenance own it.
// Type is a free-text association to RoomType.Name, not a foreign key: a
// matching RoomType record may not exist, in which case pricing falls back
// to the room's own static price.
type Room struct {
	ID      string
	Number  string
	Type    string
	ForSale bool
	Status  RoomStatus
	Price   money.Money
}

type RoomType struct {
	ID        string
	Name      string
	BasePrice money.Money
}

// Reservation occupies the half-open interval [CheckIn, CheckOut): the
// checkout day frees the room.
type Reservation struct {
	ID         string
	RoomID     string
	RoomNumber string
	GuestName  string
	CheckIn    calendar.Day
	CheckOut   calendar.Day
	Status     ReservationStatus
}

// Block is a maintenance or out-of-service interval [Start, End). It always
// occupies inventory, independent of any reservation.
type Block struct {
	ID     string
	RoomID string
	Start  calendar.Day
	End    calendar.Day
	Reason string
}

// Mapping internal types.
const (
	MappingRoom     = "room"
	MappingRoomType = "room_type"
)

// Mapping pairs an internal room or room-type id with the identifier a
// distribution channel knows it by. Absence of a mapping is valid; callers
// fall back to a synthetic identifier derived from the internal name.
type Mapping struct {
	Channel      string
	InternalType string
	InternalID   string
	ExternalID   string
}

// ExternalRoomTypeIDs indexes room-type mappings by internal id, keeping the
// first entry on duplicates.
func ExternalRoomTypeIDs(mappings []Mapping) map[string]string {
	out := make(map[string]string, len(mappings))
	for _, m := range mappings {
		if m.InternalType != MappingRoomType {
			continue
		}
		if _, ok := out[m.InternalID]; !ok {
			out[m.InternalID] = m.ExternalID
		}
	}
	return out
}

// RoomTypesByName indexes room types by their free-text name, keeping the
// first record on duplicates.
func RoomTypesByName(types []RoomType) map[string]RoomType {
	out := make(map[string]RoomType, len(types))
	for _, t := range types {
		if _, ok := out[t.Name]; !ok {
			out[t.Name] = t
		}
	}
	return out
}
