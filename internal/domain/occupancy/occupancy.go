package occupancy

import (
	"innsync/internal/domain/calendar"
	"innsync/internal/domain/hotel"
)

// State of one room on one day. Occupied and Blocked both remove the room
// from the sellable count; neither takes precedence over the other.
type State uint8

const (
	Free State = iota
	Occupied
	Blocked
)

type cellKey struct {
	day    calendar.Day
	roomID string
}

// Grid holds the resolved state for every (room, day) pair of a window.
type Grid struct {
	rooms map[string]struct{}
	cells map[cellKey]State
}

// State returns the resolved state for a room on a day. Rooms outside the
// resolved room set report ok=false and are never counted.
func (g *Grid) State(day calendar.Day, roomID string) (State, bool) {
	if _, known := g.rooms[roomID]; !known {
		return Free, false
	}
	if s, ok := g.cells[cellKey{day: day, roomID: roomID}]; ok {
		return s, true
	}
	return Free, true
}

// Available reports whether the room is free to sell on the day.
func (g *Grid) Available(day calendar.Day, roomID string) bool {
	s, ok := g.State(day, roomID)
	return ok && s == Free
}

type interval struct {
	roomID string
	start  calendar.Day
	end    calendar.Day
}

// Resolve computes the per-day state of every room in the window. Bookings
// count only while their status affects inventory; blocks always count.
// Intervals are pre-filtered to the window once, so the per-day scan touches
// only overlapping entries. Zero-length intervals never occupy a day, and
// intervals fully outside the window are ignored.
func Resolve(rooms []hotel.Room, reservations []hotel.Reservation, blocks []hotel.Block, rng calendar.Range) *Grid {
	g := &Grid{
		rooms: make(map[string]struct{}, len(rooms)),
		cells: make(map[cellKey]State),
	}
	if rng.Validate() != nil {
		return g
	}
	for _, r := range rooms {
		g.rooms[r.ID] = struct{}{}
	}

	occupied := make([]interval, 0, len(reservations))
	for _, r := range reservations {
		if !r.Status.OccupiesInventory() {
			continue
		}
		if iv, ok := clip(r.RoomID, r.CheckIn, r.CheckOut, rng, g.rooms); ok {
			occupied = append(occupied, iv)
		}
	}
	blocked := make([]interval, 0, len(blocks))
	for _, b := range blocks {
		if iv, ok := clip(b.RoomID, b.Start, b.End, rng, g.rooms); ok {
			blocked = append(blocked, iv)
		}
	}

	for _, day := range rng.Days() {
		for _, iv := range occupied {
			if calendar.InInterval(day, iv.start, iv.end) {
				g.cells[cellKey{day: day, roomID: iv.roomID}] = Occupied
			}
		}
		for _, iv := range blocked {
			if calendar.InInterval(day, iv.start, iv.end) {
				g.cells[cellKey{day: day, roomID: iv.roomID}] = Blocked
			}
		}
	}
	return g
}

func clip(roomID string, start, end calendar.Day, rng calendar.Range, rooms map[string]struct{}) (interval, bool) {
	if start >= end {
		return interval{}, false
	}
	if _, ok := rooms[roomID]; !ok {
		return interval{}, false
	}
	if !rng.Overlaps(start, end) {
		return interval{}, false
	}
	return interval{roomID: roomID, start: start, end: end}, true
}
