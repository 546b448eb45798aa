package tapechart

import (
	"sort"

	"innsync/internal/domain/calendar"
	"innsync/internal/domain/hotel"
)

// CellType classifies one (room, day) cell of the chart.
type CellType string

const (
	CellArrival    CellType = "arrival"
	CellStay       CellType = "stay"
	CellDeparture  CellType = "departure"
	CellChangeover CellType = "changeover"
	CellGap        CellType = "gap"
)

// CellState is ephemeral: derived purely from reservation intervals and
// recomputed on every render, never stored.
type CellState struct {
	Type CellType
	// Reservation is set for arrival, stay and departure cells.
	Reservation *hotel.Reservation
	// DepartureRes and ArrivalRes carry the same-day turnover pair for
	// changeover cells; a changeover is never merged into a single state.
	DepartureRes *hotel.Reservation
	ArrivalRes   *hotel.Reservation
	// FreeNights is the exact run of free nights until the next check-in for
	// gap cells; 0 means no future booking. Display capping ("3+") is the
	// UI's business.
	FreeNights int
}

// ClassifyCell determines the state of a room on a day, first match wins:
// same-day departure plus arrival is a changeover, then a single overlapping
// stay, then a lone departure, otherwise a gap with its free-night run.
func ClassifyCell(roomNumber string, day calendar.Day, reservations []hotel.Reservation) CellState {
	var overlapping, departing, arriving []*hotel.Reservation
	for i := range reservations {
		r := &reservations[i]
		if r.RoomNumber != roomNumber || !r.Status.OccupiesChart() {
			continue
		}
		if calendar.InInterval(day, r.CheckIn, r.CheckOut) {
			overlapping = append(overlapping, r)
		}
		if r.CheckOut == day {
			departing = append(departing, r)
		}
		if r.CheckIn == day {
			arriving = append(arriving, r)
		}
	}

	if len(departing) >= 1 && len(arriving) >= 1 {
		return CellState{Type: CellChangeover, DepartureRes: departing[0], ArrivalRes: arriving[0]}
	}
	if len(overlapping) == 1 {
		res := overlapping[0]
		switch {
		case res.CheckIn == day:
			return CellState{Type: CellArrival, Reservation: res}
		case res.CheckOut > day:
			return CellState{Type: CellStay, Reservation: res}
		default:
			return CellState{Type: CellDeparture, Reservation: res}
		}
	}
	if len(departing) == 1 {
		return CellState{Type: CellDeparture, Reservation: departing[0]}
	}
	return CellState{Type: CellGap, FreeNights: FreeNightsFrom(roomNumber, day, reservations)}
}

// FreeNightsFrom counts nights from day until the room's next check-in.
// 0 means no future booking exists (an unbounded run).
func FreeNightsFrom(roomNumber string, day calendar.Day, reservations []hotel.Reservation) int {
	var next calendar.Day
	for _, r := range reservations {
		if r.RoomNumber != roomNumber || !r.Status.OccupiesChart() {
			continue
		}
		if r.CheckIn > day && (next == "" || r.CheckIn < next) {
			next = r.CheckIn
		}
	}
	if next == "" {
		return 0
	}
	nights := day.NightsUntil(next)
	if nights <= 0 {
		return 0
	}
	return nights
}

// OccupancyForDay returns the fraction of rooms occupied on the day, 0..1.
// A room is occupied when some chart-visible reservation overlaps the day.
func OccupancyForDay(day calendar.Day, rooms []hotel.Room, reservations []hotel.Reservation) float64 {
	if len(rooms) == 0 {
		return 0
	}
	known := make(map[string]struct{}, len(rooms))
	for _, r := range rooms {
		known[r.Number] = struct{}{}
	}
	occupied := make(map[string]struct{})
	for _, r := range reservations {
		if !r.Status.OccupiesChart() {
			continue
		}
		if _, ok := known[r.RoomNumber]; !ok {
			continue
		}
		if calendar.InInterval(day, r.CheckIn, r.CheckOut) {
			occupied[r.RoomNumber] = struct{}{}
		}
	}
	return float64(len(occupied)) / float64(len(rooms))
}

// HeatLevel buckets a daily occupancy ratio for the heat-strip overview.
type HeatLevel string

const (
	HeatFull HeatLevel = "full"
	HeatHigh HeatLevel = "high"
	HeatMid  HeatLevel = "mid"
	HeatLow  HeatLevel = "low"
)

// HeatFor reproduces the display thresholds exactly for visual parity:
// full occupancy, above 90%, below 50%, everything else mid.
func HeatFor(ratio float64) HeatLevel {
	switch {
	case ratio >= 1:
		return HeatFull
	case ratio > 0.9:
		return HeatHigh
	case ratio < 0.5:
		return HeatLow
	default:
		return HeatMid
	}
}

// Movements lists the reservations arriving and departing on a day,
// chart-wide, for the daily movements panel.
type Movements struct {
	Arrivals   []hotel.Reservation
	Departures []hotel.Reservation
}

func MovementsForDay(day calendar.Day, reservations []hotel.Reservation) Movements {
	var m Movements
	for _, r := range reservations {
		if !r.Status.OccupiesChart() {
			continue
		}
		if r.CheckIn == day {
			m.Arrivals = append(m.Arrivals, r)
		}
		if r.CheckOut == day {
			m.Departures = append(m.Departures, r)
		}
	}
	return m
}

// GroupRoomsByFloor groups rooms by the leading digit of their number
// ("101" is floor "1"); rooms without a digit prefix land on floor "0".
// Floors come back in ascending order.
func GroupRoomsByFloor(rooms []hotel.Room) ([]string, map[string][]hotel.Room) {
	byFloor := make(map[string][]hotel.Room)
	for _, r := range rooms {
		floor := "0"
		if len(r.Number) > 0 && r.Number[0] >= '0' && r.Number[0] <= '9' {
			floor = string(r.Number[0])
		}
		byFloor[floor] = append(byFloor[floor], r)
	}
	floors := make([]string, 0, len(byFloor))
	for f := range byFloor {
		floors = append(floors, f)
	}
	sort.Strings(floors)
	return floors, byFloor
}
