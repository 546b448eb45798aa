package tapechart

import (
	"reflect"
	"sync"
	"testing"

	"innsync/internal/domain/hotel"
)

func chartReservations() []hotel.Reservation {
	return []hotel.Reservation{
		{ID: "res-1", RoomNumber: "101", GuestName: "Anna", CheckIn: "2026-02-06", CheckOut: "2026-02-09", Status: hotel.StatusCheckedIn},
		{ID: "res-2", RoomNumber: "101", GuestName: "Jan", CheckIn: "2026-02-09", CheckOut: "2026-02-12", Status: hotel.StatusConfirmed},
		{ID: "res-3", RoomNumber: "102", GuestName: "Maria", CheckIn: "2026-02-10", CheckOut: "2026-02-14", Status: hotel.StatusConfirmed},
	}
}

func TestClassifyCellChangeover(t *testing.T) {
	cell := ClassifyCell("101", "2026-02-09", chartReservations())
	if cell.Type != CellChangeover {
		t.Fatalf("expected changeover, got %s", cell.Type)
	}
	if cell.DepartureRes == nil || cell.DepartureRes.ID != "res-1" {
		t.Fatalf("expected res-1 departing, got %+v", cell.DepartureRes)
	}
	if cell.ArrivalRes == nil || cell.ArrivalRes.ID != "res-2" {
		t.Fatalf("expected res-2 arriving, got %+v", cell.ArrivalRes)
	}
}

func TestClassifyCellStayPhases(t *testing.T) {
	res := chartReservations()

	if cell := ClassifyCell("102", "2026-02-10", res); cell.Type != CellArrival || cell.Reservation.ID != "res-3" {
		t.Fatalf("expected arrival of res-3, got %+v", cell)
	}
	if cell := ClassifyCell("102", "2026-02-12", res); cell.Type != CellStay {
		t.Fatalf("expected stay, got %s", cell.Type)
	}
	if cell := ClassifyCell("102", "2026-02-14", res); cell.Type != CellDeparture || cell.Reservation != nil && cell.Reservation.ID != "res-3" {
		t.Fatalf("expected departure of res-3, got %+v", cell)
	}
}

func TestClassifyCellConcurrentReads(t *testing.T) {
	res := chartReservations()
	baseline := ClassifyCell("101", "2026-02-09", res)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cell := ClassifyCell("101", "2026-02-09", res)
			if !reflect.DeepEqual(baseline, cell) {
				t.Errorf("concurrent classification differed: %+v", cell)
			}
		}()
	}
	wg.Wait()
}

func TestClassifyCellLoneDeparture(t *testing.T) {
	res := []hotel.Reservation{
		{ID: "res-1", RoomNumber: "101", CheckIn: "2026-02-06", CheckOut: "2026-02-09", Status: hotel.StatusCheckedOut},
	}
	cell := ClassifyCell("101", "2026-02-09", res)
	if cell.Type != CellDeparture {
		t.Fatalf("expected departure, got %s", cell.Type)
	}
}

func TestClassifyCellGapFreeNights(t *testing.T) {
	res := chartReservations()

	cell := ClassifyCell("102", "2026-02-08", res)
	if cell.Type != CellGap {
		t.Fatalf("expected gap, got %s", cell.Type)
	}
	if cell.FreeNights != 2 {
		t.Fatalf("expected 2 free nights until res-3, got %d", cell.FreeNights)
	}

	// After the last departure there is no future booking: an unbounded run.
	open := ClassifyCell("101", "2026-02-13", res)
	if open.Type != CellGap || open.FreeNights != 0 {
		t.Fatalf("expected unbounded gap, got %+v", open)
	}
}

func TestClassifyCellIgnoresCancelled(t *testing.T) {
	res := []hotel.Reservation{
		{ID: "res-1", RoomNumber: "101", CheckIn: "2026-02-06", CheckOut: "2026-02-12", Status: hotel.StatusCancelled},
		{ID: "res-2", RoomNumber: "101", CheckIn: "2026-02-06", CheckOut: "2026-02-12", Status: hotel.StatusNoShow},
	}
	cell := ClassifyCell("101", "2026-02-09", res)
	if cell.Type != CellGap {
		t.Fatalf("cancelled and no-show stays must not render, got %s", cell.Type)
	}
}

func TestOccupancyForDay(t *testing.T) {
	rooms := []hotel.Room{
		{ID: "r-101", Number: "101"}, {ID: "r-102", Number: "102"},
		{ID: "r-103", Number: "103"}, {ID: "r-104", Number: "104"},
	}
	res := []hotel.Reservation{
		{ID: "res-1", RoomNumber: "101", CheckIn: "2026-02-09", CheckOut: "2026-02-12", Status: hotel.StatusConfirmed},
		{ID: "res-2", RoomNumber: "102", CheckIn: "2026-02-09", CheckOut: "2026-02-12", Status: hotel.StatusCheckedIn},
		// Unknown room never counts toward the ratio.
		{ID: "res-3", RoomNumber: "999", CheckIn: "2026-02-09", CheckOut: "2026-02-12", Status: hotel.StatusConfirmed},
	}
	if got := OccupancyForDay("2026-02-09", rooms, res); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
	if got := OccupancyForDay("2026-02-12", rooms, res); got != 0 {
		t.Fatalf("checkout day must not count, got %v", got)
	}
	if got := OccupancyForDay("2026-02-09", nil, res); got != 0 {
		t.Fatalf("no rooms must yield 0, got %v", got)
	}
}

func TestHeatFor(t *testing.T) {
	cases := []struct {
		ratio float64
		want  HeatLevel
	}{
		{1.0, HeatFull},
		{1.2, HeatFull},
		{0.95, HeatHigh},
		{0.9, HeatMid},
		{0.5, HeatMid},
		{0.49, HeatLow},
		{0, HeatLow},
	}
	for _, tc := range cases {
		if got := HeatFor(tc.ratio); got != tc.want {
			t.Fatalf("HeatFor(%v): expected %s, got %s", tc.ratio, tc.want, got)
		}
	}
}

func TestMovementsForDay(t *testing.T) {
	m := MovementsForDay("2026-02-09", chartReservations())
	if len(m.Arrivals) != 1 || m.Arrivals[0].ID != "res-2" {
		t.Fatalf("expected res-2 arriving, got %+v", m.Arrivals)
	}
	if len(m.Departures) != 1 || m.Departures[0].ID != "res-1" {
		t.Fatalf("expected res-1 departing, got %+v", m.Departures)
	}
}

func TestGroupRoomsByFloor(t *testing.T) {
	rooms := []hotel.Room{
		{ID: "r-1", Number: "201"},
		{ID: "r-2", Number: "101"},
		{ID: "r-3", Number: "102"},
		{ID: "r-4", Number: "Annex"},
	}
	floors, byFloor := GroupRoomsByFloor(rooms)
	if len(floors) != 3 || floors[0] != "0" || floors[1] != "1" || floors[2] != "2" {
		t.Fatalf("unexpected floors: %v", floors)
	}
	if len(byFloor["1"]) != 2 {
		t.Fatalf("expected 2 rooms on floor 1, got %d", len(byFloor["1"]))
	}
	if len(byFloor["0"]) != 1 || byFloor["0"][0].Number != "Annex" {
		t.Fatalf("non-numeric room must land on floor 0, got %+v", byFloor["0"])
	}
}
