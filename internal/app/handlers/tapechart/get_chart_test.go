package tapechart

import (
	"context"
	"errors"
	"testing"

	"innsync/internal/app/snapshot"
	"innsync/internal/domain/calendar"
	"innsync/internal/domain/hotel"
	domaininventory "innsync/internal/domain/inventory"
	domainchart "innsync/internal/domain/tapechart"
)

type stubSource struct {
	snap snapshot.Snapshot
	err  error
}

func (s *stubSource) Snapshot(ctx context.Context, propertyID string, rng calendar.Range) (snapshot.Snapshot, error) {
	return s.snap, s.err
}

func chartSnapshot() snapshot.Snapshot {
	return snapshot.Snapshot{
		Rooms: []hotel.Room{
			{ID: "r-101", Number: "101", Type: "Queen"},
			{ID: "r-102", Number: "102", Type: "Twin"},
			{ID: "r-201", Number: "201", Type: "Queen"},
		},
		Reservations: []hotel.Reservation{
			{ID: "res-1", RoomNumber: "101", CheckIn: "2026-02-08", CheckOut: "2026-02-09", Status: hotel.StatusCheckedIn},
			{ID: "res-2", RoomNumber: "101", CheckIn: "2026-02-09", CheckOut: "2026-02-11", Status: hotel.StatusConfirmed},
		},
	}
}

func TestHandleChartShape(t *testing.T) {
	h := &GetChartHandler{Source: &stubSource{snap: chartSnapshot()}}
	chart, err := h.Handle(context.Background(), ChartQuery{
		PropertyID: "p1",
		Range:      calendar.Range{From: "2026-02-09", To: "2026-02-11"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(chart.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(chart.Days))
	}
	if len(chart.Floors) != 2 || chart.Floors[0] != "1" || chart.Floors[1] != "2" {
		t.Fatalf("unexpected floors: %v", chart.Floors)
	}
	if len(chart.Rows) != 3 {
		t.Fatalf("expected a row per room, got %d", len(chart.Rows))
	}
	// Rows follow floor order: 101, 102, then 201.
	if chart.Rows[0].Room.Number != "101" || chart.Rows[2].Room.Number != "201" {
		t.Fatalf("unexpected row order: %s .. %s", chart.Rows[0].Room.Number, chart.Rows[2].Room.Number)
	}

	// Room 101 on the 9th turns over from res-1 to res-2.
	cell := chart.Rows[0].Cells[0]
	if cell.Type != domainchart.CellChangeover {
		t.Fatalf("expected changeover, got %s", cell.Type)
	}

	if len(chart.Summary) != 3 {
		t.Fatalf("expected summary per day, got %d", len(chart.Summary))
	}
	day := chart.Summary[0]
	if day.Arrivals != 1 || day.Departures != 1 {
		t.Fatalf("unexpected movements: %+v", day)
	}
	if day.Ratio != 1.0/3 {
		t.Fatalf("expected 1/3 occupancy, got %v", day.Ratio)
	}
	if day.Heat != domainchart.HeatLow {
		t.Fatalf("expected low heat, got %s", day.Heat)
	}
}

func TestHandleChartInvalidRange(t *testing.T) {
	h := &GetChartHandler{Source: &stubSource{snap: chartSnapshot()}}
	_, err := h.Handle(context.Background(), ChartQuery{
		PropertyID: "p1",
		Range:      calendar.Range{From: "2026-02-11", To: "2026-02-09"},
	})
	var validation *domaininventory.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestHandleChartSourceError(t *testing.T) {
	h := &GetChartHandler{Source: &stubSource{err: errors.New("db down")}}
	if _, err := h.Handle(context.Background(), ChartQuery{
		PropertyID: "p1",
		Range:      calendar.Range{From: "2026-02-09", To: "2026-02-11"},
	}); err == nil {
		t.Fatal("expected source error to propagate")
	}
}
