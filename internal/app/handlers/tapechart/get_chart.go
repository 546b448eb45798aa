package tapechart

import (
	"context"
	"fmt"

	"innsync/internal/app/snapshot"
	"innsync/internal/domain/calendar"
	"innsync/internal/domain/hotel"
	domaininventory "innsync/internal/domain/inventory"
	domainchart "innsync/internal/domain/tapechart"
)

// ChartQuery asks for the day-by-room view model of a property.
type ChartQuery struct {
	PropertyID string
	Range      calendar.Range
}

// RoomRow is one chart row: a room and its classified cells, one per day.
type RoomRow struct {
	Room  hotel.Room
	Cells []domainchart.CellState
}

// DaySummary powers the heat-strip overview and the daily movements panel.
type DaySummary struct {
	Date       calendar.Day
	Ratio      float64
	Heat       domainchart.HeatLevel
	Arrivals   int
	Departures int
}

// Chart is the full view model for a window: recomputed per request,
// never stored.
type Chart struct {
	Days    []calendar.Day
	Floors  []string
	Rows    []RoomRow
	Summary []DaySummary
}

type GetChartHandler struct {
	Source snapshot.Source
}

func (h *GetChartHandler) Handle(ctx context.Context, q ChartQuery) (Chart, error) {
	if err := q.Range.Validate(); err != nil {
		return Chart{}, &domaininventory.ValidationError{Reason: "date range from must not be after to"}
	}
	snap, err := h.Source.Snapshot(ctx, q.PropertyID, q.Range)
	if err != nil {
		return Chart{}, fmt.Errorf("tapechart: load snapshot: %w", err)
	}

	days := q.Range.Days()
	floors, byFloor := domainchart.GroupRoomsByFloor(snap.Rooms)

	chart := Chart{Days: days, Floors: floors}
	for _, floor := range floors {
		for _, room := range byFloor[floor] {
			row := RoomRow{Room: room, Cells: make([]domainchart.CellState, 0, len(days))}
			for _, day := range days {
				row.Cells = append(row.Cells, domainchart.ClassifyCell(room.Number, day, snap.Reservations))
			}
			chart.Rows = append(chart.Rows, row)
		}
	}

	for _, day := range days {
		ratio := domainchart.OccupancyForDay(day, snap.Rooms, snap.Reservations)
		moves := domainchart.MovementsForDay(day, snap.Reservations)
		chart.Summary = append(chart.Summary, DaySummary{
			Date:       day,
			Ratio:      ratio,
			Heat:       domainchart.HeatFor(ratio),
			Arrivals:   len(moves.Arrivals),
			Departures: len(moves.Departures),
		})
	}
	return chart, nil
}
