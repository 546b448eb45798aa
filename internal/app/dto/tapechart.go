package dto

import (
	chartapp "innsync/internal/app/handlers/tapechart"
	"innsync/internal/domain/hotel"
	domainchart "innsync/internal/domain/tapechart"
)

type ChartReservation struct {
	ID        string `json:"id"`
	GuestName string `json:"guest_name"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Status    string `json:"status"`
}

type ChartCell struct {
	Date string `json:"date"`
	Type string `json:"type"`
	// Reservation is present on arrival, stay and departure cells.
	Reservation *ChartReservation `json:"reservation,omitempty"`
	// Departure and Arrival carry the turnover pair on changeover cells.
	Departure  *ChartReservation `json:"departure,omitempty"`
	Arrival    *ChartReservation `json:"arrival,omitempty"`
	FreeNights int               `json:"free_nights,omitempty"`
}

type ChartRow struct {
	RoomID     string      `json:"room_id"`
	RoomNumber string      `json:"room_number"`
	RoomType   string      `json:"room_type"`
	Floor      string      `json:"floor"`
	Status     string      `json:"status"`
	Cells      []ChartCell `json:"cells"`
}

type ChartDay struct {
	Date       string  `json:"date"`
	Occupancy  float64 `json:"occupancy"`
	Heat       string  `json:"heat"`
	Arrivals   int     `json:"arrivals"`
	Departures int     `json:"departures"`
}

type Chart struct {
	PropertyID string     `json:"property_id"`
	Days       []string   `json:"days"`
	Floors     []string   `json:"floors"`
	Rows       []ChartRow `json:"rows"`
	Summary    []ChartDay `json:"summary"`
}

func MapChart(propertyID string, chart chartapp.Chart) Chart {
	out := Chart{
		PropertyID: propertyID,
		Days:       make([]string, 0, len(chart.Days)),
		Floors:     chart.Floors,
		Rows:       make([]ChartRow, 0, len(chart.Rows)),
		Summary:    make([]ChartDay, 0, len(chart.Summary)),
	}
	for _, d := range chart.Days {
		out.Days = append(out.Days, string(d))
	}
	for _, row := range chart.Rows {
		mapped := ChartRow{
			RoomID:     row.Room.ID,
			RoomNumber: row.Room.Number,
			RoomType:   row.Room.Type,
			Floor:      floorOf(row.Room.Number),
			Status:     string(row.Room.Status),
			Cells:      make([]ChartCell, 0, len(row.Cells)),
		}
		for i, cell := range row.Cells {
			mapped.Cells = append(mapped.Cells, mapCell(string(chart.Days[i]), cell))
		}
		out.Rows = append(out.Rows, mapped)
	}
	for _, day := range chart.Summary {
		out.Summary = append(out.Summary, ChartDay{
			Date:       string(day.Date),
			Occupancy:  day.Ratio,
			Heat:       string(day.Heat),
			Arrivals:   day.Arrivals,
			Departures: day.Departures,
		})
	}
	return out
}

func mapCell(date string, cell domainchart.CellState) ChartCell {
	return ChartCell{
		Date:        date,
		Type:        string(cell.Type),
		Reservation: mapReservation(cell.Reservation),
		Departure:   mapReservation(cell.DepartureRes),
		Arrival:     mapReservation(cell.ArrivalRes),
		FreeNights:  cell.FreeNights,
	}
}

func mapReservation(r *hotel.Reservation) *ChartReservation {
	if r == nil {
		return nil
	}
	return &ChartReservation{
		ID:        r.ID,
		GuestName: r.GuestName,
		CheckIn:   string(r.CheckIn),
		CheckOut:  string(r.CheckOut),
		Status:    string(r.Status),
	}
}

func floorOf(roomNumber string) string {
	if len(roomNumber) > 0 && roomNumber[0] >= '0' && roomNumber[0] <= '9' {
		return string(roomNumber[0])
	}
	return "0"
}
