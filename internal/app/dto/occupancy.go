package dto

import (
	chartapp "innsync/internal/app/handlers/tapechart"
)

type OccupancyDay struct {
	Date      string  `json:"date"`
	Occupancy float64 `json:"occupancy"`
	Heat      string  `json:"heat"`
}

type Occupancy struct {
	PropertyID string         `json:"property_id"`
	Days       []OccupancyDay `json:"days"`
}

func MapOccupancy(propertyID string, summary []chartapp.DaySummary) Occupancy {
	out := Occupancy{PropertyID: propertyID, Days: make([]OccupancyDay, 0, len(summary))}
	for _, day := range summary {
		out.Days = append(out.Days, OccupancyDay{
			Date:      string(day.Date),
			Occupancy: day.Ratio,
			Heat:      string(day.Heat),
		})
	}
	return out
}
