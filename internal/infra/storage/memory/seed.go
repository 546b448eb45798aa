package memory

import (
	"innsync/internal/domain/calendar"
	"innsync/internal/domain/hotel"
	"innsync/internal/domain/rates"
	"innsync/internal/domain/shared/money"
)

// SeedDemo loads a small property so the API answers out of the box:
// eight rooms on two floors, two room types, a weekday/weekend rate pair
// and a handful of stays around the given anchor day.
func SeedDemo(s *Source, propertyID, currency string, anchor calendar.Day) {
	queen := hotel.RoomType{ID: "rt-queen", Name: "Queen", BasePrice: money.Money{Amount: 25000, Currency: currency}}
	twin := hotel.RoomType{ID: "rt-twin", Name: "Twin", BasePrice: money.Money{Amount: 18000, Currency: currency}}

	rooms := []hotel.Room{
		{ID: "r-101", Number: "101", Type: "Queen", ForSale: true, Status: hotel.StatusClean},
		{ID: "r-102", Number: "102", Type: "Queen", ForSale: true, Status: hotel.StatusInspected},
		{ID: "r-103", Number: "103", Type: "Twin", ForSale: true, Status: hotel.StatusClean},
		{ID: "r-104", Number: "104", Type: "Twin", ForSale: true, Status: hotel.StatusDirty},
		{ID: "r-201", Number: "201", Type: "Queen", ForSale: true, Status: hotel.StatusClean},
		{ID: "r-202", Number: "202", Type: "Queen", ForSale: false, Status: hotel.StatusClean},
		{ID: "r-203", Number: "203", Type: "Twin", ForSale: true, Status: hotel.StatusClean},
		{ID: "r-204", Number: "204", Type: "Twin", ForSale: true, Status: hotel.StatusMaintenance},
	}
	s.SetProperty(propertyID, rooms, []hotel.RoomType{queen, twin})

	s.AddRatePlan(propertyID, rates.Plan{
		RoomTypeID: "rt-queen",
		ValidFrom:  anchor.AddDays(-30),
		ValidTo:    anchor.AddDays(365),
		Price:      money.Money{Amount: 27500, Currency: currency},
	})
	s.AddRatePlan(propertyID, rates.Plan{
		RoomTypeID:     "rt-queen",
		ValidFrom:      anchor.AddDays(-30),
		ValidTo:        anchor.AddDays(365),
		Price:          money.Money{Amount: 32000, Currency: currency},
		WeekendHoliday: true,
	})

	s.AddReservation(propertyID, hotel.Reservation{
		ID: "res-1", RoomID: "r-101", RoomNumber: "101", GuestName: "Anna Kowalska",
		CheckIn: anchor, CheckOut: anchor.AddDays(3), Status: hotel.StatusConfirmed,
	})
	s.AddReservation(propertyID, hotel.Reservation{
		ID: "res-2", RoomID: "r-101", RoomNumber: "101", GuestName: "Jan Nowak",
		CheckIn: anchor.AddDays(3), CheckOut: anchor.AddDays(5), Status: hotel.StatusConfirmed,
	})
	s.AddReservation(propertyID, hotel.Reservation{
		ID: "res-3", RoomID: "r-201", RoomNumber: "201", GuestName: "Maria Vidal",
		CheckIn: anchor.AddDays(1), CheckOut: anchor.AddDays(4), Status: hotel.StatusCheckedIn,
	})

	s.AddBlock(propertyID, hotel.Block{
		ID: "blk-1", RoomID: "r-203",
		Start: anchor.AddDays(2), End: anchor.AddDays(6), Reason: "renovation",
	})

	s.AddMapping(propertyID, hotel.Mapping{
		InternalType: hotel.MappingRoomType, InternalID: "rt-queen", ExternalID: "BK-QUEEN-01",
	})
}
