package inventory

import (
	"innsync/internal/domain/calendar"
	"innsync/internal/domain/hotel"
	"innsync/internal/domain/occupancy"
	"innsync/internal/domain/rates"
	"innsync/internal/domain/shared/money"
)

// SellableCeiling caps the per-day rooms-to-sell count. The value comes from
// the single-byte roomstosell field of a legacy channel protocol; it is a
// hard cap, not a soft truncation, and channels with wider fields may raise
// it via Input.Ceiling.
const SellableCeiling = 254

// SyntheticTypePrefix prefixes fallback identifiers when no channel mapping
// exists for a room type. The internal UUID is never sent to a channel.
const SyntheticTypePrefix = "type:"

// Line is the canonical inventory unit consumed by distribution export and
// internal reporting: one sellable room-type identifier on one date.
type Line struct {
	ExternalID  string
	Date        calendar.Day
	RoomsToSell int
	Price       money.Money
}

// Input is a point-in-time snapshot of everything the aggregation reads.
// The engine never mutates it and produces identical output for identical
// input, so results are safely cacheable and re-runnable.
type Input struct {
	Rooms        []hotel.Room
	Reservations []hotel.Reservation
	Blocks       []hotel.Block
	RatePlans    []rates.Plan
	RoomTypes    []hotel.RoomType
	Mappings     []hotel.Mapping
	Range        calendar.Range

	// Weekend decides the rate tie-break per day; nil means Saturday/Sunday.
	Weekend rates.WeekendFunc
	// Ceiling overrides SellableCeiling when > 0.
	Ceiling int
	// DefaultPrice is the static fallback of last resort for rooms with no
	// plan, no base price, and no price of their own.
	DefaultPrice money.Money
}

type typeBucket struct {
	count int
	price money.Money
	rt    hotel.RoomType
	hasRT bool
	name  string
}

// Build aggregates sellable counts and representative prices per room type
// per day. Rooms of one type are fungible in price for a given day: the
// first resolved price for the type wins. Zero-count lines are omitted, and
// an entirely empty result is a NoAvailabilityError rather than a success.
func Build(in Input) ([]Line, error) {
	if err := in.Range.Validate(); err != nil {
		return nil, &ValidationError{Reason: "date range from must not be after to"}
	}
	weekend := in.Weekend
	if weekend == nil {
		weekend = rates.DefaultWeekend
	}
	ceiling := in.Ceiling
	if ceiling <= 0 {
		ceiling = SellableCeiling
	}

	sellable := make([]hotel.Room, 0, len(in.Rooms))
	for _, r := range in.Rooms {
		if r.ForSale && r.Status.Sellable() {
			sellable = append(sellable, r)
		}
	}

	grid := occupancy.Resolve(sellable, in.Reservations, in.Blocks, in.Range)
	typeByName := hotel.RoomTypesByName(in.RoomTypes)
	externalByTypeID := hotel.ExternalRoomTypeIDs(in.Mappings)

	var lines []Line
	for _, day := range in.Range.Days() {
		isWeekend := weekend(day)

		// Insertion order follows room order, keeping output deterministic.
		byType := make(map[string]*typeBucket)
		var order []string

		for _, room := range sellable {
			if !grid.Available(day, room.ID) {
				continue
			}
			bucket, ok := byType[room.Type]
			if ok {
				bucket.count++
				continue
			}
			rt, hasRT := typeByName[room.Type]
			price := resolveRoomPrice(room, rt, hasRT, day, isWeekend, in.RatePlans, in.DefaultPrice)
			byType[room.Type] = &typeBucket{count: 1, price: price, rt: rt, hasRT: hasRT, name: room.Type}
			order = append(order, room.Type)
		}

		for _, name := range order {
			bucket := byType[name]
			if bucket.count == 0 {
				continue
			}
			lines = append(lines, Line{
				ExternalID:  externalID(bucket, externalByTypeID),
				Date:        day,
				RoomsToSell: min(bucket.count, ceiling),
				Price:       bucket.price,
			})
		}
	}

	if len(lines) == 0 {
		return nil, &NoAvailabilityError{Range: in.Range}
	}
	return lines, nil
}

// resolveRoomPrice applies the full fallback chain: rate plan (weekend
// tie-break), room type base price, the room's own static price, then the
// caller's default. The room-type association is an exact lookup by the
// room's free-text type name; a miss skips straight to the static prices.
func resolveRoomPrice(room hotel.Room, rt hotel.RoomType, hasRT bool, day calendar.Day, isWeekend bool, plans []rates.Plan, def money.Money) money.Money {
	static := room.Price
	if static.IsZero() {
		static = def
	}
	if !hasRT {
		return static
	}
	return rates.ResolvePrice(rt.ID, day, isWeekend, plans, rt.BasePrice, static)
}

func externalID(bucket *typeBucket, externalByTypeID map[string]string) string {
	if bucket.hasRT {
		if ext, ok := externalByTypeID[bucket.rt.ID]; ok {
			return ext
		}
	}
	return SyntheticTypePrefix + bucket.name
}
