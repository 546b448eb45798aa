package snapshot

import (
	"context"

	"innsync/internal/domain/calendar"
	"innsync/internal/domain/hotel"
	"innsync/internal/domain/rates"
)

// Snapshot is the full engine input for one property and date window.
// Providing a consistent view across the collections is the source's
// concern (one transaction, one read replica view); the engine tolerates
// skew between them by temporarily over- or under-counting availability,
// never by failing.
type Snapshot struct {
	Rooms        []hotel.Room
	Reservations []hotel.Reservation
	Blocks       []hotel.Block
	RatePlans    []rates.Plan
	RoomTypes    []hotel.RoomType
	Mappings     []hotel.Mapping
}

// MappingsFor keeps mappings that apply to the channel; entries without a
// channel apply everywhere.
func (s Snapshot) MappingsFor(channel string) []hotel.Mapping {
	if channel == "" {
		return s.Mappings
	}
	out := make([]hotel.Mapping, 0, len(s.Mappings))
	for _, m := range s.Mappings {
		if m.Channel == "" || m.Channel == channel {
			out = append(out, m)
		}
	}
	return out
}

// Source hands the engine a point-in-time snapshot. Implementations should
// pre-filter interval collections to the requested window.
type Source interface {
	Snapshot(ctx context.Context, propertyID string, rng calendar.Range) (Snapshot, error)
}
