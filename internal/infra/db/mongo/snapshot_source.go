package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"innsync/internal/app/snapshot"
	"innsync/internal/domain/calendar"
	"innsync/internal/domain/hotel"
	"innsync/internal/domain/rates"
	"innsync/internal/domain/shared/money"
)

// SnapshotSource reads the engine input collections for one property.
// Interval collections are pre-filtered to the requested window in the
// query; the six reads run concurrently against the same database view.
type SnapshotSource struct {
	db       *mongo.Database
	currency string
}

func NewSnapshotSource(client *Client, currency string) *SnapshotSource {
	return &SnapshotSource{db: client.DB, currency: currency}
}

func (s *SnapshotSource) Snapshot(ctx context.Context, propertyID string, rng calendar.Range) (snapshot.Snapshot, error) {
	var snap snapshot.Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var docs []roomDocument
		if err := s.findAll(gctx, "rooms", bson.M{"property_id": propertyID}, &docs); err != nil {
			return fmt.Errorf("mongo: load rooms: %w", err)
		}
		snap.Rooms = make([]hotel.Room, 0, len(docs))
		for _, d := range docs {
			snap.Rooms = append(snap.Rooms, d.toRoom(s.currency))
		}
		return nil
	})

	g.Go(func() error {
		// Overlap with the inclusive window: a stay occupies nights in
		// [check_in, check_out), so check_out on the window start is out.
		filter := bson.M{
			"property_id": propertyID,
			"check_in":    bson.M{"$lte": string(rng.To)},
			"check_out":   bson.M{"$gt": string(rng.From)},
		}
		var docs []reservationDocument
		if err := s.findAll(gctx, "reservations", filter, &docs); err != nil {
			return fmt.Errorf("mongo: load reservations: %w", err)
		}
		snap.Reservations = make([]hotel.Reservation, 0, len(docs))
		for _, d := range docs {
			snap.Reservations = append(snap.Reservations, d.toReservation())
		}
		return nil
	})

	g.Go(func() error {
		filter := bson.M{
			"property_id": propertyID,
			"start":       bson.M{"$lte": string(rng.To)},
			"end":         bson.M{"$gt": string(rng.From)},
		}
		var docs []blockDocument
		if err := s.findAll(gctx, "room_blocks", filter, &docs); err != nil {
			return fmt.Errorf("mongo: load blocks: %w", err)
		}
		snap.Blocks = make([]hotel.Block, 0, len(docs))
		for _, d := range docs {
			snap.Blocks = append(snap.Blocks, d.toBlock())
		}
		return nil
	})

	g.Go(func() error {
		filter := bson.M{
			"property_id": propertyID,
			"valid_from":  bson.M{"$lte": string(rng.To)},
			"valid_to":    bson.M{"$gte": string(rng.From)},
		}
		var docs []ratePlanDocument
		if err := s.findAll(gctx, "rate_plans", filter, &docs); err != nil {
			return fmt.Errorf("mongo: load rate plans: %w", err)
		}
		snap.RatePlans = make([]rates.Plan, 0, len(docs))
		for _, d := range docs {
			snap.RatePlans = append(snap.RatePlans, d.toPlan(s.currency))
		}
		return nil
	})

	g.Go(func() error {
		var docs []roomTypeDocument
		if err := s.findAll(gctx, "room_types", bson.M{"property_id": propertyID}, &docs); err != nil {
			return fmt.Errorf("mongo: load room types: %w", err)
		}
		snap.RoomTypes = make([]hotel.RoomType, 0, len(docs))
		for _, d := range docs {
			snap.RoomTypes = append(snap.RoomTypes, d.toRoomType(s.currency))
		}
		return nil
	})

	g.Go(func() error {
		var docs []mappingDocument
		if err := s.findAll(gctx, "channel_mappings", bson.M{"property_id": propertyID}, &docs); err != nil {
			return fmt.Errorf("mongo: load channel mappings: %w", err)
		}
		snap.Mappings = make([]hotel.Mapping, 0, len(docs))
		for _, d := range docs {
			snap.Mappings = append(snap.Mappings, d.toMapping())
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return snapshot.Snapshot{}, err
	}
	return snap, nil
}

func (s *SnapshotSource) findAll(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	cur, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

type roomDocument struct {
	ID         string `bson:"_id"`
	Number     string `bson:"number"`
	Type       string `bson:"type"`
	ForSale    bool   `bson:"for_sale"`
	Status     string `bson:"status"`
	PriceCents int64  `bson:"price_cents"`
}

func (d roomDocument) toRoom(currency string) hotel.Room {
	return hotel.Room{
		ID:      d.ID,
		Number:  d.Number,
		Type:    d.Type,
		ForSale: d.ForSale,
		Status:  hotel.RoomStatus(d.Status),
		Price:   money.Money{Amount: d.PriceCents, Currency: currency},
	}
}

type reservationDocument struct {
	ID         string `bson:"_id"`
	RoomID     string `bson:"room_id"`
	RoomNumber string `bson:"room_number"`
	GuestName  string `bson:"guest_name"`
	CheckIn    string `bson:"check_in"`
	CheckOut   string `bson:"check_out"`
	Status     string `bson:"status"`
}

func (d reservationDocument) toReservation() hotel.Reservation {
	return hotel.Reservation{
		ID:         d.ID,
		RoomID:     d.RoomID,
		RoomNumber: d.RoomNumber,
		GuestName:  d.GuestName,
		CheckIn:    calendar.Day(d.CheckIn),
		CheckOut:   calendar.Day(d.CheckOut),
		Status:     hotel.ReservationStatus(d.Status),
	}
}

type blockDocument struct {
	ID     string `bson:"_id"`
	RoomID string `bson:"room_id"`
	Start  string `bson:"start"`
	End    string `bson:"end"`
	Reason string `bson:"reason"`
}

func (d blockDocument) toBlock() hotel.Block {
	return hotel.Block{
		ID:     d.ID,
		RoomID: d.RoomID,
		Start:  calendar.Day(d.Start),
		End:    calendar.Day(d.End),
		Reason: d.Reason,
	}
}

type ratePlanDocument struct {
	RoomTypeID     string `bson:"room_type_id"`
	ValidFrom      string `bson:"valid_from"`
	ValidTo        string `bson:"valid_to"`
	PriceCents     int64  `bson:"price_cents"`
	WeekendHoliday bool   `bson:"weekend_holiday"`
}

func (d ratePlanDocument) toPlan(currency string) rates.Plan {
	return rates.Plan{
		RoomTypeID:     d.RoomTypeID,
		ValidFrom:      calendar.Day(d.ValidFrom),
		ValidTo:        calendar.Day(d.ValidTo),
		Price:          money.Money{Amount: d.PriceCents, Currency: currency},
		WeekendHoliday: d.WeekendHoliday,
	}
}

type roomTypeDocument struct {
	ID             string `bson:"_id"`
	Name           string `bson:"name"`
	BasePriceCents int64  `bson:"base_price_cents"`
}

func (d roomTypeDocument) toRoomType(currency string) hotel.RoomType {
	return hotel.RoomType{
		ID:        d.ID,
		Name:      d.Name,
		BasePrice: money.Money{Amount: d.BasePriceCents, Currency: currency},
	}
}

type mappingDocument struct {
	Channel      string `bson:"channel"`
	InternalType string `bson:"internal_type"`
	InternalID   string `bson:"internal_id"`
	ExternalID   string `bson:"external_id"`
}

func (d mappingDocument) toMapping() hotel.Mapping {
	return hotel.Mapping{
		Channel:      d.Channel,
		InternalType: d.InternalType,
		InternalID:   d.InternalID,
		ExternalID:   d.ExternalID,
	}
}
