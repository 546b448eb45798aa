package memory

import (
	"context"
	"errors"
	"sync"

	"innsync/internal/app/snapshot"
	"innsync/internal/domain/calendar"
	"innsync/internal/domain/hotel"
	"innsync/internal/domain/rates"
)

// ErrPropertyNotFound is returned when a property has no data in memory.
var ErrPropertyNotFound = errors.New("memory: property not found")

type propertyData struct {
	rooms        []hotel.Room
	reservations []hotel.Reservation
	blocks       []hotel.Block
	ratePlans    []rates.Plan
	roomTypes    []hotel.RoomType
	mappings     []hotel.Mapping
}

// Source is an in-memory snapshot source for demos and tests. Reads copy
// the stored slices, so a handed-out snapshot never observes later writes.
type Source struct {
	mu         sync.RWMutex
	properties map[string]*propertyData
}

func NewSource() *Source {
	return &Source{properties: make(map[string]*propertyData)}
}

func (s *Source) Snapshot(ctx context.Context, propertyID string, rng calendar.Range) (snapshot.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.properties[propertyID]
	if !ok {
		return snapshot.Snapshot{}, ErrPropertyNotFound
	}

	snap := snapshot.Snapshot{
		Rooms:     append([]hotel.Room(nil), data.rooms...),
		RoomTypes: append([]hotel.RoomType(nil), data.roomTypes...),
		Mappings:  append([]hotel.Mapping(nil), data.mappings...),
	}
	for _, r := range data.reservations {
		if rng.Overlaps(r.CheckIn, r.CheckOut) {
			snap.Reservations = append(snap.Reservations, r)
		}
	}
	for _, b := range data.blocks {
		if rng.Overlaps(b.Start, b.End) {
			snap.Blocks = append(snap.Blocks, b)
		}
	}
	for _, p := range data.ratePlans {
		if p.ValidFrom <= rng.To && rng.From <= p.ValidTo {
			snap.RatePlans = append(snap.RatePlans, p)
		}
	}
	return snap, nil
}

// SetProperty replaces the rooms and room types of a property.
func (s *Source) SetProperty(propertyID string, rooms []hotel.Room, roomTypes []hotel.RoomType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.ensure(propertyID)
	data.rooms = append([]hotel.Room(nil), rooms...)
	data.roomTypes = append([]hotel.RoomType(nil), roomTypes...)
}

// AddReservation appends a reservation to a property.
func (s *Source) AddReservation(propertyID string, r hotel.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.ensure(propertyID)
	data.reservations = append(data.reservations, r)
}

// AddBlock appends a maintenance block to a property.
func (s *Source) AddBlock(propertyID string, b hotel.Block) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(propertyID).blocks = append(s.ensure(propertyID).blocks, b)
}

// AddRatePlan appends a rate plan to a property.
func (s *Source) AddRatePlan(propertyID string, p rates.Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(propertyID).ratePlans = append(s.ensure(propertyID).ratePlans, p)
}

// AddMapping appends a channel mapping to a property.
func (s *Source) AddMapping(propertyID string, m hotel.Mapping) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(propertyID).mappings = append(s.ensure(propertyID).mappings, m)
}

func (s *Source) ensure(propertyID string) *propertyData {
	data, ok := s.properties[propertyID]
	if !ok {
		data = &propertyData{}
		s.properties[propertyID] = data
	}
	return data
}

var _ snapshot.Source = (*Source)(nil)
