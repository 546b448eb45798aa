package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"innsync/internal/app/snapshot"
	"innsync/internal/domain/calendar"
	"innsync/internal/domain/channels"
	domaininventory "innsync/internal/domain/inventory"
	"innsync/internal/domain/rates"
	"innsync/internal/domain/shared/money"
)

// BuildQuery asks for the sellable inventory of a property over a range.
// Channel narrows the mapping table; empty means all mappings.
type BuildQuery struct {
	PropertyID string
	Range      calendar.Range
	Channel    channels.Channel
}

// LineCache is a read-through cache for computed lines. The engine is a pure
// function of its snapshot, so cached results stay valid for their TTL.
type LineCache interface {
	GetLines(ctx context.Context, key string) ([]domaininventory.Line, bool, error)
	SetLines(ctx context.Context, key string, lines []domaininventory.Line, ttl time.Duration) error
}

// BuildHandler computes inventory lines from a snapshot source.
type BuildHandler struct {
	Source       snapshot.Source
	Cache        LineCache
	CacheTTL     time.Duration
	Weekend      rates.WeekendFunc
	DefaultPrice money.Money
	Ceiling      int
	Logger       *slog.Logger
}

func (h *BuildHandler) Handle(ctx context.Context, q BuildQuery) ([]domaininventory.Line, error) {
	if err := q.Range.Validate(); err != nil {
		return nil, &domaininventory.ValidationError{Reason: "date range from must not be after to"}
	}

	key := cacheKey(q)
	if h.Cache != nil {
		lines, ok, err := h.Cache.GetLines(ctx, key)
		if err != nil {
			h.warn("inventory cache read failed", err)
		} else if ok {
			return lines, nil
		}
	}

	snap, err := h.Source.Snapshot(ctx, q.PropertyID, q.Range)
	if err != nil {
		return nil, fmt.Errorf("inventory: load snapshot: %w", err)
	}

	lines, err := domaininventory.Build(domaininventory.Input{
		Rooms:        snap.Rooms,
		Reservations: snap.Reservations,
		Blocks:       snap.Blocks,
		RatePlans:    snap.RatePlans,
		RoomTypes:    snap.RoomTypes,
		Mappings:     snap.MappingsFor(string(q.Channel)),
		Range:        q.Range,
		Weekend:      h.Weekend,
		Ceiling:      h.Ceiling,
		DefaultPrice: h.DefaultPrice,
	})
	if err != nil {
		return nil, err
	}

	if h.Cache != nil && h.CacheTTL > 0 {
		if err := h.Cache.SetLines(ctx, key, lines, h.CacheTTL); err != nil {
			h.warn("inventory cache write failed", err)
		}
	}
	return lines, nil
}

// IsNoAvailability reports whether the error is the empty-result signal.
func IsNoAvailability(err error) bool {
	var na *domaininventory.NoAvailabilityError
	return errors.As(err, &na)
}

func cacheKey(q BuildQuery) string {
	return fmt.Sprintf("inventory:%s:%s:%s:%s", q.PropertyID, q.Range.From, q.Range.To, q.Channel)
}

func (h *BuildHandler) warn(msg string, err error) {
	if h.Logger != nil {
		h.Logger.Warn(msg, "error", err)
	}
}
