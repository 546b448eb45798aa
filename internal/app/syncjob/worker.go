package syncjob

import (
	"context"
	"errors"
	"log/slog"
	"time"

	inventoryapp "innsync/internal/app/handlers/inventory"
	syncapp "innsync/internal/app/handlers/sync"
	"innsync/internal/domain/calendar"
	"innsync/internal/domain/channels"
)

var ErrNotConfigured = errors.New("syncjob: handler and channels are required")

// Worker periodically pushes the forward availability window to every
// configured channel. Each tick is independent: the engine recomputes from a
// fresh snapshot, so a failed tick needs no recovery beyond the next one.
type Worker struct {
	Handler    *syncapp.Handler
	PropertyID string
	Channels   []channels.Channel
	Horizon    int
	Interval   time.Duration
	Logger     *slog.Logger

	// Now is overridable in tests; nil means time.Now.
	Now func() time.Time
}

func (w *Worker) Run(ctx context.Context) error {
	if w.Handler == nil || len(w.Channels) == 0 {
		return ErrNotConfigured
	}
	ticker := time.NewTicker(w.interval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single sweep over all channels.
func (w *Worker) RunOnce(ctx context.Context) {
	today := calendar.DayOf(w.now())
	rng := calendar.Range{From: today, To: today.AddDays(w.horizon())}
	for _, ch := range w.Channels {
		res, err := w.Handler.Handle(ctx, syncapp.Command{
			PropertyID: w.PropertyID,
			Range:      rng,
			Channel:    ch,
		})
		switch {
		case inventoryapp.IsNoAvailability(err):
			w.log().Info("sync skipped, nothing sellable", "channel", ch, "from", rng.From, "to", rng.To)
		case err != nil:
			w.log().Error("sync failed", "channel", ch, "error", err)
		case !res.Success:
			w.log().Warn("channel rejected sync", "channel", ch, "message", res.Message)
		default:
			w.log().Info("sync completed", "channel", ch, "records", res.Records)
		}
	}
}

func (w *Worker) interval() time.Duration {
	if w.Interval <= 0 {
		return time.Hour
	}
	return w.Interval
}

func (w *Worker) horizon() int {
	if w.Horizon <= 0 {
		return 30
	}
	return w.Horizon
}

func (w *Worker) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

func (w *Worker) log() *slog.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return slog.Default()
}
