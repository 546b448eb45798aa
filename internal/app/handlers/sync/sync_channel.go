package sync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	inventoryapp "innsync/internal/app/handlers/inventory"
	"innsync/internal/domain/calendar"
	"innsync/internal/domain/channels"
)

// Command pushes a property's availability window to one channel.
type Command struct {
	PropertyID string
	Range      calendar.Range
	Channel    channels.Channel
}

// Transport delivers a built payload to the channel and reduces the wire
// response to a SyncResult. Retries, timeouts and auth live behind it.
type Transport interface {
	Deliver(ctx context.Context, p channels.Payload) channels.SyncResult
}

// Archiver keeps a copy of every outbound payload for audit.
type Archiver interface {
	Archive(ctx context.Context, batchID string, p channels.Payload) error
}

// Publisher emits the sync outcome for downstream consumers.
type Publisher interface {
	PublishSyncResult(ctx context.Context, batchID string, res channels.SyncResult) error
}

// Handler builds inventory, shapes the channel payload, hands it to the
// transport collaborator and reports the outcome. A NoAvailabilityError from
// the build short-circuits before anything is sent: an empty sync payload
// never leaves the system.
type Handler struct {
	Inventory *inventoryapp.BuildHandler
	Export    channels.ExportOptions
	Transport Transport
	Archiver  Archiver
	Events    Publisher
	Logger    *slog.Logger
}

func (h *Handler) Handle(ctx context.Context, cmd Command) (channels.SyncResult, error) {
	lines, err := h.Inventory.Handle(ctx, inventoryapp.BuildQuery{
		PropertyID: cmd.PropertyID,
		Range:      cmd.Range,
		Channel:    cmd.Channel,
	})
	if err != nil {
		return channels.SyncResult{Channel: cmd.Channel}, err
	}

	payload, err := channels.Export(cmd.Channel, cmd.PropertyID, cmd.Range, lines, h.Export)
	if err != nil {
		return channels.SyncResult{Channel: cmd.Channel}, fmt.Errorf("sync: build payload: %w", err)
	}

	batchID := uuid.NewString()
	if h.Archiver != nil {
		if err := h.Archiver.Archive(ctx, batchID, payload); err != nil {
			h.warn("payload archive failed", err, batchID)
		}
	}

	res := h.Transport.Deliver(ctx, payload)
	res.Channel = cmd.Channel
	res.Records = payload.Records

	if h.Events != nil {
		if err := h.Events.PublishSyncResult(ctx, batchID, res); err != nil {
			h.warn("sync event publish failed", err, batchID)
		}
	}
	return res, nil
}

func (h *Handler) warn(msg string, err error, batchID string) {
	if h.Logger != nil {
		h.Logger.Warn(msg, "error", err, "batch_id", batchID)
	}
}
