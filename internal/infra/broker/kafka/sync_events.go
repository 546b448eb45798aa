package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"innsync/internal/domain/channels"
)

// SyncEvents publishes sync outcomes as CloudEvents-JSON records keyed by
// property, so all events for a property land in one partition.
type SyncEvents struct {
	Producer   *Producer
	Topic      string
	Source     string
	PropertyID string
}

type syncEventData struct {
	BatchID string `json:"batch_id"`
	Channel string `json:"channel"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Records int    `json:"records"`
}

func (e *SyncEvents) PublishSyncResult(ctx context.Context, batchID string, res channels.SyncResult) error {
	eventType := "inventory.sync.completed.v1"
	if !res.Success {
		eventType = "inventory.sync.failed.v1"
	}
	evt := map[string]any{
		"specversion":     "1.0",
		"id":              uuid.NewString(),
		"type":            eventType,
		"source":          e.source(),
		"time":            time.Now().UTC().Format(time.RFC3339),
		"datacontenttype": "application/json",
		"data": syncEventData{
			BatchID: batchID,
			Channel: string(res.Channel),
			Success: res.Success,
			Message: res.Message,
			Records: res.Records,
		},
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	headers := map[string]string{"content-type": "application/cloudevents+json"}
	return e.Producer.Publish(ctx, e.Topic, e.PropertyID, payload, headers)
}

func (e *SyncEvents) source() string {
	if e.Source == "" {
		return "innsync"
	}
	return e.Source
}
