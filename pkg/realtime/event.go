package realtime

import (
	"context"
	"encoding/json"
)

type EventType string

const (
	EventOrderUpdate       EventType = "order_update"
	EventOrderStatusUpdate EventType = "order_status_update"
	EventDriverLocation    EventType = "driver_location"
	EventLocationUpdate    EventType = "location_update"
	EventPong              EventType = "pong"
)

// Event конверт {type, data}, в котором backend присылает все события.
type Event struct {
	Type EventType       `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Decode разбирает data события в v.
func (e Event) Decode(v any) error {
	if len(e.Data) == 0 {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}

// Handler вызывается из цикла чтения, по одному событию за раз.
type Handler func(ctx context.Context, ev Event) error
