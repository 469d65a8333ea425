package events

import (
	"context"
	"time"
)

// Message is one lifecycle event on its way to the broker.
type Message struct {
	Key        string
	Type       string
	Payload    []byte
	OccurredAt time.Time
}

type Publisher interface {
	Publish(ctx context.Context, msgs []Message) error
}
