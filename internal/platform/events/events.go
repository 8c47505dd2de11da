// Package events publishes mutation events so rendering and notification
// layers can react without the engine knowing about them.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Event types emitted by the engine.
const (
	TypeEntryAdded           = "ledger.entry_added"
	TypeEntryDeleted         = "ledger.entry_deleted"
	TypeDeclarationStarted   = "declaration.started"
	TypeDeclarationSubmitted = "declaration.submitted"
)

// DefaultChannel is the pub/sub channel mutation events go out on.
const DefaultChannel = "hkdtax.events"

// Event describes one engine mutation.
type Event struct {
	Type   string    `json:"type"`
	Book   string    `json:"book,omitempty"`
	ID     string    `json:"id,omitempty"`
	Period string    `json:"period,omitempty"`
	At     time.Time `json:"at"`
}

// Publisher delivers mutation events to interested subscribers.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// RedisPublisher fans events out over a Redis pub/sub channel.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher wires a Redis client to a pub/sub channel.
func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{client: client, channel: channel}
}

// Publish marshals the event and publishes it. Subscribers may be absent;
// delivery is fire-and-forget.
func (p *RedisPublisher) Publish(ctx context.Context, ev Event) error {
	if p == nil || p.client == nil {
		return nil
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, p.channel, data).Err()
}

// Noop discards events. Used when Redis is unavailable and in tests.
type Noop struct{}

// Publish implements Publisher.
func (Noop) Publish(context.Context, Event) error { return nil }
