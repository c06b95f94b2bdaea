package pubsub

import (
	"context"
	"encoding/json"

	"coursecatalog/internal/model"

	"github.com/rs/zerolog"
)

// EventEmitter announces catalog changes. Emit never fails the caller.
type EventEmitter interface {
	Emit(ctx context.Context, evt model.CatalogEvent)
}

// TopicEmitter publishes catalog events as JSON to a single topic.
type TopicEmitter struct {
	publisher Publisher
	topic     string
	logger    zerolog.Logger
}

func NewTopicEmitter(p Publisher, topic string, logger zerolog.Logger) *TopicEmitter {
	return &TopicEmitter{publisher: p, topic: topic, logger: logger}
}

func (e *TopicEmitter) Emit(ctx context.Context, evt model.CatalogEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		e.logger.Error().Err(err).Str("event", string(evt.Type)).Msg("Failed to encode catalog event")
		return
	}
	attrs := map[string]string{"event_type": string(evt.Type)}
	id, err := e.publisher.Publish(ctx, e.topic, payload, attrs)
	if err != nil {
		e.logger.Error().Err(err).Str("event", string(evt.Type)).Int64("id", evt.ID).Msg("Failed to publish catalog event")
		return
	}
	e.logger.Debug().Str("event", string(evt.Type)).Str("message_id", id).Msg("Catalog event published")
}

// NoopEmitter is used when no topic is configured.
type NoopEmitter struct{}

func (NoopEmitter) Emit(context.Context, model.CatalogEvent) {}
