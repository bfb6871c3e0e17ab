package services

import (
	"context"
	"time"

	"github.com/ghuser/wherearethenoodles/pkg/logger"
	"github.com/ghuser/wherearethenoodles/services/inventory/domain/events"
	"github.com/ghuser/wherearethenoodles/services/inventory/domain/models"
)

// EventPublisher is the subset of *events.EventBus used to announce changes.
type EventPublisher interface {
	PublishJSON(ctx context.Context, topic string, payload any) error
}

var topicByKind = map[ChangeKind]string{
	ChangeAdded:   events.TopicItemAdded,
	ChangeEdited:  events.TopicItemEdited,
	ChangeDeleted: events.TopicItemDeleted,
}

// PublishChanges returns a ChangeHook that publishes an ItemChangedEvent per
// mutation. Publish failures are logged and never reach the caller of the
// mutation; the write has already happened.
func PublishChanges(pub EventPublisher, log logger.Logger) ChangeHook {
	return func(ctx context.Context, kind ChangeKind, item *models.Item) {
		topic, ok := topicByKind[kind]
		if !ok {
			return
		}
		evt := events.NewItemChangedEvent(item, time.Now())
		if err := pub.PublishJSON(ctx, topic, evt); err != nil {
			log.WarnContext(ctx, "failed to publish inventory event",
				"topic", topic, "item_id", item.ID, "error", err)
		}
	}
}
