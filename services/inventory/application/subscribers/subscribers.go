// Package subscribers reacts to inventory change events: one audit log line
// per event and a warning for items that are about to expire.
package subscribers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/wherearethenoodles/pkg/logger"
	"github.com/ghuser/wherearethenoodles/services/inventory/domain/events"
)

// Bus is the subscribing side of *events.EventBus.
type Bus interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

// Register subscribes the audit handler to every inventory topic. Subscriber
// errors are drained and logged until the bus closes.
func Register(ctx context.Context, bus Bus, log logger.Logger, expiryWarningDays int) error {
	for _, topic := range events.Topics {
		errCh, err := bus.Subscribe(ctx, topic, HandleItemChanged(topic, log, expiryWarningDays, time.Now))
		if err != nil {
			return err
		}
		go func(topic string) {
			for err := range errCh {
				log.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}
	log.Info("event subscribers registered", "topics", events.Topics)
	return nil
}

// HandleItemChanged returns the handler for one topic. Undecodable payloads
// are logged and acknowledged so they are not redelivered. A negative
// expiryWarningDays disables the expiry warning.
func HandleItemChanged(topic string, log logger.Logger, expiryWarningDays int, now func() time.Time) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt events.ItemChangedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			log.ErrorContext(ctx, "discarding undecodable inventory event",
				"topic", topic, "message_id", msg.UUID, "error", err)
			return nil
		}

		log.InfoContext(ctx, "inventory changed",
			"topic", topic,
			"event_id", evt.EventID,
			"item_id", evt.ItemID,
			"name", evt.Name,
			"quantity", evt.Quantity,
			"location", evt.Location,
		)

		if topic == events.TopicItemDeleted || evt.ExpirationDate == nil || expiryWarningDays < 0 {
			return nil
		}
		days := evt.ExpirationDate.DaysUntil(now())
		switch {
		case days < 0:
			log.WarnContext(ctx, "item has expired",
				"item_id", evt.ItemID, "name", evt.Name, "location", evt.Location,
				"expiration_date", evt.ExpirationDate.String())
		case days <= expiryWarningDays:
			log.WarnContext(ctx, "item expires soon",
				"item_id", evt.ItemID, "name", evt.Name, "location", evt.Location,
				"expiration_date", evt.ExpirationDate.String(), "days_left", days)
		}
		return nil
	}
}
