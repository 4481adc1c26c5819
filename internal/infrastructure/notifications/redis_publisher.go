package notifications

import (
	"context"
	"encoding/json"

	"freelanceflow/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

// RedisPublisher delivers ledger events to the notification collaborator over
// a Redis pub/sub channel. Delivery is fire-and-forget; subscribers that are
// down simply miss the event.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

var _ interfaces.INotificationSink = (*RedisPublisher)(nil)

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, event interfaces.NotificationEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, p.channel, b).Err()
}
