package events

import (
	"context"
	"encoding/json"

	"mass_oss/internal/domain/entities"
	"mass_oss/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const DefaultRedisChannel = "workorders:events"

// RedisNotifier publishes results as JSON on a pub/sub channel so other API
// instances and back-office consumers see every mutation.
type RedisNotifier struct {
	client  *redis.Client
	channel string
}

var _ interfaces.INotifier = (*RedisNotifier)(nil)

func NewRedisNotifier(client *redis.Client, channel string) *RedisNotifier {
	if channel == "" {
		channel = DefaultRedisChannel
	}
	return &RedisNotifier{client: client, channel: channel}
}

func (n *RedisNotifier) Notify(ctx context.Context, r entities.MutationResult) {
	payload, err := json.Marshal(r)
	if err != nil {
		log.WithError(err).Error("[events][redis] marshal failed")
		return
	}
	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		log.WithError(err).WithField("channel", n.channel).Error("[events][redis] publish failed")
	}
}
