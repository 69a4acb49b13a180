package events

import (
	"context"
	"encoding/json"
	"time"

	"mass_oss/internal/domain/entities"
	"mass_oss/internal/usecase/interfaces"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultMQTTTopic = "mass/workorders/events"
	mqttQoS          = 1
	mqttWait         = 2 * time.Second
)

// MQTTPublisher is the part of mqtt.Client the notifier needs.
type MQTTPublisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MQTTNotifier publishes each result to <topic>/<org_id> for shop-floor
// displays subscribed to the broker.
type MQTTNotifier struct {
	client MQTTPublisher
	topic  string
}

var _ interfaces.INotifier = (*MQTTNotifier)(nil)

func NewMQTTNotifier(client MQTTPublisher, topic string) *MQTTNotifier {
	if topic == "" {
		topic = DefaultMQTTTopic
	}
	return &MQTTNotifier{client: client, topic: topic}
}

func (n *MQTTNotifier) Topic(orgID string) string {
	return n.topic + "/" + orgID
}

func (n *MQTTNotifier) Notify(_ context.Context, r entities.MutationResult) {
	payload, err := json.Marshal(r)
	if err != nil {
		log.WithError(err).Error("[events][mqtt] marshal failed")
		return
	}
	topic := n.Topic(r.OrgID)
	token := n.client.Publish(topic, mqttQoS, false, payload)
	if !token.WaitTimeout(mqttWait) {
		log.WithField("topic", topic).Warn("[events][mqtt] publish timed out")
		return
	}
	if err := token.Error(); err != nil {
		log.WithError(err).WithField("topic", topic).Error("[events][mqtt] publish failed")
	}
}
