package messaging

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
)

const connectTimeout = 10 * time.Second

type MQTTOptions struct {
	Broker   string
	ClientID string
}

// ConnectMQTT dials the broker with auto-reconnect enabled.
func ConnectMQTT(opts MQTTOptions) (mqtt.Client, error) {
	clientOpts := mqtt.NewClientOptions().
		AddBroker(opts.Broker).
		SetClientID(opts.ClientID).
		SetAutoReconnect(true).
		SetConnectTimeout(connectTimeout).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.WithError(err).Warn("[messaging] mqtt connection lost")
		})

	client := mqtt.NewClient(clientOpts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("mqtt connect to %s timed out", opts.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, err
	}
	log.WithField("broker", opts.Broker).Info("[messaging] connected to mqtt broker")
	return client, nil
}
