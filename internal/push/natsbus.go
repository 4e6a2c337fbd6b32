package push

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"kemazon-client/utils"
)

// NATSBus carries bid events over a NATS connection.
type NATSBus struct {
	conn *nats.Conn
}

// ConnectNATS dials the NATS server at url.
func ConnectNATS(url string) (*NATSBus, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("push: connect to nats at %s: %w", url, err)
	}
	return &NATSBus{conn: conn}, nil
}

// Subscribe attaches handler to topic. Malformed payloads are logged and
// dropped; they must not reach handlers.
func (b *NATSBus) Subscribe(topic string, handler func(BidEvent)) (func(), error) {
	sub, err := b.conn.Subscribe(topic, func(msg *nats.Msg) {
		var event BidEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			utils.Warn("push: dropping malformed bid event", map[string]any{
				"topic": topic,
				"error": err.Error(),
			})
			return
		}
		handler(event)
	})
	if err != nil {
		return nil, fmt.Errorf("push: subscribe to %s: %w", topic, err)
	}

	return func() {
		if err := sub.Unsubscribe(); err != nil {
			utils.Warn("push: unsubscribe failed", map[string]any{
				"topic": topic,
				"error": err.Error(),
			})
		}
	}, nil
}

// Publish emits event on topic.
func (b *NATSBus) Publish(topic string, event BidEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("push: encode bid event: %w", err)
	}
	if err := b.conn.Publish(topic, data); err != nil {
		return fmt.Errorf("push: publish to %s: %w", topic, err)
	}
	return nil
}

// Close drains the connection.
func (b *NATSBus) Close() {
	b.conn.Close()
}
