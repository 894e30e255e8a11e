package messaging

import (
	"fmt"

	"github.com/mistvale/go-adventure/internal/display"
)

// NatsPublisher delivers text to individual player NATS subjects. It
// satisfies the command layer's Deliverer interface, keeping the game core
// ignorant of the broker.
type NatsPublisher struct {
	server *NatsServer
}

// NewNatsPublisher wraps a NatsServer for per-player message delivery.
func NewNatsPublisher(server *NatsServer) *NatsPublisher {
	return &NatsPublisher{server: server}
}

// Deliver word-wraps the text and publishes it on the recipient's subject.
func (p *NatsPublisher) Deliver(recipient, text string) error {
	return p.server.Publish(fmt.Sprintf("player-%s", recipient), []byte(display.Wrap(text)))
}
