package messaging

import (
	"context"
	"encoding/json"

	"github.com/pixil98/go-log"
)

// InputSubject is the shared subject transports publish player lines on.
const InputSubject = "player-input"

// inputFrame is the wire form of one player input line.
type inputFrame struct {
	Player string `json:"player"`
	Line   string `json:"line"`
}

// DispatchFunc runs one input line for a player and returns the reply text.
type DispatchFunc func(ctx context.Context, player, line string) string

// Bridge subscribes to the shared input subject and routes each line
// through the dispatcher, publishing the reply on the sender's own subject.
// It is the only piece that knows both the broker and the command layer.
type Bridge struct {
	server   *NatsServer
	pub      *NatsPublisher
	dispatch DispatchFunc
}

func NewBridge(server *NatsServer, dispatch DispatchFunc) *Bridge {
	return &Bridge{
		server:   server,
		pub:      NewNatsPublisher(server),
		dispatch: dispatch,
	}
}

func (b *Bridge) Start(ctx context.Context) error {
	// The broker worker starts concurrently; wait until it accepts
	// subscriptions before wiring up.
	if err := b.waitForServer(ctx); err != nil {
		return err
	}

	unsubscribe, err := b.server.Subscribe(InputSubject, func(data []byte) {
		frame := inputFrame{}
		if err := json.Unmarshal(data, &frame); err != nil {
			log.GetLogger(ctx).Warnf("dropping malformed input frame: %v", err)
			return
		}

		reply := b.dispatch(ctx, frame.Player, frame.Line)
		if reply == "" {
			return
		}
		if err := b.pub.Deliver(frame.Player, reply); err != nil {
			log.GetLogger(ctx).Errorf("delivering reply to %q: %v", frame.Player, err)
		}
	})
	if err != nil {
		return err
	}
	defer unsubscribe()

	<-ctx.Done()
	return nil
}

func (b *Bridge) waitForServer(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.server.Ready():
		return nil
	}
}
