package driver

import (
	"sync"
	"time"
)

type GameDriverOpt func(*GameDriver)

func WithTickLength(tickLength time.Duration) GameDriverOpt {
	return func(d *GameDriver) {
		d.tickLength = tickLength
	}
}

// WithGate serializes ticks against whatever else holds the locker,
// normally the dispatcher's batch lock.
func WithGate(gate sync.Locker) GameDriverOpt {
	return func(d *GameDriver) {
		d.gate = gate
	}
}
