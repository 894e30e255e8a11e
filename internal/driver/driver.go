package driver

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultTickLength = time.Second * 2
)

// Manager is anything that wants a slice of the periodic tick: the world
// (expiring invisibility grants), future mob or weather managers.
type Manager interface {
	Tick(context.Context) error
}

// GameDriver runs managers on a fixed cadence. When a gate is configured,
// every tick runs holding it, so time-based mutation only ever lands at
// command-batch boundaries and never mid-transfer.
type GameDriver struct {
	tickLength time.Duration
	gate       sync.Locker
	managers   []Manager
}

func NewGameDriver(managers []Manager, opts ...GameDriverOpt) *GameDriver {
	d := &GameDriver{
		tickLength: DefaultTickLength,
		managers:   managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *GameDriver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.tickLength)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := d.Tick(ctx)
			if err != nil {
				return err
			}
		}
	}
}

func (d *GameDriver) Tick(ctx context.Context) error {
	if d.gate != nil {
		d.gate.Lock()
		defer d.gate.Unlock()
	}

	for _, m := range d.managers {
		if err := m.Tick(ctx); err != nil {
			return err
		}
	}
	return nil
}
