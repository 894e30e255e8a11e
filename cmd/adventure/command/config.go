package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	TickInterval string        `json:"tick_interval"`
	Storage      StorageConfig `json:"storage"`
	Nats         NatsConfig    `json:"nats"`
	Players      PlayersConfig `json:"players"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		el.Add(fmt.Errorf("parsing tick_interval: %w", err))
	} else if d < time.Second {
		el.Add(fmt.Errorf("tick_interval must be at least 1 second"))
	}

	el.Add(c.Storage.validate())
	el.Add(c.Nats.validate())
	el.Add(c.Players.validate())

	return el.Err()
}

type PlayersConfig struct {
	SpawnRoom string `json:"spawn_room"`
}

func (c *PlayersConfig) validate() error {
	el := errors.NewErrorList()

	if c.SpawnRoom == "" {
		el.Add(fmt.Errorf("spawn_room is required"))
	}

	return el.Err()
}
