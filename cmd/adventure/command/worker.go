package command

import (
	"context"
	"fmt"
	"time"

	"github.com/pixil98/go-log"
	"github.com/pixil98/go-service"

	"github.com/mistvale/go-adventure/internal/commands"
	"github.com/mistvale/go-adventure/internal/driver"
	"github.com/mistvale/go-adventure/internal/game"
	"github.com/mistvale/go-adventure/internal/messaging"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Assemble the world from authored assets
	world, err := cfg.Storage.BuildWorld()
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	playerStore, err := cfg.Storage.BuildPlayerStore()
	if err != nil {
		return nil, fmt.Errorf("creating player store: %w", err)
	}
	players := game.NewPlayerManager(playerStore, world, cfg.Players.SpawnRoom)

	// Message broker and delivery
	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	publisher := messaging.NewNatsPublisher(natsServer)

	// Command layer
	registry := commands.NewRegistry(commands.NewVocabulary())
	if err := commands.RegisterDefaults(registry); err != nil {
		return nil, fmt.Errorf("registering commands: %w", err)
	}
	dispatcher := commands.NewDispatcher(registry, world, nil, players, publisher)

	bridge := messaging.NewBridge(natsServer, func(ctx context.Context, name, line string) string {
		actor := world.Sessions().FindPlayer(name)
		if actor == nil {
			session, err := players.Login(name)
			if err != nil {
				log.GetLogger(ctx).Warnf("login for %q failed: %v", name, err)
				return "You can't join the game right now."
			}
			actor = session.Player
		}
		return dispatcher.Dispatch(ctx, actor, line)
	})

	// Periodic tick for time-based effects
	tick, err := time.ParseDuration(cfg.TickInterval)
	if err != nil {
		return nil, fmt.Errorf("parsing tick_interval: %w", err)
	}
	gameDriver := driver.NewGameDriver(
		[]driver.Manager{world},
		driver.WithTickLength(tick),
		driver.WithGate(dispatcher.BatchLock()),
	)

	return service.WorkerList{
		"nats":   natsServer,
		"bridge": bridge,
		"driver": gameDriver,
	}, nil
}
