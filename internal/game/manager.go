package game

import (
	"fmt"
	"sync"

	"github.com/mistvale/go-adventure/internal/storage"
)

// PlayerManager owns the player lifecycle: load-or-create on login, session
// table membership, and persistence. It is the dispatcher's Saver.
type PlayerManager struct {
	store     storage.Storer[*Player]
	world     *World
	spawnRoom string

	mu sync.Mutex
}

func NewPlayerManager(store storage.Storer[*Player], world *World, spawnRoom string) *PlayerManager {
	return &PlayerManager{
		store:     store,
		world:     world,
		spawnRoom: spawnRoom,
	}
}

// Login returns a fresh session for a named player, loading the stored
// record when one exists and creating a new player at the spawn room when
// not. A player may hold only one session at a time.
func (pm *PlayerManager) Login(name string) (*Session, error) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	sessions := pm.world.Sessions()
	if existing := sessions.FindPlayer(name); existing != nil {
		return nil, fmt.Errorf("player %q is already connected", name)
	}

	p := pm.store.Get(name)
	if p == nil {
		p = NewPlayer(name, pm.spawnRoom)
		if err := pm.store.Save(name, p); err != nil {
			return nil, fmt.Errorf("saving new player: %w", err)
		}
	}
	if pm.world.Room(p.CurrentRoom) == nil {
		p.CurrentRoom = pm.spawnRoom
	}

	s := NewSession(p)
	sessions[s.Id] = s
	return s, nil
}

// Logout persists the player and drops the session.
func (pm *PlayerManager) Logout(sessionId string) error {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	sessions := pm.world.Sessions()
	s, ok := sessions[sessionId]
	if !ok {
		return nil
	}
	delete(sessions, sessionId)

	if s.Player == nil {
		return nil
	}
	return pm.store.Save(s.Player.Name, s.Player)
}

// Save persists every connected player. The dispatcher calls this after
// mutating command batches.
func (pm *PlayerManager) Save() error {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	for _, s := range pm.world.Sessions() {
		if s.Player == nil {
			continue
		}
		if err := pm.store.Save(s.Player.Name, s.Player); err != nil {
			return fmt.Errorf("saving player %q: %w", s.Player.Name, err)
		}
	}
	return nil
}
