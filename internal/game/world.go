package game

import (
	"context"
	"time"
)

// World is the shared room/player/session graph, passed explicitly into
// every handler so the core stays testable without a live transport.
type World struct {
	rooms    map[string]*Room
	sessions SessionTable
}

func NewWorld() *World {
	return &World{
		rooms:    map[string]*Room{},
		sessions: SessionTable{},
	}
}

// AddRoom registers a room under its id.
func (w *World) AddRoom(r *Room) {
	w.rooms[r.Id] = r
}

// Room returns the room with the given id, or nil.
func (w *World) Room(id string) *Room {
	return w.rooms[id]
}

// Rooms exposes the full room map for world generation and pathfinding.
func (w *World) Rooms() map[string]*Room {
	return w.rooms
}

// Sessions returns the session table collaborator.
func (w *World) Sessions() SessionTable {
	return w.sessions
}

// SetSessions installs the externally owned session table.
func (w *World) SetSessions(st SessionTable) {
	w.sessions = st
}

// FindItem locates an item anywhere in the world by id: room visible lists,
// room hidden maps, then player inventories. Used by linked-item
// propagation and condition evaluation.
func (w *World) FindItem(itemId string) Thing {
	for _, room := range w.rooms {
		for _, t := range room.Items {
			if t.Base().Id == itemId {
				return t
			}
		}
		if hi, ok := room.Hidden[itemId]; ok {
			return hi.Item
		}
	}
	for _, s := range w.sessions {
		if s.Player == nil {
			continue
		}
		for _, t := range s.Player.Inventory {
			if t.Base().Id == itemId {
				return t
			}
		}
	}
	return nil
}

// RoomVisible reports whether a room can be seen at all. Naturally lit
// rooms always can; dark rooms need a light-emitting item on the ground or
// carried by any player standing in the room.
func (w *World) RoomVisible(r *Room) bool {
	if r == nil || !r.IsDark {
		return true
	}

	for _, t := range r.VisibleItems(w) {
		if t.Base().EmitsLight {
			return true
		}
	}

	for _, s := range w.sessions {
		if s.Player != nil && s.Player.CurrentRoom == r.Id && s.Player.HasLightSource() {
			return true
		}
	}

	return false
}

func (w *World) roomHoldsItem(roomId, itemId string) bool {
	room := w.Room(roomId)
	if room == nil {
		return false
	}
	for _, t := range room.Items {
		if t.Base().Id == itemId {
			return true
		}
	}
	return false
}

// TotalItemCount counts every item owned by a room (visible or hidden) or a
// player. Container contents count as owned by their container, not
// separately, matching the move-only ownership model.
func (w *World) TotalItemCount() int {
	count := 0
	for _, room := range w.rooms {
		count += len(room.Items) + len(room.Hidden)
	}
	for _, s := range w.sessions {
		if s.Player != nil {
			count += len(s.Player.Inventory)
		}
	}
	return count
}

// Tick expires time-boxed invisibility grants across all inventories. It is
// run by the driver between command batches, never mid-batch.
func (w *World) Tick(ctx context.Context) error {
	now := time.Now()
	for _, s := range w.sessions {
		if s.Player == nil {
			continue
		}
		for _, t := range s.Player.Inventory {
			// InvisibilityActive flips the expired flag once the grant
			// duration has elapsed.
			t.Base().InvisibilityActive(now)
		}
	}
	return nil
}
