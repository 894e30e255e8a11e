package game

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session is the transient per-connection state owned by the transport
// layer. The core reads it for affliction, visibility, and duplicate-actor
// checks but never manages its lifecycle.
type Session struct {
	Id          string
	Player      *Player
	Afflictions map[string]bool
	Sleeping    bool
	Invisible   bool
}

func NewSession(p *Player) *Session {
	return &Session{
		Id:          uuid.NewString(),
		Player:      p,
		Afflictions: map[string]bool{},
	}
}

// IsInvisible reports whether the player cannot be seen, either via the
// session flag or an active invisibility-granting item.
func (s *Session) IsInvisible(now time.Time) bool {
	if s == nil {
		return false
	}
	if s.Invisible {
		return true
	}
	if s.Player == nil {
		return false
	}
	for _, t := range s.Player.Inventory {
		if t.Base().InvisibilityActive(now) {
			return true
		}
	}
	return false
}

// HasAffliction reports whether the session carries a named affliction.
func (s *Session) HasAffliction(name string) bool {
	return s != nil && s.Afflictions[name]
}

// SessionTable maps session ids to sessions. It is a read-mostly
// collaborator owned by the transport layer.
type SessionTable map[string]*Session

// FindSession returns the session id for a player, or "" if the player has
// no live session.
func (st SessionTable) FindSession(p *Player) string {
	for id, s := range st {
		if s.Player == p {
			return id
		}
	}
	return ""
}

// PlayersInRoom lists the players of every session currently in the room,
// excluding the given actor.
func (st SessionTable) PlayersInRoom(roomId string, except *Player) []*Player {
	var players []*Player
	for _, s := range st {
		if s.Player == nil || s.Player == except {
			continue
		}
		if s.Player.CurrentRoom == roomId {
			players = append(players, s.Player)
		}
	}
	return players
}

// FindPlayer returns the online player with the given name, matched
// case-insensitively against the full name.
func (st SessionTable) FindPlayer(name string) *Player {
	for _, s := range st {
		if s.Player != nil && strings.EqualFold(s.Player.Name, name) {
			return s.Player
		}
	}
	return nil
}
