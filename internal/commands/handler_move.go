package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/mistvale/go-adventure/internal/game"
)

// Move walks the actor one step in a direction that has already passed the
// blocking predicates. On success the reply is the destination's look text;
// an absent exit is a user error, never a state change. Players left behind
// and players in the destination are told about the move.
func Move(ctx *Context, dir game.Direction) (string, error) {
	room := ctx.Room()
	if room == nil {
		return "", NewUserError("You are lost in the void.")
	}

	destId, ok := room.Exits[dir]
	if !ok {
		return "", NewUserError("You can't go that way.")
	}
	if ctx.World.Room(destId) == nil {
		return "", NewUserError("You can't go that way.")
	}

	broadcastToRoom(ctx, room.Id, fmt.Sprintf("%s has left", ctx.Actor.Name))

	ctx.Actor.CurrentRoom = destId
	if err := ctx.Save(); err != nil {
		return "", fmt.Errorf("saving after move: %w", err)
	}

	broadcastToRoom(ctx, destId, fmt.Sprintf("%s has just arrived.", ctx.Actor.Name))

	return describeRoom(ctx, false), nil
}

// broadcastToRoom delivers text to everyone in a room except the actor.
func broadcastToRoom(ctx *Context, roomId, text string) {
	for _, other := range ctx.World.Sessions().PlayersInRoom(roomId, ctx.Actor) {
		deliverTo(ctx, other.Name, text)
	}
}

// describeRoom builds the room text the player sees on arrival or on an
// explicit look. The full description shows on first visit or when forced;
// revisits get the name line only. Visible items and other players follow.
// A dark room without a light source shows only its name and the darkness
// message, and does not count as visited.
func describeRoom(ctx *Context, force bool) string {
	room := ctx.Room()
	if room == nil {
		return "You are lost in the void."
	}

	if !ctx.World.RoomVisible(room) {
		return room.Name + "\n" + msgTooDark
	}

	lines := []string{room.Name}

	if force || !ctx.Actor.HasVisited(room.Id) {
		lines = append(lines, room.Description)
	}
	ctx.Actor.MarkVisited(room.Id)

	for _, t := range room.VisibleItems(ctx.World) {
		lines = append(lines, t.Base().Description)
	}

	lines = append(lines, describeOccupants(ctx, room)...)

	return strings.Join(lines, "\n")
}

// describeOccupants lists the other players standing in the room, with
// their combat and sleep status and what they carry.
func describeOccupants(ctx *Context, room *game.Room) []string {
	var lines []string

	sessions := ctx.World.Sessions()
	for _, other := range sessions.PlayersInRoom(room.Id, ctx.Actor) {
		id := sessions.FindSession(other)
		if id != "" && sessions[id].IsInvisible(time.Now()) {
			continue
		}

		carrying := other.InventoryNames()
		if carrying == "" {
			carrying = "nothing"
		}

		combatStatus := ""
		if ctx.Combat != nil && ctx.Combat.IsInCombat(other.Name) {
			combatStatus = " (in combat)"
		}

		sleepStatus := ""
		if id != "" && sessions[id].Sleeping {
			sleepStatus = ", asleep"
		}

		lines = append(lines, fmt.Sprintf("%s the %s%s is here%s, carrying %s",
			other.Name, other.Level, combatStatus, sleepStatus, carrying))
	}

	return lines
}
