package commands

import "github.com/mistvale/go-adventure/internal/game"

// HandleSwamp moves the actor one room along the precomputed shortest path
// toward the lake. It only consumes the room's swamp direction; the path
// itself is computed once at world-generation time.
func HandleSwamp(ctx *Context, cmd *Command) (string, error) {
	if ctx.InCombat() {
		return "", NewUserError(msgBlockedByCombat)
	}
	if ctx.Session.HasAffliction(CrippleAffliction) {
		return "", NewUserError(msgBlockedByCripple)
	}

	room := ctx.Room()
	if room == nil {
		return "", NewUserError("You are lost in the void.")
	}

	if !room.IsOutdoor {
		return "", NewUserError("You can only use this command outdoors.")
	}
	if room.Id == game.LandmarkRoom {
		return "", NewUserError("You're already here, stupid!")
	}
	if room.SwampDirection == "" {
		return "", NewUserError("You can't find a way to the swamp from here.")
	}

	return Move(ctx, room.SwampDirection)
}
