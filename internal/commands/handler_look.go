package commands

import (
	"fmt"
	"time"

	"github.com/mistvale/go-adventure/internal/display"
)

// HandleLook describes the current room, a single item, or another player
// when a target is named. An explicit look always shows the full room
// description, even in rooms the player has already visited.
func HandleLook(ctx *Context, cmd *Command) (string, error) {
	if cmd.Target == "" {
		return describeRoom(ctx, true), nil
	}

	if cmd.Kind == TargetPlayer && cmd.Player != nil {
		sessions := ctx.World.Sessions()
		if id := sessions.FindSession(cmd.Player); id == "" || !sessions[id].IsInvisible(time.Now()) {
			carrying := cmd.Player.InventoryNames()
			if carrying == "" {
				carrying = "nothing"
			}
			return fmt.Sprintf("%s the %s is here, carrying %s.", cmd.Player.Name, cmd.Player.Level, carrying), nil
		}
	}

	if item := ctx.Actor.FindItem(cmd.Target); item != nil {
		return item.Base().Description, nil
	}

	// Floor items are only visible while the room is lit.
	if room := ctx.Room(); room != nil && ctx.World.RoomVisible(room) {
		if item := room.FindVisibleItem(ctx.World, cmd.Target); item != nil {
			return fmt.Sprintf("%s: %s", display.Capitalize(item.Base().Name), item.Base().Description), nil
		}
	}

	return "", NewUserError(fmt.Sprintf("You don't see '%s' here.", cmd.Target))
}
