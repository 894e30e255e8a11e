package commands

import (
	"fmt"
	"strings"

	"github.com/mistvale/go-adventure/internal/game"
)

// HandleGive hands a carried item to another player in the same room:
// "give <item> to <player>". The recipient's capacity and weight checks run
// before the giver's inventory is touched, so a refusal never strands the
// item.
func HandleGive(ctx *Context, cmd *Command) (string, error) {
	if cmd.Target == "" || cmd.Preposition != "to" || cmd.Instrument == "" {
		return "", NewUserError("Usage: give <item> to <player>")
	}

	item := ctx.Actor.FindItem(cmd.Target)
	if item == nil {
		return "", NewUserError(fmt.Sprintf("You don't have '%s' in your inventory.", cmd.Target))
	}

	var recipient *game.Player
	for _, other := range ctx.World.Sessions().PlayersInRoom(ctx.Actor.CurrentRoom, ctx.Actor) {
		if strings.Contains(strings.ToLower(other.Name), strings.ToLower(cmd.Instrument)) {
			recipient = other
			break
		}
	}
	if recipient == nil {
		return "", NewUserError(fmt.Sprintf("You don't see '%s' here.", cmd.Instrument))
	}

	if ok, msg := recipient.AddItem(item); !ok {
		return "", NewUserError(fmt.Sprintf("%s cannot carry '%s': %s", recipient.Name, item.Base().Name, msg))
	}
	ctx.Actor.RemoveItem(item)

	deliverTo(ctx, recipient.Name,
		fmt.Sprintf("%s the %s has given you the %s.", ctx.Actor.Name, ctx.Actor.Level, item.Base().Name))

	return fmt.Sprintf("%s given to %s the %s.", item.Base().Name, recipient.Name, recipient.Level), saveAfter(ctx)
}
