package commands

import (
	"fmt"
	"strings"

	"github.com/mistvale/go-adventure/internal/game"
)

// HandleDrop moves items from the inventory onto the room floor. Dropping
// treasure in the swamp converts it to points instead of leaving it behind.
func HandleDrop(ctx *Context, cmd *Command) (string, error) {
	room := ctx.Room()
	if room == nil {
		return "", NewUserError("You are lost in the void.")
	}

	switch cmd.Kind {
	case TargetNone:
		return "", NewUserError("Specify the item to drop (e.g., 'drop shield' or 'drop all').")

	case TargetAll:
		if len(ctx.Actor.Inventory) == 0 {
			return "You aren't carrying anything.", nil
		}
		var names []string
		for _, item := range snapshot(ctx.Actor.Inventory) {
			ctx.Actor.RemoveItem(item)
			room.AddItem(item)
			names = append(names, item.Base().Name)
		}
		return fmt.Sprintf("Dropped all items: %s.", strings.Join(names, ", ")), saveAfter(ctx)

	case TargetTreasure:
		return dropTreasure(ctx, room)
	}

	item := ctx.Actor.FindItem(cmd.Target)
	if item == nil {
		return "", NewUserError(fmt.Sprintf("You don't have '%s' in your inventory.", cmd.Target))
	}

	ok, msg := ctx.Actor.RemoveItem(item)
	if !ok {
		return "", NewUserError(msg)
	}
	room.AddItem(item)

	if item.Base().Value > 0 && isSwamp(room) {
		ctx.Actor.AddPoints(item.Base().Value)
		room.RemoveItem(item)
		return fmt.Sprintf("You swamp %s for %d points! New score: %d",
			item.Base().Name, item.Base().Value, ctx.Actor.Points), saveAfter(ctx)
	}

	return msg, saveAfter(ctx)
}

func dropTreasure(ctx *Context, room *game.Room) (string, error) {
	var dropped []game.Thing
	for _, item := range snapshot(ctx.Actor.Inventory) {
		if item.Base().Value <= 0 {
			continue
		}
		ctx.Actor.RemoveItem(item)
		room.AddItem(item)
		dropped = append(dropped, item)
	}
	if len(dropped) == 0 {
		return "You have no treasure items to drop.", nil
	}

	if isSwamp(room) {
		total := 0
		for _, item := range dropped {
			total += item.Base().Value
			room.RemoveItem(item)
		}
		ctx.Actor.AddPoints(total)
		return fmt.Sprintf("You swamp treasure worth %d points! New score: %d",
			total, ctx.Actor.Points), saveAfter(ctx)
	}

	names := make([]string, 0, len(dropped))
	for _, item := range dropped {
		names = append(names, item.Base().Name)
	}
	return fmt.Sprintf("Dropped all treasure: %s.", strings.Join(names, ", ")), saveAfter(ctx)
}

// isSwamp reports whether depositing treasure here scores points. The swamp
// is recognized by name or description, not by a dedicated flag.
func isSwamp(room *game.Room) bool {
	return strings.Contains(strings.ToLower(room.Name), "swamp") ||
		strings.Contains(strings.ToLower(room.Description), "swamp")
}

// snapshot copies a live collection before iteration; handlers must never
// mutate the slice they are ranging over.
func snapshot(items []game.Thing) []game.Thing {
	out := make([]game.Thing, len(items))
	copy(out, items)
	return out
}
