package commands

import (
	"fmt"
	"strings"

	"github.com/mistvale/go-adventure/internal/game"
)

// HandleGet picks items up from the room floor or out of a carried
// container. Transfers are add-then-remove: the inventory checks run first,
// and a refusal leaves the source untouched.
func HandleGet(ctx *Context, cmd *Command) (string, error) {
	if cmd.FromContainer {
		return getFromContainer(ctx, cmd)
	}

	room := ctx.Room()
	if room == nil {
		return "", NewUserError("You are lost in the void.")
	}

	switch cmd.Kind {
	case TargetNone:
		return "", NewUserError("Specify the item to take (e.g., 'get sword' or 'get all').")

	case TargetAll:
		picked := takeMatching(ctx, room, func(game.Thing) bool { return true })
		if len(picked) == 0 {
			return "Nothing to pick up.", nil
		}
		return fmt.Sprintf("Picked up: %s.", strings.Join(picked, ", ")), saveAfter(ctx)

	case TargetTreasure:
		picked := takeMatching(ctx, room, func(t game.Thing) bool { return t.Base().Value > 0 })
		if len(picked) == 0 {
			return "No treasure available.", nil
		}
		return fmt.Sprintf("Treasure picked up: %s.", strings.Join(picked, ", ")), saveAfter(ctx)
	}

	item := room.FindVisibleItem(ctx.World, cmd.Target)
	if item == nil {
		return "", NewUserError(fmt.Sprintf("You don't see '%s' here.", cmd.Target))
	}

	ok, msg := ctx.Actor.AddItem(item)
	if !ok {
		return "", NewUserError(msg)
	}
	room.TakeItem(item)

	return msg, saveAfter(ctx)
}

// takeMatching moves every matching visible item into the inventory. It
// iterates a snapshot so removals never skip entries, and records per-item
// refusals implicitly by leaving the item on the floor.
func takeMatching(ctx *Context, room *game.Room, match func(game.Thing) bool) []string {
	var picked []string
	for _, item := range room.VisibleItems(ctx.World) {
		if !match(item) {
			continue
		}
		if ok, _ := ctx.Actor.AddItem(item); ok {
			room.TakeItem(item)
			picked = append(picked, item.Base().Name)
		}
	}
	return picked
}

func getFromContainer(ctx *Context, cmd *Command) (string, error) {
	container := findCarriedContainer(ctx.Actor, cmd.Instrument)
	if container == nil {
		return "", NewUserError(fmt.Sprintf("You don't have a container called '%s' in your inventory.", cmd.Instrument))
	}

	if container.State != game.ContainerOpen {
		return "", NewUserError(fmt.Sprintf("The %s is closed. You need to open it first.", container.Name))
	}

	item := container.FindContent(cmd.Target)
	if item == nil {
		return "", NewUserError(fmt.Sprintf("There is no '%s' in the %s.", cmd.Target, container.Name))
	}

	ok, msg := ctx.Actor.AddItem(item)
	if !ok {
		return "", NewUserError(msg)
	}
	container.RemoveContent(item.Base().Id)

	return fmt.Sprintf("%s removed from %s.", item.Base().Name, container.Name), saveAfter(ctx)
}

func saveAfter(ctx *Context) error {
	if err := ctx.Save(); err != nil {
		return fmt.Errorf("saving inventory change: %w", err)
	}
	return nil
}
