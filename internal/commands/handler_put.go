package commands

import (
	"fmt"
	"strings"

	"github.com/mistvale/go-adventure/internal/game"
)

// HandlePut moves a carried item into a carried container:
// "put <item> in <container>". The container's own capacity and weight
// limits gate the transfer; a refusal leaves the item in the inventory.
func HandlePut(ctx *Context, cmd *Command) (string, error) {
	if cmd.Target == "" {
		return "", NewUserError("What do you want to put?")
	}
	if cmd.Instrument == "" {
		return "", NewUserError("You can only insert items into objects, not anything else.")
	}

	item := ctx.Actor.FindItem(cmd.Target)
	if item == nil {
		return "", NewUserError(fmt.Sprintf("You don't have '%s' in your inventory.", cmd.Target))
	}

	container := findCarriedContainer(ctx.Actor, cmd.Instrument)
	if container == nil {
		return "", NewUserError(fmt.Sprintf("You don't have a container called '%s' in your inventory.", cmd.Instrument))
	}
	if container == item {
		return "", NewUserError(fmt.Sprintf("You can't put the %s inside itself.", container.Name))
	}

	if container.State != game.ContainerOpen {
		return "", NewUserError(fmt.Sprintf("The %s is closed. You need to open it first.", container.Name))
	}

	if !container.AddContent(item) {
		if len(container.Contents) >= container.CapacityLimit {
			return "", NewUserError(fmt.Sprintf("The %s is full and can't hold any more items.", container.Name))
		}
		if container.ContentsWeight()+item.Base().Weight > container.CapacityWeight {
			return "", NewUserError(fmt.Sprintf("The %s can't hold something that heavy.", container.Name))
		}
		return "", NewUserError(fmt.Sprintf("You can't put %s into the %s.", item.Base().Name, container.Name))
	}
	ctx.Actor.RemoveItem(item)

	return fmt.Sprintf("%s now inside the %s.", item.Base().Name, container.Name), saveAfter(ctx)
}

// findCarriedContainer is a substring lookup over the inventory restricted
// to containers, so "put coin in bag" skips a carried item named "bag tag".
func findCarriedContainer(p *game.Player, name string) *game.ContainerItem {
	name = strings.ToLower(name)
	for _, t := range p.Inventory {
		if c, ok := t.(*game.ContainerItem); ok &&
			strings.Contains(strings.ToLower(c.Name), name) {
			return c
		}
	}
	return nil
}
