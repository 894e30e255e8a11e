package commands

// HandleInventory lists what the actor carries. The empty case is a fixed
// message, not an empty listing.
func HandleInventory(ctx *Context, cmd *Command) (string, error) {
	if len(ctx.Actor.Inventory) == 0 {
		return "You aren't carrying anything!", nil
	}

	return "You are currently holding the following:\n" + ctx.Actor.InventoryNames(), nil
}
