package commands

import "fmt"

// HandleScore reports the actor's points and level-derived stats.
func HandleScore(ctx *Context, cmd *Command) (string, error) {
	p := ctx.Actor
	return fmt.Sprintf(
		"Score: %d points\n"+
			"Level: %s\n"+
			"Stamina: %d/%d\n"+
			"Strength: %d\n"+
			"Dexterity: %d\n"+
			"Carrying capacity: %d/%d items",
		p.Points, p.Level, p.Stamina, p.MaxStamina, p.Strength, p.Dexterity,
		len(p.Inventory), p.CarryingCapacityNum), nil
}
