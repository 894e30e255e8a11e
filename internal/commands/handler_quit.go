package commands

import "fmt"

// HandleQuit saves the actor and says goodbye. Quitting mid-fight is
// refused; the combat collaborator decides what counts as a fight.
func HandleQuit(ctx *Context, cmd *Command) (string, error) {
	if ctx.InCombat() {
		return "", NewUserError("You can't quit while in combat!")
	}

	if err := ctx.Save(); err != nil {
		return "", fmt.Errorf("saving on quit: %w", err)
	}

	return fmt.Sprintf("Goodbye, %s!", ctx.Actor.Name), nil
}
