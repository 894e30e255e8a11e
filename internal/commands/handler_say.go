package commands

import (
	"fmt"
	"strings"
)

// rawArgs recovers the untouched argument text of a segment, so message
// bodies survive even when they contain words the preposition splitter
// would otherwise claim.
func rawArgs(cmd *Command) string {
	tokens := strings.Fields(cmd.Original)
	if len(tokens) > 0 && strings.EqualFold(tokens[0], FillerWord) {
		tokens = tokens[1:]
	}
	if len(tokens) < 2 {
		return ""
	}
	return strings.Join(tokens[1:], " ")
}

// HandleSay speaks to everyone in the actor's room.
func HandleSay(ctx *Context, cmd *Command) (string, error) {
	message := strings.TrimSpace(rawArgs(cmd))
	if message == "" {
		return "", NewUserError("Say what?")
	}

	text := fmt.Sprintf("%s the %s says \"%s\"", ctx.Actor.Name, ctx.Actor.Level, message)
	for _, other := range ctx.World.Sessions().PlayersInRoom(ctx.Actor.CurrentRoom, ctx.Actor) {
		deliverTo(ctx, other.Name, text)
	}

	return fmt.Sprintf("You say \"%s\"", message), nil
}

// HandleTell sends a private message to one online player, wherever they
// are. The first word of the argument is the recipient.
func HandleTell(ctx *Context, cmd *Command) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(rawArgs(cmd)), " ", 2)
	if parts[0] == "" {
		return "", NewUserError("Tell whom?")
	}
	if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
		return "", NewUserError(fmt.Sprintf("Tell %s what?", parts[0]))
	}
	message := strings.TrimSpace(parts[1])

	recipient := ctx.World.Sessions().FindPlayer(parts[0])
	if recipient == nil || recipient == ctx.Actor {
		return "", NewUserError(fmt.Sprintf("No one called '%s' is playing.", parts[0]))
	}

	deliverTo(ctx, recipient.Name,
		fmt.Sprintf("%s the %s tells you \"%s\"", ctx.Actor.Name, ctx.Actor.Level, message))

	return fmt.Sprintf("You tell %s \"%s\"", recipient.Name, message), nil
}

// HandleShout broadcasts to every online player.
func HandleShout(ctx *Context, cmd *Command) (string, error) {
	message := strings.TrimSpace(rawArgs(cmd))
	if message == "" {
		return "", NewUserError("Shout what?")
	}

	text := fmt.Sprintf("%s the %s shouts \"%s\"", ctx.Actor.Name, ctx.Actor.Level, message)
	for _, s := range ctx.World.Sessions() {
		if s.Player == nil || s.Player == ctx.Actor {
			continue
		}
		deliverTo(ctx, s.Player.Name, text)
	}

	return fmt.Sprintf("You shout \"%s\"", message), nil
}

// deliverTo pushes text at a named player, tolerating a missing delivery
// collaborator so handlers stay testable without a transport.
func deliverTo(ctx *Context, recipient, text string) {
	if ctx.Deliver == nil {
		return
	}
	_ = ctx.Deliver.Deliver(recipient, text)
}
