package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/mistvale/go-adventure/internal/game"
)

// HandleInteraction runs the first matching transition rule on a stateful
// item for verbs like open, light, or unlock. The rule gates on the item's
// current state, a required instrument, and an optional world predicate
// before the transition and its exit side effects are allowed to fire.
func HandleInteraction(ctx *Context, cmd *Command) (string, error) {
	verb := cmd.Verb

	if cmd.Target == "" {
		return "", NewUserError(fmt.Sprintf("What do you want to %s?", verb))
	}

	target := findInteractionTarget(ctx, cmd.Target)
	if target == nil {
		return "", NewUserError(fmt.Sprintf("You don't see '%s' here.", cmd.Target))
	}

	si := game.AsStateful(target)
	if si == nil {
		base := target.Base()
		if verb == "use" && base.GrantsInvisibility {
			if base.Expired {
				return "", NewUserError(fmt.Sprintf("The %s has lost its power.", base.Name))
			}
			base.ActivateInvisibility(time.Now())
			return fmt.Sprintf("You use the %s and fade from sight.", base.Name), saveAfter(ctx)
		}
		return "", NewUserError(fmt.Sprintf("You can't %s that.", verb))
	}

	if _, ok := si.Interactions[verb]; !ok {
		return "", NewUserError(fmt.Sprintf("You can't %s the %s.", verb, si.Name))
	}

	rule := si.RuleFor(verb)
	if rule == nil {
		return "", NewUserError(fmt.Sprintf("You can't %s the %s in its current state.", verb, si.Name))
	}

	var instrument game.Thing
	if rule.RequiredInstrument != "" {
		if cmd.Instrument == "" {
			return "", NewUserError(fmt.Sprintf("You need something to %s the %s with.", verb, si.Name))
		}
		instrument = ctx.Actor.FindItem(cmd.Instrument)
		if instrument == nil {
			return "", NewUserError(fmt.Sprintf("You don't have '%s'.", cmd.Instrument))
		}
		if !strings.Contains(strings.ToLower(instrument.Base().Name), strings.ToLower(rule.RequiredInstrument)) {
			return "", NewUserError(fmt.Sprintf("You can't %s the %s with that.", verb, si.Name))
		}
	}

	if rule.Condition != nil && !rule.Condition.Eval(ctx.World) {
		return "", NewUserError(fmt.Sprintf("You can't %s the %s right now.", verb, si.Name))
	}

	if rule.TargetState != "" {
		si.SetState(rule.TargetState, ctx.World)
	}
	if rule.ConsumeInstrument && instrument != nil {
		ctx.Actor.RemoveItem(instrument)
	}

	message := rule.Message
	if message == "" {
		message = fmt.Sprintf("You %s the %s.", verb, si.Name)
	}
	expanded, err := ExpandTemplate(message, &interactionData{
		Actor: ctx.Actor.Name,
		Item:  si.Name,
		Room:  ctx.Actor.CurrentRoom,
	})
	if err != nil {
		return "", fmt.Errorf("expanding interaction message: %w", err)
	}

	if rule.AddExitDirection != "" && rule.AddExitRoom != "" {
		return fmt.Sprintf("%s You can now go %s.", expanded, rule.AddExitDirection), saveAfter(ctx)
	}

	return expanded, saveAfter(ctx)
}

// findInteractionTarget looks for the named item first in the inventory and
// then among the room's visible items. Room matches remember the room so
// exit side effects know where to apply.
func findInteractionTarget(ctx *Context, name string) game.Thing {
	if item := ctx.Actor.FindItem(name); item != nil {
		return item
	}

	room := ctx.Room()
	if room == nil {
		return nil
	}
	item := room.FindVisibleItem(ctx.World, name)
	if item == nil {
		return nil
	}
	if si := game.AsStateful(item); si != nil {
		si.RoomId = room.Id
	}
	return item
}
