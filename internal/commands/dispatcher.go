package commands

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pixil98/go-log"

	"github.com/mistvale/go-adventure/internal/game"
)

// CombatChecker is the combat collaborator: the core only asks whether an
// actor is currently blocked by a fight.
type CombatChecker interface {
	IsInCombat(name string) bool
}

// Saver is the persistence collaborator, invoked after any mutation that
// must survive a restart. The core never sees the format.
type Saver interface {
	Save() error
}

// Deliverer is the delivery collaborator: it transmits text to a named
// recipient. The core never formats protocol frames.
type Deliverer interface {
	Deliver(recipient, text string) error
}

const (
	// CrippleAffliction blocks movement when present on a session.
	CrippleAffliction = "cripple"

	msgBlockedByCombat   = "You can't move while in combat! Use 'flee <direction>' to escape."
	msgBlockedByCripple  = "You are crippled and cannot move!"
	msgUnknownVerbFormat = "I don't know how to '%s'."
	msgTooDark           = "The room is too dark to see anything."
)

// Context carries everything a handler may touch: the world graph, the
// acting player, their session, and the external collaborators. It is built
// per batch and passed explicitly; there is no ambient state.
type Context struct {
	World   *game.World
	Actor   *game.Player
	Session *game.Session
	Deliver Deliverer
	Combat  CombatChecker
	Saver   Saver
}

// Room returns the actor's current room, or nil if they are in the void.
func (c *Context) Room() *game.Room {
	return c.World.Room(c.Actor.CurrentRoom)
}

// Save triggers the persistence collaborator, tolerating its absence.
func (c *Context) Save() error {
	if c.Saver == nil {
		return nil
	}
	return c.Saver.Save()
}

// InCombat asks the combat collaborator about the actor.
func (c *Context) InCombat() bool {
	return c.Combat != nil && c.Combat.IsInCombat(c.Actor.Name)
}

// HandlerFunc executes one structured command for an actor. Returned text
// goes to the player verbatim; a *UserError becomes reply text too, while
// any other error is logged and replaced with a generic message.
type HandlerFunc func(ctx *Context, cmd *Command) (string, error)

// Dispatcher parses raw input into a batch and runs it to completion under
// a global mutex, so no two batches interleave mutation of shared state.
// Each batch is one non-preemptible unit of work.
type Dispatcher struct {
	mu sync.Mutex

	registry *Registry
	parser   *Parser
	world    *game.World
	combat   CombatChecker
	saver    Saver
	deliver  Deliverer
}

func NewDispatcher(registry *Registry, world *game.World, combat CombatChecker, saver Saver, deliver Deliverer) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		parser:   NewParser(registry.Vocabulary()),
		world:    world,
		combat:   combat,
		saver:    saver,
		deliver:  deliver,
	}
}

// BatchLock exposes the batch mutex so the tick driver can schedule
// time-based mutation between batches instead of interleaving with one.
func (d *Dispatcher) BatchLock() sync.Locker {
	return &d.mu
}

// Dispatch runs one raw input line for an actor and returns the combined
// reply. Clauses run in written order; a failing clause contributes its
// error text and the batch continues - there is no rollback.
func (d *Dispatcher) Dispatch(ctx context.Context, actor *game.Player, input string) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	cmdCtx := &Context{
		World:   d.world,
		Actor:   actor,
		Deliver: d.deliver,
		Combat:  d.combat,
		Saver:   d.saver,
	}
	if id := d.world.Sessions().FindSession(actor); id != "" {
		cmdCtx.Session = d.world.Sessions()[id]
	}

	batch := d.parser.Parse(input, cmdCtx)
	actor.Touch()

	var results []string
	for _, cmd := range batch {
		if out := d.execute(ctx, cmdCtx, cmd); out != "" {
			results = append(results, out)
		}
	}

	return strings.Join(results, "\n")
}

func (d *Dispatcher) execute(ctx context.Context, cmdCtx *Context, cmd *Command) string {
	if cmd.IsMovement {
		if blocked, msg := d.movementBlocked(cmdCtx); blocked {
			return msg
		}
		out, err := Move(cmdCtx, cmd.Direction)
		return d.reply(ctx, cmd, out, err)
	}

	handler, ok := d.registry.Handler(cmd.Verb)
	if !ok {
		return fmt.Sprintf(msgUnknownVerbFormat, cmd.Verb)
	}

	out, err := handler(cmdCtx, cmd)
	return d.reply(ctx, cmd, out, err)
}

// movementBlocked applies the two blocking predicates that gate
// movement-class commands only; other handlers run their own checks.
func (d *Dispatcher) movementBlocked(cmdCtx *Context) (bool, string) {
	if cmdCtx.InCombat() {
		return true, msgBlockedByCombat
	}
	if cmdCtx.Session != nil && cmdCtx.Session.HasAffliction(CrippleAffliction) {
		return true, msgBlockedByCripple
	}
	return false, ""
}

func (d *Dispatcher) reply(ctx context.Context, cmd *Command, out string, err error) string {
	if err == nil {
		return out
	}
	if ue, ok := err.(*UserError); ok {
		return ue.Message
	}
	log.GetLogger(ctx).Errorf("executing %q: %v", cmd.Verb, err)
	return "Something went wrong."
}
