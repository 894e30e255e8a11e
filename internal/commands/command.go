package commands

import "github.com/mistvale/go-adventure/internal/game"

// TargetKind says how (or whether) a command's target string resolved
// against the world at parse time.
type TargetKind int

const (
	// TargetNone means the command has no target at all.
	TargetNone TargetKind = iota
	// TargetAll is the "all"/"everything" sentinel; handlers expand it.
	TargetAll
	// TargetTreasure is the "treasure" sentinel: every item in scope with
	// value > 0.
	TargetTreasure
	// TargetItem resolved to an item in the room or the actor's inventory.
	TargetItem
	// TargetPlayer resolved to another player physically in the room.
	TargetPlayer
	// TargetSession resolved to an online player elsewhere, for messaging.
	TargetSession
	// TargetRaw did not resolve; the string passes through verbatim and
	// resolution failure is the handler's problem, not a parse error.
	TargetRaw
)

// Command is one structured entry parsed from a raw input line. A single
// line may produce several commands; they dispatch in written order.
type Command struct {
	Verb       string
	IsMovement bool
	Direction  game.Direction

	// Target is the raw target text; Kind and the resolved fields annotate
	// what the parser matched it against.
	Target string
	Kind   TargetKind
	Item   game.Thing
	Player *game.Player

	// Instrument is the "with X" / "in X" / "from X" clause, when present.
	Instrument    string
	Preposition   string
	FromContainer bool

	Original string
}
