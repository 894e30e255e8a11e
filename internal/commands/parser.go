package commands

import (
	"strings"
)

// Chain delimiters: a single input line splits into independently dispatched
// segments on commas, semicolons, and newlines. This is the full delimiter
// set; periods are left alone so item names may contain them.
var chainDelimiters = func(r rune) bool {
	return r == ',' || r == ';' || r == '\n'
}

// Parser turns raw input lines into ordered command batches using the
// vocabulary for normalization and the supplied context for target
// resolution. The parser owns neither; both are handed in by the caller.
type Parser struct {
	vocab *Vocabulary
}

func NewParser(vocab *Vocabulary) *Parser {
	return &Parser{vocab: vocab}
}

// Parse splits the input into chained segments and parses each in order.
// Empty input and all-filler segments contribute nothing; an empty batch is
// a no-op, not an error.
func (p *Parser) Parse(input string, ctx *Context) []*Command {
	var batch []*Command

	for _, segment := range strings.FieldsFunc(input, chainDelimiters) {
		if cmd := p.parseSegment(segment, ctx); cmd != nil {
			batch = append(batch, cmd)
		}
	}

	return batch
}

func (p *Parser) parseSegment(segment string, ctx *Context) *Command {
	tokens := strings.Fields(segment)
	if len(tokens) > 0 && strings.EqualFold(tokens[0], FillerWord) {
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return nil
	}

	// A leading movement word makes the whole segment a movement command.
	if dir, ok := p.vocab.Direction(tokens[0]); ok {
		return &Command{
			Verb:       string(dir),
			IsMovement: true,
			Direction:  dir,
			Original:   segment,
		}
	}

	cmd := &Command{
		Verb:     p.vocab.ExpandWord(tokens[0]),
		Original: segment,
	}

	rest := tokens[1:]
	target, instrument, prep := splitPreposition(rest)
	cmd.Target = strings.Join(target, " ")
	cmd.Instrument = strings.Join(instrument, " ")
	cmd.Preposition = prep
	cmd.FromContainer = prep == "from"

	p.resolveTarget(cmd, ctx)
	return cmd
}

// splitPreposition breaks the argument tokens at the first recognized
// preposition: "verb TARGET with INSTRUMENT", "put TARGET in CONTAINER",
// "get TARGET from CONTAINER", "give TARGET to PLAYER".
func splitPreposition(tokens []string) (target, instrument []string, prep string) {
	for idx, tok := range tokens {
		switch strings.ToLower(tok) {
		case "with", "using":
			return tokens[:idx], tokens[idx+1:], "with"
		case "in", "into":
			return tokens[:idx], tokens[idx+1:], "in"
		case "from", "fr":
			return tokens[:idx], tokens[idx+1:], "from"
		case "to":
			return tokens[:idx], tokens[idx+1:], "to"
		}
	}
	return tokens, nil, ""
}

// resolveTarget classifies the target string. Sentinels are preserved, not
// resolved against concrete items. Concrete matching tries, in priority
// order: room items, inventory items, players present, online sessions.
// First match wins; ambiguity resolves to the first in iteration order by
// design, keeping tests deterministic.
func (p *Parser) resolveTarget(cmd *Command, ctx *Context) {
	if cmd.Target == "" {
		cmd.Kind = TargetNone
		return
	}

	switch p.vocab.ExpandWord(cmd.Target) {
	case "all", "everything":
		cmd.Kind = TargetAll
		return
	case "treasure":
		cmd.Kind = TargetTreasure
		return
	}

	if ctx == nil || ctx.Actor == nil || ctx.World == nil {
		cmd.Kind = TargetRaw
		return
	}

	if room := ctx.Room(); room != nil {
		if item := room.FindVisibleItem(ctx.World, cmd.Target); item != nil {
			cmd.Kind = TargetItem
			cmd.Item = item
			return
		}
	}

	if item := ctx.Actor.FindItem(cmd.Target); item != nil {
		cmd.Kind = TargetItem
		cmd.Item = item
		return
	}

	sessions := ctx.World.Sessions()
	for _, other := range sessions.PlayersInRoom(ctx.Actor.CurrentRoom, ctx.Actor) {
		if strings.EqualFold(other.Name, cmd.Target) {
			cmd.Kind = TargetPlayer
			cmd.Player = other
			return
		}
	}

	if other := sessions.FindPlayer(cmd.Target); other != nil && other != ctx.Actor {
		cmd.Kind = TargetSession
		cmd.Player = other
		return
	}

	cmd.Kind = TargetRaw
}
