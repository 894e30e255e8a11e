package commands

// interactionVerbs are the verbs routed to the stateful-item interaction
// handler. They are hidden from the help listing; each item advertises
// what it responds to through its own description.
var interactionVerbs = []string{
	"open", "close", "push", "pull", "turn", "twist", "light", "extinguish",
	"touch", "cut", "break", "chop", "unlock", "lock", "knock", "read",
	"tie", "use",
}

// RegisterDefaults installs every built-in command, its aliases, and the
// single-letter abbreviations into a registry. It fails only on a wiring
// bug (an alias pointing at an unregistered verb).
func RegisterDefaults(r *Registry) error {
	r.Register("look", HandleLook, "Describes your current location or an object.")
	r.Register("exits", HandleExits, "Lists available exits from your current location.")
	r.Register("inventory", HandleInventory, "Lists items in your inventory.")
	r.Register("get", HandleGet, "Pick up an item from your surroundings or from a container.")
	r.Register("drop", HandleDrop, "Drop an item from your inventory.")
	r.Register("put", HandlePut, "Put an item into a container.")
	r.Register("give", HandleGive, "Give an item to another player in the same room. Usage: give <item> to <player>")
	r.Register("swamp", HandleSwamp, "Move one room toward the swamp (outdoor rooms only).")
	r.Register("say", HandleSay, "Say something to everyone in the room.")
	r.Register("tell", HandleTell, "Send a private message to an online player.")
	r.Register("shout", HandleShout, "Shout a message to everyone playing.")
	r.Register("score", HandleScore, "Shows your current score and stats.")
	r.Register("quit", HandleQuit, "Exit the game.")
	r.Register("help", makeHelpHandler(r), "Provides help on commands.")

	for _, verb := range interactionVerbs {
		r.RegisterHidden(verb, HandleInteraction, "")
	}

	aliases := map[string][]string{
		"look":      {"l", "examine", "check", "inspect"},
		"inventory": {"i", "inv"},
		"get":       {"g", "take", "grab", "pickup"},
		"drop":      {"dr", "discard", "throw"},
		"score":     {"sc"},
		"exits":     {"x"},
		"quit":      {"qq"},
		"swamp":     {"zw"},
		"shout":     {"sh"},
	}
	for target, list := range aliases {
		if err := r.RegisterAliases(list, target); err != nil {
			return err
		}
	}

	// Target-word expansions live in the vocabulary directly; "t" is a
	// sentinel abbreviation, not a verb.
	r.Vocabulary().AddWord("t", "treasure")
	r.Vocabulary().AddWord("everything", "all")

	return nil
}

// makeHelpHandler closes over the registry so the handler signature stays
// uniform with the other verbs.
func makeHelpHandler(r *Registry) HandlerFunc {
	return func(ctx *Context, cmd *Command) (string, error) {
		return r.Help(cmd.Target), nil
	}
}
