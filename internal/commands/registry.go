package commands

import (
	"fmt"
	"sort"
	"strings"
)

// binding is a registered verb: its handler, help text, and whether it is
// hidden from the full help listing.
type binding struct {
	handler HandlerFunc
	help    string
	hidden  bool
}

// Registry binds canonical verbs to handlers. Lookups always normalize
// through the vocabulary first, so aliases never need their own entry.
type Registry struct {
	vocab    *Vocabulary
	commands map[string]*binding
}

func NewRegistry(vocab *Vocabulary) *Registry {
	return &Registry{
		vocab:    vocab,
		commands: map[string]*binding{},
	}
}

// Vocabulary returns the word tables the registry registers into.
func (r *Registry) Vocabulary() *Vocabulary {
	return r.vocab
}

// Register binds a verb to a handler and adds the verb to the vocabulary.
// Re-registering a verb overwrites the previous binding.
func (r *Registry) Register(verb string, handler HandlerFunc, help string) {
	r.register(verb, handler, help, false)
}

// RegisterHidden is Register for verbs left out of the help listing.
func (r *Registry) RegisterHidden(verb string, handler HandlerFunc, help string) {
	r.register(verb, handler, help, true)
}

func (r *Registry) register(verb string, handler HandlerFunc, help string, hidden bool) {
	verb = strings.ToLower(verb)
	if help == "" {
		help = fmt.Sprintf("No help available for '%s'.", verb)
	}
	r.commands[verb] = &binding{handler: handler, help: help, hidden: hidden}
	r.vocab.AddVerb(verb)
}

// RegisterAlias maps an alias onto an already-registered verb. Aliases live
// only in the vocabulary; there is no separate registry entry to fall out of
// sync. Aliasing an unknown verb is a wiring bug and fails loudly.
func (r *Registry) RegisterAlias(alias, target string) error {
	target = strings.ToLower(target)
	if _, ok := r.commands[target]; !ok {
		return &ConfigurationError{Alias: alias, Target: target}
	}
	r.vocab.AddWord(alias, target)
	return nil
}

// RegisterAliases registers several aliases for one verb.
func (r *Registry) RegisterAliases(aliases []string, target string) error {
	for _, alias := range aliases {
		if err := r.RegisterAlias(alias, target); err != nil {
			return err
		}
	}
	return nil
}

// Handler returns the handler for a verb after normalization. Unregistered
// verbs are a first-class outcome, reported through ok.
func (r *Registry) Handler(verb string) (HandlerFunc, bool) {
	b, ok := r.commands[r.vocab.ExpandWord(verb)]
	if !ok {
		return nil, false
	}
	return b.handler, true
}

// Help returns the help text for one verb, or for every non-hidden verb
// sorted lexicographically when verb is empty. It never fails; unknown
// verbs get a placeholder.
func (r *Registry) Help(verb string) string {
	if verb != "" {
		canonical := r.vocab.ExpandWord(verb)
		if b, ok := r.commands[canonical]; ok {
			return b.help
		}
		return fmt.Sprintf("No help available for '%s'.", verb)
	}

	verbs := make([]string, 0, len(r.commands))
	for v, b := range r.commands {
		if !b.hidden {
			verbs = append(verbs, v)
		}
	}
	sort.Strings(verbs)

	var sb strings.Builder
	sb.WriteString("Available commands:\n")
	for _, v := range verbs {
		fmt.Fprintf(&sb, "\n%s: %s", v, r.commands[v].help)
	}
	return sb.String()
}
