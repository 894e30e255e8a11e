package commands

import (
	"strings"

	"github.com/mistvale/go-adventure/internal/game"
)

// FillerWord is dropped from the front of a segment before parsing, so
// "go north" and "north" are the same command.
const FillerWord = "go"

// Vocabulary holds the three case-insensitive word tables: canonical verbs,
// synonym/abbreviation expansions, and movement words. It is populated
// during startup registration and read-only once traffic begins, so lookups
// need no locking.
type Vocabulary struct {
	verbs      map[string]struct{}
	words      map[string]string
	directions map[string]game.Direction
}

func NewVocabulary() *Vocabulary {
	v := &Vocabulary{
		verbs:      map[string]struct{}{},
		words:      map[string]string{},
		directions: map[string]game.Direction{},
	}

	for _, dir := range game.Directions {
		v.AddDirection(string(dir), dir)
	}
	v.AddDirection("n", game.North)
	v.AddDirection("s", game.South)
	v.AddDirection("e", game.East)
	v.AddDirection("w", game.West)
	v.AddDirection("ne", game.Northeast)
	v.AddDirection("nw", game.Northwest)
	v.AddDirection("se", game.Southeast)
	v.AddDirection("sw", game.Southwest)
	v.AddDirection("u", game.Up)
	v.AddDirection("d", game.Down)

	return v
}

// AddVerb registers a canonical verb. Re-adding is idempotent.
func (v *Vocabulary) AddVerb(verb string) {
	v.verbs[strings.ToLower(verb)] = struct{}{}
}

// AddWord maps a synonym or abbreviation to its canonical form. The last
// registration for a word wins.
func (v *Vocabulary) AddWord(word, canonical string) {
	v.words[strings.ToLower(word)] = strings.ToLower(canonical)
}

// AddDirection maps a movement word to a direction.
func (v *Vocabulary) AddDirection(word string, dir game.Direction) {
	v.directions[strings.ToLower(word)] = dir
}

// ExpandWord returns the canonical form of a token, or the token itself
// (lowercased) when it is not mapped.
func (v *Vocabulary) ExpandWord(token string) string {
	token = strings.ToLower(token)
	if canonical, ok := v.words[token]; ok {
		return canonical
	}
	return token
}

// Direction resolves a movement word, after expansion, to a direction.
func (v *Vocabulary) Direction(token string) (game.Direction, bool) {
	dir, ok := v.directions[v.ExpandWord(token)]
	return dir, ok
}

// IsVerb reports whether the expanded token is a registered canonical verb.
func (v *Vocabulary) IsVerb(token string) bool {
	_, ok := v.verbs[v.ExpandWord(token)]
	return ok
}
