package commands

import (
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/mistvale/go-adventure/internal/game"
)

func TestVocabulary_ExpandWord(t *testing.T) {
	v := NewVocabulary()
	v.AddWord("g", "get")
	v.AddWord("t", "treasure")

	tests := map[string]struct {
		token string
		exp   string
	}{
		"mapped abbreviation":  {"g", "get"},
		"case insensitive":     {"G", "get"},
		"sentinel shorthand":   {"t", "treasure"},
		"unmapped passthrough": {"frobnicate", "frobnicate"},
		"unmapped lowercased":  {"LOOK", "look"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "expansion", v.ExpandWord(tt.token), tt.exp)
		})
	}
}

func TestVocabulary_ExpandWordLastWins(t *testing.T) {
	v := NewVocabulary()
	v.AddWord("x", "exits")
	v.AddWord("x", "examine")

	testutil.AssertEqual(t, "expansion", v.ExpandWord("x"), "examine")
}

func TestVocabulary_Direction(t *testing.T) {
	v := NewVocabulary()

	tests := map[string]struct {
		token  string
		expDir game.Direction
		expOk  bool
	}{
		"full word":      {"north", game.North, true},
		"abbreviation":   {"n", game.North, true},
		"diagonal":       {"sw", game.Southwest, true},
		"vertical":       {"u", game.Up, true},
		"mixed case":     {"South", game.South, true},
		"not a movement": {"look", "", false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir, ok := v.Direction(tt.token)
			testutil.AssertEqual(t, "ok", ok, tt.expOk)
			testutil.AssertEqual(t, "direction", dir, tt.expDir)
		})
	}
}

func TestVocabulary_IsVerb(t *testing.T) {
	v := NewVocabulary()
	v.AddVerb("look")
	v.AddVerb("look") // re-adding is idempotent
	v.AddWord("l", "look")

	testutil.AssertEqual(t, "canonical", v.IsVerb("look"), true)
	testutil.AssertEqual(t, "through alias", v.IsVerb("l"), true)
	testutil.AssertEqual(t, "case insensitive", v.IsVerb("LOOK"), true)
	testutil.AssertEqual(t, "unknown", v.IsVerb("dance"), false)
}
