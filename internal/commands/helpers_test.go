package commands

import (
	"github.com/mistvale/go-adventure/internal/game"
)

// testCombat is a CombatChecker with a fixed set of fighting players.
type testCombat struct {
	fighting map[string]bool
}

func (c *testCombat) IsInCombat(name string) bool {
	return c.fighting[name]
}

// testSaver counts saves and can be told to fail.
type testSaver struct {
	calls int
	err   error
}

func (s *testSaver) Save() error {
	s.calls++
	return s.err
}

// testDeliverer records every delivered message per recipient.
type testDeliverer struct {
	sent map[string][]string
}

func newTestDeliverer() *testDeliverer {
	return &testDeliverer{sent: map[string][]string{}}
}

func (d *testDeliverer) Deliver(recipient, text string) error {
	d.sent[recipient] = append(d.sent[recipient], text)
	return nil
}

// newTestContext builds a two-room world with an actor in the first room
// and returns everything a handler test needs.
func newTestContext() (*Context, *game.World, *game.Room) {
	w := game.NewWorld()

	camp := game.NewRoom("camp", "Camp", "A small camp by the road.")
	camp.IsOutdoor = true
	camp.Exits[game.North] = "road"
	road := game.NewRoom("road", "Road", "A muddy road.")
	road.IsOutdoor = true
	road.Exits[game.South] = "camp"
	w.AddRoom(camp)
	w.AddRoom(road)

	actor := game.NewPlayer("Alice", "camp")
	session := game.NewSession(actor)
	w.Sessions()[session.Id] = session

	return &Context{
		World:   w,
		Actor:   actor,
		Session: session,
	}, w, camp
}

// addOtherPlayer drops a second connected player into a room.
func addOtherPlayer(w *game.World, name, roomId string) *game.Player {
	p := game.NewPlayer(name, roomId)
	s := game.NewSession(p)
	w.Sessions()[s.Id] = s
	return p
}
