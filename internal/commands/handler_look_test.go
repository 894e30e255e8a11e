package commands

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/mistvale/go-adventure/internal/game"
)

func TestHandleLook(t *testing.T) {
	tests := map[string]struct {
		setup  func(ctx *Context, room *game.Room)
		cmd    *Command
		expOut string
		expErr string
	}{
		"room with item": {
			setup: func(ctx *Context, room *game.Room) {
				room.AddItem(game.NewItem("rusty sword", "sword", "A rusty sword lies here.", 5, 10, true))
			},
			cmd:    &Command{Verb: "look"},
			expOut: "Camp\nA small camp by the road.\nA rusty sword lies here.",
		},
		"carried item": {
			setup: func(ctx *Context, room *game.Room) {
				ctx.Actor.AddItem(game.NewItem("brass lamp", "lamp", "A battered brass lamp.", 3, 0, true))
			},
			cmd:    &Command{Verb: "look", Target: "lamp"},
			expOut: "A battered brass lamp.",
		},
		"item on the floor": {
			setup: func(ctx *Context, room *game.Room) {
				room.AddItem(game.NewItem("rusty sword", "sword", "A rusty sword lies here.", 5, 10, true))
			},
			cmd:    &Command{Verb: "look", Target: "sword"},
			expOut: "Rusty sword: A rusty sword lies here.",
		},
		"inventory beats the floor": {
			setup: func(ctx *Context, room *game.Room) {
				ctx.Actor.AddItem(game.NewItem("silver key", "key-1", "Your silver key.", 1, 0, true))
				room.AddItem(game.NewItem("iron key", "key-2", "An iron key on the ground.", 1, 0, true))
			},
			cmd:    &Command{Verb: "look", Target: "key"},
			expOut: "Your silver key.",
		},
		"hidden item is invisible": {
			setup: func(ctx *Context, room *game.Room) {
				gem := game.NewItem("ruby", "ruby", "A ruby sparkles.", 1, 100, true)
				room.AddHiddenItem(gem, &game.Condition{
					Kind:   game.CondItemState,
					ItemId: "lever",
					State:  "pulled",
				})
			},
			cmd:    &Command{Verb: "look", Target: "ruby"},
			expErr: "You don't see 'ruby' here.",
		},
		"unknown target": {
			cmd:    &Command{Verb: "look", Target: "unicorn"},
			expErr: "You don't see 'unicorn' here.",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx, _, room := newTestContext()
			if tt.setup != nil {
				tt.setup(ctx, room)
			}

			out, err := HandleLook(ctx, tt.cmd)

			if tt.expErr != "" {
				if err == nil {
					t.Fatalf("expected error, got %q", out)
				}
				testutil.AssertEqual(t, "error", err.Error(), tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "reply", out, tt.expOut)
		})
	}
}

// An explicit look repeats the full description even after the room has
// been visited, while arrivals in a visited room shorten to the name line.
func TestHandleLook_AlwaysFullDescription(t *testing.T) {
	ctx, _, _ := newTestContext()
	ctx.Actor.MarkVisited("camp")

	out, err := HandleLook(ctx, &Command{Verb: "look"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "full text", out, "Camp\nA small camp by the road.")
}

func TestHandleLook_ShowsOccupants(t *testing.T) {
	ctx, w, _ := newTestContext()
	bob := addOtherPlayer(w, "Bob", "camp")
	bob.AddItem(game.NewItem("stick", "stick", "A stick.", 1, 0, true))
	addOtherPlayer(w, "Carol", "road")

	out, err := HandleLook(ctx, &Command{Verb: "look"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "Bob the Neophyte is here, carrying stick") {
		t.Errorf("missing occupant line in %q", out)
	}
	if strings.Contains(out, "Carol") {
		t.Errorf("occupant from another room leaked into %q", out)
	}
	if strings.Contains(out, "Alice") {
		t.Errorf("actor listed as their own occupant in %q", out)
	}
}

func TestHandleExits(t *testing.T) {
	ctx, w, room := newTestContext()
	room.Exits[game.East] = "gone" // no such room

	out, err := HandleExits(ctx, &Command{Verb: "exits"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "listing", out, "east        Unknown\nnorth       Road")

	lost := game.NewRoom("island", "Island", "No way off.")
	w.AddRoom(lost)
	ctx.Actor.CurrentRoom = "island"

	out, err = HandleExits(ctx, &Command{Verb: "exits"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "no exits", out, "No exits from here.")
}

func TestHandleInventory(t *testing.T) {
	ctx, _, _ := newTestContext()

	out, err := HandleInventory(ctx, &Command{Verb: "inventory"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "empty", out, "You aren't carrying anything!")

	ctx.Actor.AddItem(game.NewItem("rope", "rope", "A rope.", 2, 0, true))
	ctx.Actor.AddItem(game.NewItem("lamp", "lamp", "A lamp.", 3, 0, true))

	out, err = HandleInventory(ctx, &Command{Verb: "inventory"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "listing", out,
		"You are currently holding the following:\nrope, lamp")
}

func TestHandleScore(t *testing.T) {
	ctx, _, _ := newTestContext()
	ctx.Actor.AddPoints(450)
	ctx.Actor.AddItem(game.NewItem("rope", "rope", "A rope.", 2, 0, true))

	out, err := HandleScore(ctx, &Command{Verb: "score"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Score: 450 points\n" +
		"Level: Novice\n" +
		"Stamina: 45/50\n" +
		"Strength: 50\n" +
		"Dexterity: 50\n" +
		"Carrying capacity: 1/7 items"
	testutil.AssertEqual(t, "score sheet", out, want)
}

func TestHandleQuit(t *testing.T) {
	ctx, _, _ := newTestContext()
	saver := &testSaver{}
	ctx.Saver = saver

	out, err := HandleQuit(ctx, &Command{Verb: "quit"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "farewell", out, "Goodbye, Alice!")
	testutil.AssertEqual(t, "saved", saver.calls, 1)

	ctx.Combat = &testCombat{fighting: map[string]bool{"Alice": true}}
	_, err = HandleQuit(ctx, &Command{Verb: "quit"})
	if err == nil {
		t.Fatal("expected combat refusal")
	}
	testutil.AssertEqual(t, "error", err.Error(), "You can't quit while in combat!")
	testutil.AssertEqual(t, "no extra save", saver.calls, 1)
}

func TestHandleLook_DarkRoom(t *testing.T) {
	litTorch := func() *game.Item {
		torch := game.NewItem("torch", "torch", "A burning torch.", 1, 0, true)
		torch.EmitsLight = true
		return torch
	}

	tests := map[string]struct {
		setup func(ctx *Context, w *game.World, room *game.Room)
		lit   bool
	}{
		"no light source": {},
		"light source on the ground": {
			setup: func(ctx *Context, w *game.World, room *game.Room) {
				room.AddItem(litTorch())
			},
			lit: true,
		},
		"carried light source": {
			setup: func(ctx *Context, w *game.World, room *game.Room) {
				ctx.Actor.AddItem(litTorch())
			},
			lit: true,
		},
		"another player carries the light": {
			setup: func(ctx *Context, w *game.World, room *game.Room) {
				bob := addOtherPlayer(w, "Bob", "camp")
				bob.AddItem(litTorch())
			},
			lit: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx, w, room := newTestContext()
			room.IsDark = true
			room.AddItem(game.NewItem("coin", "coin", "A gold coin glints.", 1, 5, true))
			if tt.setup != nil {
				tt.setup(ctx, w, room)
			}

			out, err := HandleLook(ctx, &Command{Verb: "look"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.lit {
				if !strings.HasPrefix(out, "Camp\nA small camp by the road.") {
					t.Errorf("lit room lost its description: %q", out)
				}
				testutil.AssertEqual(t, "floor item shown", strings.Contains(out, "A gold coin glints."), true)
			} else {
				testutil.AssertEqual(t, "dark room", out, "Camp\nThe room is too dark to see anything.")
			}
		})
	}
}

func TestHandleLook_DarkRoomHidesFloorItems(t *testing.T) {
	ctx, _, room := newTestContext()
	room.IsDark = true
	room.AddItem(game.NewItem("coin", "coin", "A gold coin glints.", 1, 5, true))

	// Looking around in the dark never counts as a visit.
	if _, err := HandleLook(ctx, &Command{Verb: "look"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "visited", ctx.Actor.HasVisited("camp"), false)

	_, err := HandleLook(ctx, &Command{Verb: "look", Target: "coin"})
	if err == nil {
		t.Fatal("expected refusal in the dark")
	}
	testutil.AssertEqual(t, "error", err.Error(), "You don't see 'coin' here.")
}

func TestHandleLook_AtPlayer(t *testing.T) {
	ctx, w, _ := newTestContext()
	bob := addOtherPlayer(w, "Bob", "camp")
	bob.AddItem(game.NewItem("stick", "stick", "A stick.", 1, 0, true))

	out, err := HandleLook(ctx, &Command{Verb: "look", Target: "Bob", Kind: TargetPlayer, Player: bob})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "player description", out, "Bob the Neophyte is here, carrying stick.")
}
