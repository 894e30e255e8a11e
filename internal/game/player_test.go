package game

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestPlayer_AddItem(t *testing.T) {
	tests := map[string]struct {
		setup   func(p *Player)
		item    Thing
		expOk   bool
		expMsg  string
		expSize int
	}{
		"takeable item fits": {
			setup:   func(p *Player) {},
			item:    NewItem("sword", "sword", "a rusty sword", 5, 0, true),
			expOk:   true,
			expMsg:  "sword taken.",
			expSize: 1,
		},
		"untakeable item refused": {
			setup:   func(p *Player) {},
			item:    NewItem("boulder", "boulder", "a huge boulder", 5, 0, false),
			expOk:   false,
			expMsg:  "Don't be ridiculous!",
			expSize: 0,
		},
		"capacity count refused": {
			setup: func(p *Player) {
				for i := 0; i < p.CarryingCapacityNum; i++ {
					p.Inventory = append(p.Inventory, NewItem("pebble", "pebble", "a pebble", 0, 0, true))
				}
			},
			item:    NewItem("coin", "coin", "a gold coin", 1, 10, true),
			expOk:   false,
			expMsg:  "You are carrying too many items.",
			expSize: 6,
		},
		"weight refused": {
			setup:   func(p *Player) {},
			item:    NewItem("anvil", "anvil", "an iron anvil", 1000, 0, true),
			expOk:   false,
			expMsg:  "This item is too heavy to carry.",
			expSize: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewPlayer("Tester", "void")
			tt.setup(p)

			ok, msg := p.AddItem(tt.item)

			testutil.AssertEqual(t, "ok", ok, tt.expOk)
			testutil.AssertEqual(t, "message", msg, tt.expMsg)
			testutil.AssertEqual(t, "inventory size", len(p.Inventory), tt.expSize)
		})
	}
}

func TestPlayer_RemoveItem(t *testing.T) {
	p := NewPlayer("Tester", "void")
	sword := NewItem("sword", "sword", "a rusty sword", 5, 0, true)
	p.AddItem(sword)

	ok, msg := p.RemoveItem(sword)
	testutil.AssertEqual(t, "ok", ok, true)
	testutil.AssertEqual(t, "message", msg, "sword dropped.")
	testutil.AssertEqual(t, "inventory size", len(p.Inventory), 0)

	ok, msg = p.RemoveItem(sword)
	testutil.AssertEqual(t, "ok again", ok, false)
	testutil.AssertEqual(t, "message again", msg, "Item not found in your inventory.")
}

func TestPlayer_FindItem(t *testing.T) {
	p := NewPlayer("Tester", "void")
	p.AddItem(NewItem("rusty sword", "sword", "a rusty sword", 5, 0, true))
	p.AddItem(NewItem("swordfish", "fish", "a swordfish", 2, 0, true))

	// Substring match, first inventory entry wins
	found := p.FindItem("SWORD")
	if found == nil {
		t.Fatal("expected a match")
	}
	testutil.AssertEqual(t, "matched item", found.Base().Id, "sword")

	if p.FindItem("shield") != nil {
		t.Error("expected no match for shield")
	}
}

func TestPlayer_LevelRecompute(t *testing.T) {
	p := NewPlayer("Tester", "void")

	testutil.AssertEqual(t, "starting level", p.Level, "Neophyte")
	startCapacity := p.CarryingCapacityNum

	changed, _ := p.AddPoints(400)
	testutil.AssertEqual(t, "level changed", changed, true)
	if p.Level == "Neophyte" {
		t.Error("expected level above Neophyte at 400 points")
	}
	if p.CarryingCapacityNum < startCapacity {
		t.Error("carrying capacity must not shrink as points grow")
	}

	// Stats always match the table row for the current points
	row, _ := LevelFor(p.Points)
	testutil.AssertEqual(t, "strength", p.Strength, row.Strength)
	testutil.AssertEqual(t, "dexterity", p.Dexterity, row.Dexterity)
	testutil.AssertEqual(t, "magic", p.Magic, row.Magic)
}

func TestPlayer_InventoryNames(t *testing.T) {
	p := NewPlayer("Tester", "void")
	testutil.AssertEqual(t, "empty inventory", p.InventoryNames(), "")

	p.AddItem(NewItem("lamp", "lamp", "a brass lamp", 1, 0, true))
	p.AddItem(NewItem("coin", "coin", "a gold coin", 1, 10, true))

	names := p.InventoryNames()
	if !strings.Contains(names, "lamp") || !strings.Contains(names, "coin") {
		t.Errorf("expected both names, got %q", names)
	}
}

func TestLevelFor(t *testing.T) {
	tests := map[string]struct {
		points  int
		expName string
	}{
		"zero points":           {0, "Neophyte"},
		"just below threshold":  {399, "Neophyte"},
		"exactly at threshold":  {400, "Novice"},
		"far beyond the table":  {999999, "Archmage"},
		"negative stays lowest": {-5, "Neophyte"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			row, _ := LevelFor(tt.points)
			testutil.AssertEqual(t, "level name", row.Name, tt.expName)
		})
	}
}

func TestWeaponCanUse(t *testing.T) {
	tests := map[string]struct {
		points int
		weapon *Weapon
		expOk  bool
		expWhy string
	}{
		"no gates": {
			points: 0,
			weapon: NewWeapon("club", "club", "a club", 4, 0, 5),
			expOk:  true,
		},
		"level gate blocks": {
			points: 0,
			weapon: func() *Weapon {
				w := NewWeapon("staff", "staff", "a staff", 3, 0, 8)
				w.MinLevel = "Acolyte"
				return w
			}(),
			expWhy: "You must be at least a Acolyte to use staff.",
		},
		"level gate passes": {
			points: 800,
			weapon: func() *Weapon {
				w := NewWeapon("staff", "staff", "a staff", 3, 0, 8)
				w.MinLevel = "Acolyte"
				return w
			}(),
			expOk: true,
		},
		"strength gate blocks": {
			points: 0,
			weapon: func() *Weapon {
				w := NewWeapon("maul", "maul", "a maul", 20, 0, 15)
				w.MinStrength = 60
				return w
			}(),
			expWhy: "You need 60 strength to wield maul.",
		},
		"dexterity gate blocks": {
			points: 0,
			weapon: func() *Weapon {
				w := NewWeapon("rapier", "rapier", "a rapier", 2, 0, 9)
				w.MinDexterity = 50
				return w
			}(),
			expWhy: "You need 50 dexterity to use rapier.",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewPlayer("Tester", "camp")
			p.AddPoints(tt.points)

			ok, why := tt.weapon.CanUse(p)
			testutil.AssertEqual(t, "allowed", ok, tt.expOk)
			testutil.AssertEqual(t, "reason", why, tt.expWhy)
		})
	}
}
