package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/pixil98/go-errors"
)

// Player is a connected adventurer. Stats are derived from points through
// the level table and recomputed on every point change; nothing else may
// write them.
type Player struct {
	Name   string `json:"name"`
	Points int    `json:"points"`

	Level               string `json:"level"`
	Stamina             int    `json:"stamina"`
	MaxStamina          int    `json:"max_stamina"`
	Strength            int    `json:"strength"`
	Dexterity           int    `json:"dexterity"`
	Magic               int    `json:"magic"`
	CarryingCapacityNum int    `json:"carrying_capacity_num"`

	CurrentRoom string              `json:"current_room"`
	Visited     map[string]struct{} `json:"-"`

	Inventory []Thing `json:"-"`

	CurrentLevelAt int       `json:"current_level_at"`
	NextLevelAt    int       `json:"next_level_at"`
	CreatedAt      time.Time `json:"created_at"`
	LastActive     time.Time `json:"last_active"`
}

func NewPlayer(name, spawnRoom string) *Player {
	p := &Player{
		Name:        name,
		CurrentRoom: spawnRoom,
		Visited:     map[string]struct{}{},
		CreatedAt:   time.Now(),
		LastActive:  time.Now(),
	}
	p.recomputeLevel()
	p.Stamina = p.MaxStamina
	return p
}

// Validate satisfies storage.ValidatingSpec.
func (p *Player) Validate() error {
	el := errors.NewErrorList()

	if p.Name == "" {
		el.Add(fmt.Errorf("player name is required"))
	}
	if p.Points < 0 {
		el.Add(fmt.Errorf("points must be non-negative"))
	}

	return el.Err()
}

// AddPoints adjusts the score and re-derives every level-bound stat. It
// returns whether the level name changed and the score notification text.
func (p *Player) AddPoints(points int) (bool, string) {
	p.Points += points
	oldLevel := p.Level
	p.recomputeLevel()
	return p.Level != oldLevel, fmt.Sprintf("[%d]", p.Points)
}

// recomputeLevel sets stats to the unique table row for the highest
// threshold at or below the current points.
func (p *Player) recomputeLevel() {
	row, next := LevelFor(p.Points)

	p.Level = row.Name
	p.MaxStamina = row.Stamina
	p.Strength = row.Strength
	p.Dexterity = row.Dexterity
	p.Magic = row.Magic
	p.CarryingCapacityNum = row.CarryingCapacityNum
	p.CurrentLevelAt = row.Threshold
	p.NextLevelAt = next

	if p.Stamina > p.MaxStamina {
		p.Stamina = p.MaxStamina
	}
}

// TotalInventoryWeight sums the weight of carried items.
func (p *Player) TotalInventoryWeight() int {
	total := 0
	for _, t := range p.Inventory {
		total += t.Base().Weight
	}
	return total
}

// AddItem appends an item to the inventory after the takeable, count, and
// weight checks. On refusal the inventory is untouched, so callers can leave
// the source collection alone and no item ends up owned twice or not at all.
func (p *Player) AddItem(t Thing) (bool, string) {
	base := t.Base()
	if !base.Takeable {
		return false, "Don't be ridiculous!"
	}
	if len(p.Inventory) >= p.CarryingCapacityNum {
		return false, "You are carrying too many items."
	}
	if p.TotalInventoryWeight()+base.Weight > p.Strength {
		return false, "This item is too heavy to carry."
	}
	p.Inventory = append(p.Inventory, t)
	return true, fmt.Sprintf("%s taken.", base.Name)
}

// RemoveItem drops an item from the inventory.
func (p *Player) RemoveItem(t Thing) (bool, string) {
	for idx, existing := range p.Inventory {
		if existing == t {
			p.Inventory = append(p.Inventory[:idx], p.Inventory[idx+1:]...)
			return true, fmt.Sprintf("%s dropped.", t.Base().Name)
		}
	}
	return false, "Item not found in your inventory."
}

// FindItem returns the first carried item whose name contains the given
// substring, case-insensitively. First match in inventory order wins.
func (p *Player) FindItem(name string) Thing {
	name = strings.ToLower(name)
	for _, t := range p.Inventory {
		if strings.Contains(strings.ToLower(t.Base().Name), name) {
			return t
		}
	}
	return nil
}

// HasLightSource reports whether the player carries anything that emits
// light.
func (p *Player) HasLightSource() bool {
	for _, t := range p.Inventory {
		if t.Base().EmitsLight {
			return true
		}
	}
	return false
}

// InventoryNames is the low-level inventory helper: a comma-separated list,
// or the empty string for an empty inventory. The inventory command wraps
// this with its own fixed "carrying nothing" message.
func (p *Player) InventoryNames() string {
	names := make([]string, 0, len(p.Inventory))
	for _, t := range p.Inventory {
		names = append(names, t.Base().Name)
	}
	return strings.Join(names, ", ")
}

// MarkVisited records that the player has seen a room.
func (p *Player) MarkVisited(roomId string) {
	if p.Visited == nil {
		p.Visited = map[string]struct{}{}
	}
	p.Visited[roomId] = struct{}{}
}

// HasVisited reports whether the player has been in a room before.
func (p *Player) HasVisited(roomId string) bool {
	_, ok := p.Visited[roomId]
	return ok
}

// Touch resets the idle timer.
func (p *Player) Touch() {
	p.LastActive = time.Now()
}
