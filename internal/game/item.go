package game

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

// Thing is implemented by every item kind (plain items, weapons, stateful
// items, containers). Base exposes the fields all of them share.
type Thing interface {
	Base() *Item
}

// Item is the shared core of everything that can sit in a room or an
// inventory. An item is owned by exactly one collection at a time; transfer
// is always remove-then-add.
type Item struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Weight      int    `json:"weight"`
	Value       int    `json:"value"`
	Takeable    bool   `json:"takeable"`
	EmitsLight  bool   `json:"emits_light,omitempty"`

	// Invisibility grant, time-boxed from first activation.
	GrantsInvisibility   bool          `json:"grants_invisibility,omitempty"`
	InvisibilityDuration time.Duration `json:"invisibility_duration,omitempty"`
	ActivatedAt          time.Time     `json:"activated_at,omitzero"`
	Expired              bool          `json:"expired,omitempty"`
}

func NewItem(name, id, description string, weight, value int, takeable bool) *Item {
	return &Item{
		Id:          id,
		Name:        name,
		Description: description,
		Weight:      weight,
		Value:       value,
		Takeable:    takeable,
	}
}

func (i *Item) Base() *Item {
	return i
}

// Validate satisfies storage.ValidatingSpec.
func (i *Item) Validate() error {
	el := errors.NewErrorList()

	if i.Id == "" {
		el.Add(fmt.Errorf("item id is required"))
	}
	if i.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	if i.Weight < 0 {
		el.Add(fmt.Errorf("item weight must be non-negative"))
	}
	if i.Value < 0 {
		el.Add(fmt.Errorf("item value must be non-negative"))
	}

	return el.Err()
}

// ActivateInvisibility starts the grant clock on first use. Subsequent calls
// are no-ops so the duration cannot be extended by re-activating.
func (i *Item) ActivateInvisibility(now time.Time) {
	if !i.GrantsInvisibility || !i.ActivatedAt.IsZero() {
		return
	}
	i.ActivatedAt = now
}

// InvisibilityActive reports whether the grant is running and unexpired,
// marking the item expired once its duration has elapsed.
func (i *Item) InvisibilityActive(now time.Time) bool {
	if !i.GrantsInvisibility || i.Expired || i.ActivatedAt.IsZero() {
		return false
	}
	if now.Sub(i.ActivatedAt) >= i.InvisibilityDuration {
		i.Expired = true
		return false
	}
	return true
}

// Weapon is an item usable in combat. The stat gates are consulted by the
// combat collaborator, not enforced here.
type Weapon struct {
	Item

	Damage       int    `json:"damage"`
	MinLevel     string `json:"min_level,omitempty"`
	MinStrength  int    `json:"min_strength,omitempty"`
	MinDexterity int    `json:"min_dexterity,omitempty"`
}

func NewWeapon(name, id, description string, weight, value, damage int) *Weapon {
	return &Weapon{
		Item:   *NewItem(name, id, description, weight, value, true),
		Damage: damage,
	}
}

// CanUse checks whether a player meets the weapon's stat gates.
func (w *Weapon) CanUse(p *Player) (bool, string) {
	if w.MinLevel != "" && levelRank(p.Level) < levelRank(w.MinLevel) {
		return false, fmt.Sprintf("You must be at least a %s to use %s.", w.MinLevel, w.Name)
	}
	if w.MinStrength > 0 && p.Strength < w.MinStrength {
		return false, fmt.Sprintf("You need %d strength to wield %s.", w.MinStrength, w.Name)
	}
	if w.MinDexterity > 0 && p.Dexterity < w.MinDexterity {
		return false, fmt.Sprintf("You need %d dexterity to use %s.", w.MinDexterity, w.Name)
	}
	return true, ""
}

// AsStateful returns the stateful core of a thing, whether it is a bare
// StatefulItem or a ContainerItem, or nil for plain items and weapons.
func AsStateful(t Thing) *StatefulItem {
	switch v := t.(type) {
	case *ContainerItem:
		return &v.StatefulItem
	case *StatefulItem:
		return v
	}
	return nil
}
