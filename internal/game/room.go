package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pixil98/go-errors"
)

// HiddenItem pairs an item with the condition under which it shows up.
type HiddenItem struct {
	Item      Thing
	Condition *Condition
}

// Room is a location in the world graph. Rooms are created at world
// generation, mutated only by item movement, exit rewiring, and pathfinding
// recomputation, and never destroyed while the server runs.
type Room struct {
	Id          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Exits       map[Direction]string `json:"exits"`
	IsOutdoor   bool                 `json:"is_outdoor,omitempty"`

	// IsDark rooms show nothing without a light source present.
	IsDark bool `json:"is_dark,omitempty"`

	// SwampDirection is the precomputed first step of the shortest path to
	// the landmark room. Empty means unreachable or indoor.
	SwampDirection Direction `json:"swamp_direction,omitempty"`

	Items  []Thing                `json:"-"`
	Hidden map[string]*HiddenItem `json:"-"`
}

func NewRoom(id, name, description string) *Room {
	return &Room{
		Id:          id,
		Name:        name,
		Description: description,
		Exits:       map[Direction]string{},
		Hidden:      map[string]*HiddenItem{},
	}
}

// Validate satisfies storage.ValidatingSpec. Exit targets are checked for
// presence only; dangling room ids degrade at display time instead.
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.Id == "" {
		el.Add(fmt.Errorf("room id is required"))
	}
	if r.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}

	for dir, target := range r.Exits {
		if !dir.Valid() {
			el.Add(fmt.Errorf("exit %q: not a valid direction", dir))
		}
		if target == "" {
			el.Add(fmt.Errorf("exit %s: room id is required", dir))
		}
	}

	return el.Err()
}

// AddItem appends a visible item.
func (r *Room) AddItem(t Thing) {
	r.Items = append(r.Items, t)
	if si := AsStateful(t); si != nil {
		si.RoomId = r.Id
	}
}

// AddHiddenItem registers an item that is only visible while cond holds.
func (r *Room) AddHiddenItem(t Thing, cond *Condition) {
	if r.Hidden == nil {
		r.Hidden = map[string]*HiddenItem{}
	}
	r.Hidden[t.Base().Id] = &HiddenItem{Item: t, Condition: cond}
	if si := AsStateful(t); si != nil {
		si.RoomId = r.Id
	}
}

// RemoveItem removes a visible item, reporting whether it was present.
func (r *Room) RemoveItem(t Thing) bool {
	for idx, existing := range r.Items {
		if existing == t {
			r.Items = append(r.Items[:idx], r.Items[idx+1:]...)
			return true
		}
	}
	return false
}

// RemoveHiddenItem removes a hidden item by id.
func (r *Room) RemoveHiddenItem(itemId string) bool {
	if _, ok := r.Hidden[itemId]; ok {
		delete(r.Hidden, itemId)
		return true
	}
	return false
}

// VisibleItems returns the room's visible items plus any hidden items whose
// condition currently holds. Hidden items with no condition never show; a
// missing predicate is authoring damage, not an excuse to leak the item.
// Hidden items are appended after visible ones in canonical id order.
func (r *Room) VisibleItems(w *World) []Thing {
	items := make([]Thing, len(r.Items))
	copy(items, r.Items)

	if w == nil {
		return items
	}

	for _, id := range sortedKeys(r.Hidden) {
		hi := r.Hidden[id]
		if hi.Condition != nil && hi.Condition.Eval(w) {
			items = append(items, hi.Item)
		}
	}

	return items
}

// FindVisibleItem returns the first visible item whose name contains the
// given substring, case-insensitively. First match wins; iteration order is
// the room's item order, so the policy is deterministic.
func (r *Room) FindVisibleItem(w *World, name string) Thing {
	name = strings.ToLower(name)
	for _, t := range r.VisibleItems(w) {
		if strings.Contains(strings.ToLower(t.Base().Name), name) {
			return t
		}
	}
	return nil
}

// TakeItem removes t from whichever collection holds it, visible or hidden.
func (r *Room) TakeItem(t Thing) bool {
	if r.RemoveItem(t) {
		r.RemoveHiddenItem(t.Base().Id)
		return true
	}
	return r.RemoveHiddenItem(t.Base().Id)
}

func sortedKeys(m map[string]*HiddenItem) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
