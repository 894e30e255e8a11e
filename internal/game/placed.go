package game

import (
	"encoding/json"
	"fmt"
)

// PlacedItem is the authored form of an item: the item itself plus where it
// starts and, optionally, the condition under which it is visible. World
// assembly turns placements into room ownership.
type PlacedItem struct {
	Room   string
	Hidden *Condition
	Thing  Thing
}

type placedEnvelope struct {
	Room   string          `json:"room"`
	Hidden *Condition      `json:"hidden,omitempty"`
	Item   json.RawMessage `json:"item"`
}

// Validate satisfies storage.ValidatingSpec.
func (p *PlacedItem) Validate() error {
	if p.Thing == nil {
		return fmt.Errorf("placed item has no item")
	}
	if p.Room == "" {
		return fmt.Errorf("placed item has no room")
	}
	return p.Thing.Base().Validate()
}

func (p *PlacedItem) MarshalJSON() ([]byte, error) {
	item, err := encodeItem(p.Thing)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&placedEnvelope{
		Room:   p.Room,
		Hidden: p.Hidden,
		Item:   item,
	})
}

func (p *PlacedItem) UnmarshalJSON(data []byte) error {
	env := placedEnvelope{}
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	t, err := decodeItem(env.Item)
	if err != nil {
		return err
	}

	p.Room = env.Room
	p.Hidden = env.Hidden
	p.Thing = t
	return nil
}

// BuildWorld assembles the room graph, places the authored items, and runs
// the swamp-direction computation. A placement referencing an unknown room
// is an authoring error and fails the whole build.
func BuildWorld(rooms map[string]*Room, placements map[string]*PlacedItem) (*World, error) {
	w := NewWorld()
	for _, r := range rooms {
		w.AddRoom(r)
	}

	for id, p := range placements {
		room := w.Room(p.Room)
		if room == nil {
			return nil, fmt.Errorf("placing item %q: unknown room %q", id, p.Room)
		}
		if p.Hidden != nil {
			room.AddHiddenItem(p.Thing, p.Hidden)
		} else {
			room.AddItem(p.Thing)
		}
	}

	ComputeSwampPaths(w.Rooms())

	return w, nil
}
