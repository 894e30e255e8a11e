package game

import (
	"encoding/json"
	"fmt"
	"sort"
)

// ItemKind discriminates item types in serialized form.
type ItemKind string

const (
	KindItem      ItemKind = "item"
	KindWeapon    ItemKind = "weapon"
	KindStateful  ItemKind = "stateful"
	KindContainer ItemKind = "container"
)

type itemEnvelope struct {
	Kind     ItemKind          `json:"kind"`
	Spec     json.RawMessage   `json:"spec"`
	Contents []json.RawMessage `json:"contents,omitempty"`
}

// ItemRecord adapts any Thing to the asset store. Hidden-item visibility
// conditions are data (see Condition) and therefore survive the round-trip;
// the persistence collaborator re-attaches them to rooms on reload.
type ItemRecord struct {
	Thing Thing
}

func (r *ItemRecord) Validate() error {
	if r.Thing == nil {
		return fmt.Errorf("item record is empty")
	}
	return r.Thing.Base().Validate()
}

func (r *ItemRecord) MarshalJSON() ([]byte, error) {
	return encodeItem(r.Thing)
}

func (r *ItemRecord) UnmarshalJSON(data []byte) error {
	t, err := decodeItem(data)
	if err != nil {
		return err
	}
	r.Thing = t
	return nil
}

func encodeItem(t Thing) ([]byte, error) {
	env := itemEnvelope{}

	var err error
	switch v := t.(type) {
	case *ContainerItem:
		env.Kind = KindContainer
		env.Spec, err = json.Marshal(v)
		if err != nil {
			return nil, err
		}
		for _, inner := range v.Contents {
			data, err := encodeItem(inner)
			if err != nil {
				return nil, err
			}
			env.Contents = append(env.Contents, data)
		}
	case *StatefulItem:
		env.Kind = KindStateful
		env.Spec, err = json.Marshal(v)
	case *Weapon:
		env.Kind = KindWeapon
		env.Spec, err = json.Marshal(v)
	case *Item:
		env.Kind = KindItem
		env.Spec, err = json.Marshal(v)
	default:
		return nil, fmt.Errorf("unknown item type %T", t)
	}
	if err != nil {
		return nil, err
	}

	return json.Marshal(env)
}

func decodeItem(data []byte) (Thing, error) {
	var env itemEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshalling item envelope: %w", err)
	}

	switch env.Kind {
	case KindItem:
		item := &Item{}
		return item, json.Unmarshal(env.Spec, item)

	case KindWeapon:
		weapon := &Weapon{}
		return weapon, json.Unmarshal(env.Spec, weapon)

	case KindStateful:
		si := &StatefulItem{}
		return si, json.Unmarshal(env.Spec, si)

	case KindContainer:
		c := &ContainerItem{}
		if err := json.Unmarshal(env.Spec, c); err != nil {
			return nil, err
		}
		for _, raw := range env.Contents {
			inner, err := decodeItem(raw)
			if err != nil {
				return nil, err
			}
			c.Contents = append(c.Contents, inner)
		}
		return c, nil
	}

	return nil, fmt.Errorf("unknown item kind %q", env.Kind)
}

// Players serialize with the polymorphic inventory flattened through item
// envelopes and the visited set as a sorted list.
func (p *Player) MarshalJSON() ([]byte, error) {
	type playerAlias Player

	rec := struct {
		playerAlias
		InventoryItems []json.RawMessage `json:"inventory"`
		VisitedRooms   []string          `json:"visited"`
	}{playerAlias: playerAlias(*p)}

	for _, t := range p.Inventory {
		data, err := encodeItem(t)
		if err != nil {
			return nil, err
		}
		rec.InventoryItems = append(rec.InventoryItems, data)
	}

	for id := range p.Visited {
		rec.VisitedRooms = append(rec.VisitedRooms, id)
	}
	sort.Strings(rec.VisitedRooms)

	return json.Marshal(rec)
}

func (p *Player) UnmarshalJSON(data []byte) error {
	type playerAlias Player

	rec := struct {
		*playerAlias
		InventoryItems []json.RawMessage `json:"inventory"`
		VisitedRooms   []string          `json:"visited"`
	}{playerAlias: (*playerAlias)(p)}

	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	for _, raw := range rec.InventoryItems {
		t, err := decodeItem(raw)
		if err != nil {
			return err
		}
		p.Inventory = append(p.Inventory, t)
	}

	p.Visited = map[string]struct{}{}
	for _, id := range rec.VisitedRooms {
		p.Visited[id] = struct{}{}
	}

	// Stats are level-derived; never trust the stored copies.
	p.recomputeLevel()

	return nil
}
