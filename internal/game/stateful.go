package game

// Interaction is one rule in a stateful item's transition table: "verb,
// optionally gated on instrument/state/condition, moves the item to
// TargetState and may rewire the room's exits".
type Interaction struct {
	RequiredInstrument string     `json:"required_instrument,omitempty"`
	FromState          string     `json:"from_state,omitempty"`
	TargetState        string     `json:"target_state,omitempty"`
	Message            string     `json:"message,omitempty"`
	Condition          *Condition `json:"condition,omitempty"`

	// Exit side effects applied to the room holding the item.
	AddExitDirection Direction `json:"add_exit_direction,omitempty"`
	AddExitRoom      string    `json:"add_exit_room,omitempty"`
	RemoveExit       Direction `json:"remove_exit,omitempty"`

	ConsumeInstrument bool `json:"consume_instrument,omitempty"`
	RemoveItem        bool `json:"remove_item,omitempty"`
}

// StatefulItem is an item with a small finite-state machine attached: a
// current state, per-state descriptions, a verb-indexed transition table,
// and linked items (the far side of a door) that co-transition.
type StatefulItem struct {
	Item

	State             string                   `json:"state,omitempty"`
	StateDescriptions map[string]string        `json:"state_descriptions,omitempty"`
	Interactions      map[string][]Interaction `json:"interactions,omitempty"`
	LinkedItems       []string                 `json:"linked_items,omitempty"`
	RoomId            string                   `json:"room_id,omitempty"`
}

func NewStatefulItem(name, id, description string, weight, value int, takeable bool, state string) *StatefulItem {
	si := &StatefulItem{
		Item:              *NewItem(name, id, description, weight, value, takeable),
		State:             state,
		StateDescriptions: map[string]string{},
		Interactions:      map[string][]Interaction{},
	}
	if state != "" {
		si.StateDescriptions[state] = description
	}
	return si
}

// AddStateDescription registers the description shown while the item is in
// the given state.
func (si *StatefulItem) AddStateDescription(state, description string) {
	si.StateDescriptions[state] = description
}

// AddInteraction appends a transition rule for a verb. Rules for the same
// verb are tried in registration order.
func (si *StatefulItem) AddInteraction(verb string, rule Interaction) {
	si.Interactions[verb] = append(si.Interactions[verb], rule)
}

// LinkItem records another item id whose state must track this one.
func (si *StatefulItem) LinkItem(itemId string) {
	for _, id := range si.LinkedItems {
		if id == itemId {
			return
		}
	}
	si.LinkedItems = append(si.LinkedItems, itemId)
}

// RuleFor returns the first rule for verb applicable in the current state,
// or nil if the verb is unknown or no rule matches.
func (si *StatefulItem) RuleFor(verb string) *Interaction {
	for idx := range si.Interactions[verb] {
		rule := &si.Interactions[verb][idx]
		if rule.FromState != "" && rule.FromState != si.State {
			continue
		}
		return rule
	}
	return nil
}

// SetState transitions the item, updates its description, applies any exit
// side effects of rules targeting the new state, and propagates the state to
// linked items by explicit lookup (never via shared references).
func (si *StatefulItem) SetState(newState string, w *World) bool {
	if _, ok := si.StateDescriptions[newState]; !ok {
		return false
	}

	si.State = newState
	si.Description = si.StateDescriptions[newState]

	if w == nil {
		return true
	}

	si.applyExitChanges(newState, w)

	for _, linkedId := range si.LinkedItems {
		linked := w.FindItem(linkedId)
		if linked == nil {
			continue
		}
		ls := AsStateful(linked)
		if ls == nil || ls.State == newState {
			continue
		}
		// Set the linked item directly rather than recursing through
		// SetState, so a linked pair cannot ping-pong forever.
		if _, ok := ls.StateDescriptions[newState]; ok {
			ls.State = newState
			ls.Description = ls.StateDescriptions[newState]
		} else {
			ls.State = newState
		}
		ls.applyExitChanges(newState, w)
	}

	return true
}

func (si *StatefulItem) applyExitChanges(newState string, w *World) {
	if si.RoomId == "" {
		return
	}
	room := w.Room(si.RoomId)
	if room == nil {
		return
	}

	for _, rules := range si.Interactions {
		for _, rule := range rules {
			if rule.TargetState != newState {
				continue
			}
			if rule.AddExitDirection != "" && rule.AddExitRoom != "" {
				room.Exits[rule.AddExitDirection] = rule.AddExitRoom
			}
			if rule.RemoveExit != "" {
				delete(room.Exits, rule.RemoveExit)
			}
			if rule.RemoveItem {
				room.RemoveItem(si)
			}
		}
	}
}
