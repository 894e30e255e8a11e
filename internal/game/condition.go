package game

// ConditionKind identifies how a visibility condition is evaluated.
type ConditionKind string

const (
	// CondAlways is satisfied unconditionally.
	CondAlways ConditionKind = "always"
	// CondItemState is satisfied when the item with ItemId is in State.
	CondItemState ConditionKind = "item_state"
	// CondRoomHasItem is satisfied when the room RoomId holds a visible
	// item with ItemId.
	CondRoomHasItem ConditionKind = "room_has_item"
	// CondRoomMissingItem is the negation of CondRoomHasItem, for items
	// revealed by removing something (a key under a rug).
	CondRoomMissingItem ConditionKind = "room_missing_item"
)

// Condition is a visibility predicate over world state, expressed as data
// rather than a closure so it survives a persistence round-trip.
type Condition struct {
	Kind   ConditionKind `json:"kind"`
	ItemId string        `json:"item_id,omitempty"`
	State  string        `json:"state,omitempty"`
	RoomId string        `json:"room_id,omitempty"`
}

// Eval reports whether the condition currently holds. An unknown kind
// evaluates false; hand-authored data must degrade, not crash.
func (c *Condition) Eval(w *World) bool {
	if c == nil {
		return false
	}

	switch c.Kind {
	case CondAlways:
		return true

	case CondItemState:
		item := w.FindItem(c.ItemId)
		if item == nil {
			return false
		}
		si := AsStateful(item)
		return si != nil && si.State == c.State

	case CondRoomHasItem:
		return w.roomHoldsItem(c.RoomId, c.ItemId)

	case CondRoomMissingItem:
		room := w.Room(c.RoomId)
		return room != nil && !w.roomHoldsItem(c.RoomId, c.ItemId)
	}

	return false
}
