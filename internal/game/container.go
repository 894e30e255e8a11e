package game

import (
	"fmt"
	"strings"
)

const (
	ContainerOpen   = "open"
	ContainerClosed = "closed"
)

// ContainerItem is a stateful item (open/closed) that holds other items.
// Its reported weight is always base weight plus contents.
type ContainerItem struct {
	StatefulItem

	CapacityLimit  int     `json:"capacity_limit"`
	CapacityWeight int     `json:"capacity_weight"`
	Contents       []Thing `json:"-"`

	// BaseDescription and BaseWeight are the container's own description and
	// weight, before contents are folded in.
	BaseDescription string `json:"base_description"`
	BaseWeight      int    `json:"base_weight"`
}

func NewContainerItem(name, id, description string, weight, value int, takeable bool, capacityLimit, capacityWeight int) *ContainerItem {
	c := &ContainerItem{
		StatefulItem:    *NewStatefulItem(name, id, description, weight, value, takeable, ContainerOpen),
		CapacityLimit:   capacityLimit,
		CapacityWeight:  capacityWeight,
		BaseDescription: description,
		BaseWeight:      weight,
	}
	c.AddStateDescription(ContainerClosed, description)
	c.refresh()
	return c
}

// SetOpen transitions between open and closed and refreshes the description.
func (c *ContainerItem) SetOpen(open bool) {
	if open {
		c.State = ContainerOpen
	} else {
		c.State = ContainerClosed
	}
	c.refresh()
}

// ContentsWeight is the total weight of contained items.
func (c *ContainerItem) ContentsWeight() int {
	total := 0
	for _, t := range c.Contents {
		total += t.Base().Weight
	}
	return total
}

// AddContent puts an item inside, enforcing count and weight capacity.
// The source collection must only be mutated when this returns true.
func (c *ContainerItem) AddContent(t Thing) bool {
	if len(c.Contents) >= c.CapacityLimit {
		return false
	}
	if c.ContentsWeight()+t.Base().Weight > c.CapacityWeight {
		return false
	}
	c.Contents = append(c.Contents, t)
	c.refresh()
	return true
}

// RemoveContent takes the item with the given id out of the container,
// returning nil if it is not inside.
func (c *ContainerItem) RemoveContent(itemId string) Thing {
	for idx, t := range c.Contents {
		if t.Base().Id == itemId {
			c.Contents = append(c.Contents[:idx], c.Contents[idx+1:]...)
			c.refresh()
			return t
		}
	}
	return nil
}

// FindContent returns the first contained item whose name contains the
// given substring, case-insensitively.
func (c *ContainerItem) FindContent(name string) Thing {
	name = strings.ToLower(name)
	for _, t := range c.Contents {
		if strings.Contains(strings.ToLower(t.Base().Name), name) {
			return t
		}
	}
	return nil
}

// refresh recomputes weight and the two-line description. A closed container
// hides what it holds.
func (c *ContainerItem) refresh() {
	c.Weight = c.BaseWeight + c.ContentsWeight()

	var contents string
	switch {
	case len(c.Contents) == 0:
		contents = "nothing"
	case c.State == ContainerOpen:
		names := make([]string, 0, len(c.Contents))
		for _, t := range c.Contents {
			names = append(names, t.Base().Name)
		}
		contents = strings.Join(names, ", ")
	default:
		contents = "something"
	}

	c.Description = fmt.Sprintf("%s, %s.\n    The %s contains %s", c.BaseDescription, c.State, c.Name, contents)
	c.StateDescriptions[c.State] = c.Description
}
