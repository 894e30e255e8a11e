package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func outdoorRoom(id string, exits map[Direction]string) *Room {
	r := NewRoom(id, id, "somewhere outdoors")
	r.IsOutdoor = true
	if exits != nil {
		r.Exits = exits
	}
	return r
}

func TestComputeSwampPaths(t *testing.T) {
	tests := map[string]struct {
		rooms   func() map[string]*Room
		expDirs map[string]Direction
	}{
		"linear chain all point back": {
			rooms: func() map[string]*Room {
				lake := NewRoom("lake", "Lake", "the lake")
				lake.Exits = map[Direction]string{South: "camp"}
				return map[string]*Room{
					"lake":   lake,
					"camp":   outdoorRoom("camp", map[Direction]string{South: "road"}),
					"road":   outdoorRoom("road", map[Direction]string{South: "square"}),
					"square": outdoorRoom("square", nil),
				}
			},
			expDirs: map[string]Direction{
				"camp":   North,
				"road":   North,
				"square": North,
			},
		},
		"isolated room stays unset": {
			rooms: func() map[string]*Room {
				lake := outdoorRoom("lake", map[Direction]string{East: "shore"})
				return map[string]*Room{
					"lake":     lake,
					"shore":    outdoorRoom("shore", nil),
					"isolated": outdoorRoom("isolated", nil),
				}
			},
			expDirs: map[string]Direction{
				"shore":    West,
				"isolated": "",
			},
		},
		"indoor room traversed but never assigned": {
			rooms: func() map[string]*Room {
				lake := outdoorRoom("lake", map[Direction]string{East: "cave"})
				cave := NewRoom("cave", "Cave", "a dark cave")
				cave.Exits = map[Direction]string{East: "meadow"}
				return map[string]*Room{
					"lake":   lake,
					"cave":   cave,
					"meadow": outdoorRoom("meadow", nil),
				}
			},
			expDirs: map[string]Direction{
				"cave":   "",
				"meadow": West,
			},
		},
		"ties break in canonical direction order": {
			rooms: func() map[string]*Room {
				// Both paths to far are two hops; the north branch is
				// explored first because North precedes South in the
				// canonical ordering.
				lake := outdoorRoom("lake", map[Direction]string{North: "a", South: "b"})
				return map[string]*Room{
					"lake": lake,
					"a":    outdoorRoom("a", map[Direction]string{East: "far"}),
					"b":    outdoorRoom("b", map[Direction]string{East: "far"}),
					"far":  outdoorRoom("far", nil),
				}
			},
			expDirs: map[string]Direction{
				"a":   South,
				"b":   North,
				"far": West,
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rooms := tt.rooms()
			ComputeSwampPaths(rooms)
			for id, exp := range tt.expDirs {
				testutil.AssertEqual(t, id+" swamp direction", rooms[id].SwampDirection, exp)
			}
		})
	}
}

func TestComputeSwampPaths_MissingLandmark(t *testing.T) {
	rooms := map[string]*Room{
		"camp": outdoorRoom("camp", map[Direction]string{South: "road"}),
		"road": outdoorRoom("road", nil),
	}

	ComputeSwampPaths(rooms)

	for id, r := range rooms {
		testutil.AssertEqual(t, id+" swamp direction", r.SwampDirection, Direction(""))
	}
}

func TestComputeSwampPaths_LandmarkItselfUnset(t *testing.T) {
	lake := outdoorRoom("lake", map[Direction]string{South: "camp"})
	rooms := map[string]*Room{
		"lake": lake,
		"camp": outdoorRoom("camp", nil),
	}

	ComputeSwampPaths(rooms)

	testutil.AssertEqual(t, "lake swamp direction", lake.SwampDirection, Direction(""))
}
