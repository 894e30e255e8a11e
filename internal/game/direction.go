package game

// Direction is one of the fixed set of exit directions a room may have.
type Direction string

const (
	North     Direction = "north"
	South     Direction = "south"
	East      Direction = "east"
	West      Direction = "west"
	Northeast Direction = "northeast"
	Northwest Direction = "northwest"
	Southeast Direction = "southeast"
	Southwest Direction = "southwest"
	Up        Direction = "up"
	Down      Direction = "down"
	In        Direction = "in"
	Out       Direction = "out"
)

// Directions is the canonical iteration order. Anything that walks a room's
// exits and needs a deterministic result (pathfinding tie-breaks, exit
// listings) iterates this slice instead of ranging over the map.
var Directions = []Direction{
	North, South, East, West,
	Northeast, Northwest, Southeast, Southwest,
	Up, Down, In, Out,
}

var opposites = map[Direction]Direction{
	North:     South,
	South:     North,
	East:      West,
	West:      East,
	Northeast: Southwest,
	Southwest: Northeast,
	Northwest: Southeast,
	Southeast: Northwest,
	Up:        Down,
	Down:      Up,
	In:        Out,
	Out:       In,
}

// Opposite returns the reverse direction. Every valid direction has one.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Valid reports whether d is a member of the fixed direction set.
func (d Direction) Valid() bool {
	_, ok := opposites[d]
	return ok
}

func (d Direction) String() string {
	return string(d)
}
