package game

import "fmt"

// GenerateGrid builds a size-by-size grid of connected outdoor rooms. It is
// the fallback world used when no authored room assets are configured, and a
// convenient fixture for tests.
func GenerateGrid(size int) map[string]*Room {
	rooms := map[string]*Room{}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			id := fmt.Sprintf("room_%d_%d", row, col)
			room := NewRoom(id,
				fmt.Sprintf("Room (%d, %d)", row, col),
				fmt.Sprintf("This is the room located at position (%d, %d).", row, col))
			room.IsOutdoor = true

			if row > 0 {
				room.Exits[North] = fmt.Sprintf("room_%d_%d", row-1, col)
			}
			if row < size-1 {
				room.Exits[South] = fmt.Sprintf("room_%d_%d", row+1, col)
			}
			if col > 0 {
				room.Exits[West] = fmt.Sprintf("room_%d_%d", row, col-1)
			}
			if col < size-1 {
				room.Exits[East] = fmt.Sprintf("room_%d_%d", row, col+1)
			}

			rooms[id] = room
		}
	}

	return rooms
}
