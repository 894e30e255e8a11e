package game

// LandmarkRoom is the BFS source for swamp-direction computation.
const LandmarkRoom = "lake"

// ComputeSwampPaths precomputes, for every outdoor room, the exit direction
// that starts the shortest path toward the landmark room. The search walks
// backward from the landmark along room exits: when the landmark (or a room
// already on a shortest path) has an exit in direction d to a neighbor, that
// neighbor reaches the landmark by going d.Opposite().
//
// Indoor rooms are traversed so paths can pass through them, but only rooms
// flagged outdoor receive a direction. Rooms not reached keep an empty
// SwampDirection. If the landmark is absent the function clears nothing and
// assigns nothing.
//
// Exits are visited in canonical direction order, so ties between equal
// length paths always break the same way.
func ComputeSwampPaths(rooms map[string]*Room) {
	start, ok := rooms[LandmarkRoom]
	if !ok {
		return
	}

	visited := map[string]bool{LandmarkRoom: true}
	queue := []*Room{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range Directions {
			neighborId, ok := current.Exits[dir]
			if !ok || visited[neighborId] {
				continue
			}
			neighbor, ok := rooms[neighborId]
			if !ok {
				continue
			}

			visited[neighborId] = true
			if neighbor.IsOutdoor {
				neighbor.SwampDirection = dir.Opposite()
			}
			queue = append(queue, neighbor)
		}
	}
}
