package commands

import (
	"fmt"
	"sort"
	"strings"
)

// HandleExits lists the exits of the current room with their destination
// names, sorted so the output is stable. A stale destination id reports
// "Unknown" rather than failing the whole listing.
func HandleExits(ctx *Context, cmd *Command) (string, error) {
	room := ctx.Room()
	if room == nil || len(room.Exits) == 0 {
		return "No exits from here.", nil
	}

	maxLen := 0
	for dir := range room.Exits {
		if len(dir) > maxLen {
			maxLen = len(dir)
		}
	}

	var lines []string
	for dir, destId := range room.Exits {
		destName := "Unknown"
		if dest := ctx.World.Room(destId); dest != nil {
			destName = dest.Name
		}
		lines = append(lines, fmt.Sprintf("%-*s       %s", maxLen, dir, destName))
	}
	sort.Strings(lines)

	return strings.Join(lines, "\n"), nil
}
