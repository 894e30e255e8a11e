package game

// LevelRow is one entry of the experience table: the stat bundle granted at
// a points threshold.
type LevelRow struct {
	Threshold           int
	Name                string
	Stamina             int
	Strength            int
	Dexterity           int
	Magic               int
	CarryingCapacityNum int
}

// levelTable is ordered by ascending threshold. A player's stats are always
// the row with the highest threshold not exceeding their points.
var levelTable = []LevelRow{
	{0, "Neophyte", 45, 45, 45, 0, 6},
	{400, "Novice", 50, 50, 50, 10, 7},
	{800, "Acolyte", 55, 55, 55, 20, 8},
	{1600, "Scholar", 60, 60, 60, 30, 9},
	{3200, "Magister", 65, 65, 65, 40, 10},
	{6400, "Archon", 70, 70, 70, 50, 11},
	{12800, "Warlock", 75, 75, 75, 60, 12},
	{25600, "Guardian", 80, 80, 80, 70, 13},
	{51200, "Sovereign", 85, 85, 85, 80, 14},
	{102400, "Archmage", 100, 100, 100, 100, 15},
}

// LevelFor returns the table row for a points total and the next threshold,
// or -1 when the player is at the top.
func LevelFor(points int) (LevelRow, int) {
	row := levelTable[0]
	next := -1
	for idx, lr := range levelTable {
		if points >= lr.Threshold {
			row = lr
			if idx+1 < len(levelTable) {
				next = levelTable[idx+1].Threshold
			} else {
				next = -1
			}
		}
	}
	return row, next
}

// levelRank maps a level name to its position in the table, for weapon stat
// gates. Unknown names rank below Neophyte.
func levelRank(name string) int {
	for idx, lr := range levelTable {
		if lr.Name == name {
			return idx
		}
	}
	return -1
}
