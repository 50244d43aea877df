package rules

const (
	// BirthNeighbors is the exact live-neighbor count that brings a dead cell to life
	BirthNeighbors = 3
	// minSurvive and maxSurvive bound the live-neighbor count a live cell needs to stay alive
	minSurvive = 2
	maxSurvive = 3
)

/*
ApplyConwayRules reports whether a cell is alive in the next generation (B3/S23).

A live cell survives with 2 or 3 live neighbors and dies otherwise; a dead
cell is born with exactly 3.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= minSurvive && neighbors <= maxSurvive
	}
	return neighbors == BirthNeighbors
}
