package model

import "math/rand/v2"

// AddGlider adds a glider heading down and to the right, top-left corner at origin
func (g *Grid) AddGlider(origin Cell) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			g.Set(origin.Add(Cell{X: x, Y: y}), cell)
		}
	}
}

// AddBlinker adds a horizontal blinker oscillator
func (g *Grid) AddBlinker(origin Cell) {
	for x := range 3 {
		g.Set(origin.Add(Cell{X: x}), true)
	}
}

// AddBlock adds a 2x2 still life
func (g *Grid) AddBlock(origin Cell) {
	for y := range 2 {
		for x := range 2 {
			g.Set(origin.Add(Cell{X: x, Y: y}), true)
		}
	}
}

// Randomize sets every cell inside area alive with the given probability
func (g *Grid) Randomize(area Rect, density float64, rng *rand.Rand) {
	for y := area.MinY; y <= area.MaxY; y++ {
		for x := area.MinX; x <= area.MaxX; x++ {
			g.Set(Cell{X: x, Y: y}, rng.Float64() < density)
		}
	}
}

// InjectRandomLife brings count random cells inside area to life
func (g *Grid) InjectRandomLife(area Rect, count int, rng *rand.Rand) {
	if area.Width() <= 0 || area.Height() <= 0 {
		return
	}
	for range count {
		g.Set(Cell{
			X: area.MinX + rng.IntN(area.Width()),
			Y: area.MinY + rng.IntN(area.Height()),
		}, true)
	}
}

// ResetWithInterestingPatterns clears the grid and seeds area with gliders,
// blinkers and random life
func (g *Grid) ResetWithInterestingPatterns(area Rect, density float64, rng *rand.Rand) {
	g.Clear()

	// Random life goes down first so the patterns stay intact
	g.Randomize(area, density, rng)

	w, h := area.Width(), area.Height()
	if w >= 10 && h >= 10 {
		g.AddGlider(Cell{X: area.MinX + 5, Y: area.MinY + 5})
		if w >= 20 && h >= 15 {
			g.AddGlider(Cell{X: area.MaxX - 8, Y: area.MinY + 5})
		}

		g.AddBlinker(Cell{X: area.MinX + w/4, Y: area.MinY + h/4})
		if w >= 30 {
			g.AddBlinker(Cell{X: area.MinX + 3*w/4, Y: area.MinY + 3*h/4})
		}
	}
}
