package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// viewport returns the window of the unbounded grid shown on screen
func viewport(config utils.Config) model.Rect {
	return model.Rect{MaxX: config.Width - 1, MaxY: config.Height - 1}
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Grid,
	*rand.Rand,
	*model.TerminalRenderer,
	*utils.Stats,
) {
	rng := rand.New(rand.NewPCG(uint64(config.Seed), 0))

	grid := model.NewGrid()
	grid.ResetWithInterestingPatterns(viewport(config), config.RandomDensity, rng)

	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()

	return grid, rng, renderer, stats
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Features: Parallel: %v (from %d cells)\n",
		config.UseParallel, config.ParallelThreshold)
	fmt.Printf("Viewport: %dx%d | Initial living cells: %d\n",
		config.Width, config.Height, grid.Len())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates the game state and returns status information
func updateGameState(
	grid *model.Grid,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, string, bool) {
	livingCells := grid.Len()

	// Update performance stats
	frameDuration := time.Since(lastFrameTime)
	stats.Update(generation, livingCells, frameDuration)
	if bounds, ok := grid.Bounds(); ok {
		stats.BoundingBoxSize = bounds.Area()
	} else {
		stats.BoundingBoxSize = 0
	}

	// Update history for stagnation detection
	grid.UpdateHistory()
	isStagnant := grid.IsStagnant()

	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", generation)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	fmt.Printf("Gen: %d | Living: %d | Born: %d | Died: %d | Status: %s | Bounding box: %d cells\n",
		generation, livingCells, stats.Births, stats.Deaths, status, stats.BoundingBoxSize)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame reseeds the grid in place
func restartGame(grid *model.Grid, config utils.Config, rng *rand.Rand) {
	fmt.Printf("\n🔄 Restarting...\n")
	time.Sleep(1 * time.Second)

	grid.ResetWithInterestingPatterns(viewport(config), config.RandomDensity, rng)

	fmt.Printf("✨ New patterns loaded! Living cells: %d\n", grid.Len())
	time.Sleep(2 * time.Second)
}
