package constants

import "time"

// Playfield dimensions in grid cells, border included
const (
	GridWidth  = 50
	GridHeight = 25
)

// Border occupies the outermost ring of cells
const (
	BorderCells = 1
)

// Snake pacing
const (
	// InitialTickDelay is the delay between moves for a fresh snake
	InitialTickDelay = 160 * time.Millisecond

	// MinTickDelay caps the speed-up
	MinTickDelay = 40 * time.Millisecond

	// TickDelayStep is subtracted from the delay per item eaten
	TickDelayStep = 20 * time.Millisecond
)

// Snake and scoring
const (
	InitialSnakeLength = 3
	PointsPerItem      = 10
)

// Item placement
const (
	// PlacementRetriesPerCell bounds rejection sampling at this many tries per inner cell
	// before falling back to a scan of free cells
	PlacementRetriesPerCell = 4
)
