package engine

import (
	"time"

	"github.com/lixenwraith/snake/constants"
	"github.com/pkg/errors"
)

// Config holds the gameplay tunables
type Config struct {
	// Playfield size in cells including the one-cell border ring
	GridWidth  int
	GridHeight int

	InitialDelay time.Duration
	MinDelay     time.Duration
	DelayStep    time.Duration

	InitialLength int
	PointsPerItem int

	// Screen characters per grid cell
	CellWidth  int
	CellHeight int

	FlashInterval time.Duration

	FeedbackPitch     float64
	FeedbackPitchStep float64 // octaves per item
	FeedbackDuration  time.Duration

	PlacementRetriesPerCell int
}

// DefaultConfig returns the classic 50x25 board
func DefaultConfig() Config {
	return Config{
		GridWidth:               constants.GridWidth,
		GridHeight:              constants.GridHeight,
		InitialDelay:            constants.InitialTickDelay,
		MinDelay:                constants.MinTickDelay,
		DelayStep:               constants.TickDelayStep,
		InitialLength:           constants.InitialSnakeLength,
		PointsPerItem:           constants.PointsPerItem,
		CellWidth:               constants.CellWidth,
		CellHeight:              constants.CellHeight,
		FlashInterval:           constants.DeathFlashInterval,
		FeedbackPitch:           constants.FeedbackPitchHz,
		FeedbackPitchStep:       constants.FeedbackPitchStep,
		FeedbackDuration:        constants.FeedbackDuration,
		PlacementRetriesPerCell: constants.PlacementRetriesPerCell,
	}
}

// Validate rejects tunables the state machine cannot run with
func (c Config) Validate() error {
	switch {
	case c.InitialLength < 1:
		return errors.Errorf("[Config.Validate] initial length %d must be positive", c.InitialLength)
	case c.GridWidth < c.InitialLength+5:
		return errors.Errorf("[Config.Validate] grid width %d too small for snake of %d", c.GridWidth, c.InitialLength)
	case c.GridHeight < 3:
		return errors.Errorf("[Config.Validate] grid height %d leaves no inner rows", c.GridHeight)
	case c.MinDelay <= 0:
		return errors.Errorf("[Config.Validate] min delay %v must be positive", c.MinDelay)
	case c.InitialDelay < c.MinDelay:
		return errors.Errorf("[Config.Validate] initial delay %v below min delay %v", c.InitialDelay, c.MinDelay)
	case c.DelayStep < 0:
		return errors.Errorf("[Config.Validate] delay step %v is negative", c.DelayStep)
	case c.CellWidth < 1 || c.CellHeight < 1:
		return errors.Errorf("[Config.Validate] cell scale %dx%d must be positive", c.CellWidth, c.CellHeight)
	case c.FlashInterval <= 0:
		return errors.Errorf("[Config.Validate] flash interval %v must be positive", c.FlashInterval)
	}
	return nil
}

// Inner bounds are the playable cells inside the border, all inclusive
func (c Config) InnerLeft() int   { return constants.BorderCells }
func (c Config) InnerTop() int    { return constants.BorderCells }
func (c Config) InnerRight() int  { return c.GridWidth - 1 - constants.BorderCells }
func (c Config) InnerBottom() int { return c.GridHeight - 1 - constants.BorderCells }

// InnerArea is the number of playable cells
func (c Config) InnerArea() int {
	return (c.InnerRight() - c.InnerLeft() + 1) * (c.InnerBottom() - c.InnerTop() + 1)
}

// ScreenSize is the playfield footprint in characters
func (c Config) ScreenSize() (width, height int) {
	return c.GridWidth * c.CellWidth, c.GridHeight * c.CellHeight
}
