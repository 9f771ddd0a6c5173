package constants

import "time"

// Grid-to-screen scale: one cell spans CellWidth columns and CellHeight rows
const (
	CellWidth  = 4
	CellHeight = 2
)

// Death sequence
const (
	DeathFlashInterval = 300 * time.Millisecond
)

// Overlay text
const (
	YumText         = "YUM!"
	ScoreFormat     = "  SCORE: %d       "
	ScoreRightPad   = 2
	BoardFullText   = " BOARD FULL - N to restart, Esc to quit "
	DeathHintText   = " N to restart, Esc to quit "
	ItemDisplayRune = ' '
)
