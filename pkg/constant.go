package pkg

import "math"

// Strategy identifies a tour optimization strategy.
type Strategy string

const (
	StrategyNearestNeighbor Strategy = "nearest_neighbor"
	StrategyTwoOpt          Strategy = "2opt"
)

const (
	// INF_DISTANCE marks an unreachable pair of intersections. Callers must
	// treat it as "no route", never as a fault.
	INF_DISTANCE = math.MaxFloat64

	DEFAULT_GRID_WIDTH  = 15
	DEFAULT_GRID_HEIGHT = 12
	DEFAULT_CELL_SIZE   = 50.0

	// DEFAULT_TWO_OPT_MAX_ITERATIONS bounds the number of improving passes
	// of the 2-opt local search.
	DEFAULT_TWO_OPT_MAX_ITERATIONS = 1000
)

type Direction uint8

// grid directions, in the fixed order neighbors are enumerated so that
// path reconstruction is reproducible across runs.
const (
	EAST Direction = iota
	WEST
	SOUTH
	NORTH
)

var DirectionOffsets = [4][2]int{
	{1, 0},  // EAST
	{-1, 0}, // WEST
	{0, 1},  // SOUTH
	{0, -1}, // NORTH
}
